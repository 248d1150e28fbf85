package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	apploan "github.com/mdelvaux/library-api/internal/application/loan"
	"github.com/mdelvaux/library-api/internal/interface/http/dto"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
	"github.com/mdelvaux/library-api/pkg/response"
)

// LoanHandler serves the circulation endpoints: checkout, return, the
// overdue sweep trigger and the loan queries.
type LoanHandler struct {
	createLoan    *apploan.CreateLoanUseCase
	returnBook    *apploan.ReturnBookUseCase
	updateOverdue *apploan.UpdateOverdueUseCase
	queries       *apploan.Queries
}

// NewLoanHandler creates the loan handler.
func NewLoanHandler(
	createLoan *apploan.CreateLoanUseCase,
	returnBook *apploan.ReturnBookUseCase,
	updateOverdue *apploan.UpdateOverdueUseCase,
	queries *apploan.Queries,
) *LoanHandler {
	return &LoanHandler{
		createLoan:    createLoan,
		returnBook:    returnBook,
		updateOverdue: updateOverdue,
		queries:       queries,
	}
}

// Create checks out a book.
// @Summary      Create loan
// @Description  Borrows one copy for a member. The member must be active, a copy must be available, the member must be under their loan quota and must not already hold this book.
// @Tags         loans
// @Produce      json
// @Security     BearerAuth
// @Param        memberId query int true "Member id"
// @Param        bookId query int true "Book id"
// @Param        dueDate query string true "Due date (YYYY-MM-DD)"
// @Success      201 {object} response.Response{data=dto.LoanResponse}
// @Failure      400 {object} response.Response "borrowing rule violated"
// @Failure      404 {object} response.Response "member or book not found"
// @Router       /api/loans [post]
func (h *LoanHandler) Create(c *gin.Context) {
	var req dto.CreateLoanRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "dueDate must be formatted YYYY-MM-DD")
		return
	}

	l, err := h.createLoan.Execute(c.Request.Context(), req.MemberID, req.BookID, dueDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewLoanResponse(l))
}

// Return records the return of a loan and frees the copy.
// @Summary      Return book
// @Tags         loans
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Loan id"
// @Success      200 {object} response.Response{data=dto.LoanResponse}
// @Failure      400 {object} response.Response "loan already returned"
// @Failure      404 {object} response.Response "loan not found"
// @Router       /api/loans/{id}/return [post]
func (h *LoanHandler) Return(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	l, err := h.returnBook.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewLoanResponse(l))
}

// List returns every loan.
// @Summary      List loans
// @Tags         loans
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.LoanResponse}
// @Router       /api/loans [get]
func (h *LoanHandler) List(c *gin.Context) {
	loans, err := h.queries.ListLoans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewLoanResponses(loans))
}

// Get returns one loan.
// @Summary      Get loan by id
// @Tags         loans
// @Produce      json
// @Param        id path int true "Loan id"
// @Success      200 {object} response.Response{data=dto.LoanResponse}
// @Failure      404 {object} response.Response "loan not found"
// @Router       /api/loans/{id} [get]
func (h *LoanHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	l, err := h.queries.GetLoanByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewLoanResponse(l))
}

// ByMember returns the member's full loan history.
// @Summary      List loans by member
// @Tags         loans
// @Produce      json
// @Param        memberId path int true "Member id"
// @Success      200 {object} response.Response{data=[]dto.LoanResponse}
// @Failure      404 {object} response.Response "member not found"
// @Router       /api/loans/member/{memberId} [get]
func (h *LoanHandler) ByMember(c *gin.Context) {
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}
	loans, err := h.queries.GetLoansByMember(c.Request.Context(), memberID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewLoanResponses(loans))
}

// ActiveByMember returns the member's running loans.
// @Summary      List active loans by member
// @Tags         loans
// @Produce      json
// @Param        memberId path int true "Member id"
// @Success      200 {object} response.Response{data=[]dto.LoanResponse}
// @Failure      404 {object} response.Response "member not found"
// @Router       /api/loans/member/{memberId}/active [get]
func (h *LoanHandler) ActiveByMember(c *gin.Context) {
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}
	loans, err := h.queries.GetActiveLoansByMember(c.Request.Context(), memberID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewLoanResponses(loans))
}

// ByBook returns the loan history of one book.
// @Summary      List loans by book
// @Tags         loans
// @Produce      json
// @Param        bookId path int true "Book id"
// @Success      200 {object} response.Response{data=[]dto.LoanResponse}
// @Router       /api/loans/book/{bookId} [get]
func (h *LoanHandler) ByBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}
	loans, err := h.queries.GetLoansByBook(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewLoanResponses(loans))
}

// Overdue returns loans in OVERDUE status. Past-due loans appear only
// after the sweep has promoted them.
// @Summary      List overdue loans
// @Tags         loans
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.LoanResponse}
// @Router       /api/loans/overdue [get]
func (h *LoanHandler) Overdue(c *gin.Context) {
	loans, err := h.queries.GetOverdueLoans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewLoanResponses(loans))
}

// SweepOverdue runs the overdue promotion on demand, ahead of the next
// scheduled sweep.
// @Summary      Promote past-due loans to overdue
// @Tags         loans
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=int} "number of loans promoted"
// @Router       /api/loans/overdue/update [put]
func (h *LoanHandler) SweepOverdue(c *gin.Context) {
	n, err := h.updateOverdue.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, n)
}

// CountByMember counts the member's loans, all statuses.
// @Summary      Count loans by member
// @Tags         loans
// @Produce      json
// @Param        memberId path int true "Member id"
// @Success      200 {object} response.Response{data=dto.LoanCountResponse}
// @Failure      404 {object} response.Response "member not found"
// @Router       /api/loans/stats/member/{memberId}/total-count [get]
func (h *LoanHandler) CountByMember(c *gin.Context) {
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}
	count, err := h.queries.CountTotalLoansByMember(c.Request.Context(), memberID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.LoanCountResponse{MemberID: memberID, Count: count})
}

// CountActiveByMember counts the member's running loans.
// @Summary      Count active loans by member
// @Tags         loans
// @Produce      json
// @Param        memberId path int true "Member id"
// @Success      200 {object} response.Response{data=dto.LoanCountResponse}
// @Failure      404 {object} response.Response "member not found"
// @Router       /api/loans/stats/member/{memberId}/active-count [get]
func (h *LoanHandler) CountActiveByMember(c *gin.Context) {
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}
	count, err := h.queries.CountActiveLoansByMember(c.Request.Context(), memberID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.LoanCountResponse{MemberID: memberID, Count: count})
}

// Quota returns the member's remaining borrowing headroom.
// @Summary      Get member loan quota
// @Tags         loans
// @Produce      json
// @Param        memberId path int true "Member id"
// @Success      200 {object} response.Response{data=apploan.Quota}
// @Failure      404 {object} response.Response "member not found"
// @Router       /api/loans/quota/member/{memberId} [get]
func (h *LoanHandler) Quota(c *gin.Context) {
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}
	quota, err := h.queries.GetMemberQuota(c.Request.Context(), memberID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, quota)
}
