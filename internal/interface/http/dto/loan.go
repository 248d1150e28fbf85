package dto

import (
	"github.com/mdelvaux/library-api/internal/domain/loan"
)

// CreateLoanRequest is the checkout request, bound from query parameters:
// POST /api/loans?memberId=1&bookId=2&dueDate=2026-02-01
type CreateLoanRequest struct {
	MemberID uint   `form:"memberId" binding:"required" example:"1"`
	BookID   uint   `form:"bookId" binding:"required" example:"2"`
	DueDate  string `form:"dueDate" binding:"required" example:"2026-02-01"`
}

// LoanResponse is the loan payload. Status is the lifecycle name
// (ACTIVE, RETURNED, OVERDUE); return_date is null until the book comes
// back.
type LoanResponse struct {
	ID         uint    `json:"id" example:"1"`
	LoanDate   string  `json:"loan_date" example:"2026-01-15"`
	DueDate    string  `json:"due_date" example:"2026-02-01"`
	ReturnDate *string `json:"return_date"`
	Status     string  `json:"status" example:"ACTIVE"`
	MemberID   uint    `json:"member_id" example:"1"`
	BookID     uint    `json:"book_id" example:"2"`
	CreatedAt  string  `json:"created_at" example:"2026-01-15 10:30:00"`
	UpdatedAt  string  `json:"updated_at" example:"2026-01-15 10:30:00"`
}

// NewLoanResponse converts the entity.
func NewLoanResponse(l *loan.Loan) *LoanResponse {
	var returnDate *string
	if l.ReturnDate != nil {
		formatted := l.ReturnDate.Format(dateLayout)
		returnDate = &formatted
	}
	return &LoanResponse{
		ID:         l.ID,
		LoanDate:   l.LoanDate.Format(dateLayout),
		DueDate:    l.DueDate.Format(dateLayout),
		ReturnDate: returnDate,
		Status:     l.Status.String(),
		MemberID:   l.MemberID,
		BookID:     l.BookID,
		CreatedAt:  formatTime(l.CreatedAt),
		UpdatedAt:  formatTime(l.UpdatedAt),
	}
}

// NewLoanResponses converts a list of entities.
func NewLoanResponses(loans []*loan.Loan) []*LoanResponse {
	out := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		out[i] = NewLoanResponse(l)
	}
	return out
}

// LoanCountResponse answers the per-member loan counters.
type LoanCountResponse struct {
	MemberID uint  `json:"member_id" example:"1"`
	Count    int64 `json:"count" example:"2"`
}
