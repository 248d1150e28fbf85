package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mdelvaux/library-api/internal/domain/member"
	"github.com/mdelvaux/library-api/internal/interface/http/dto"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
	"github.com/mdelvaux/library-api/pkg/response"
)

// MemberHandler serves the member endpoints, including the
// suspend/activate switches that gate borrowing.
type MemberHandler struct {
	memberSvc member.Service
}

// NewMemberHandler creates the member handler.
func NewMemberHandler(memberSvc member.Service) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// List returns every member.
// @Summary      List members
// @Tags         members
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.MemberResponse}
// @Router       /api/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberSvc.ListMembers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewMemberResponses(members))
}

// Get returns one member.
// @Summary      Get member by id
// @Tags         members
// @Produce      json
// @Param        id path int true "Member id"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      404 {object} response.Response "member not found"
// @Router       /api/members/{id} [get]
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	m, err := h.memberSvc.GetMemberByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewMemberResponse(m))
}

// GetByEmail returns the member with the exact email.
// @Summary      Get member by email
// @Tags         members
// @Produce      json
// @Param        email query string true "Email"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      404 {object} response.Response "member not found"
// @Router       /api/members/search/email [get]
func (h *MemberHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "email query parameter is required")
		return
	}
	m, err := h.memberSvc.GetMemberByEmail(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewMemberResponse(m))
}

// Create registers a new member. Membership starts today, active.
// @Summary      Create member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateMemberRequest true "Member"
// @Success      201 {object} response.Response{data=dto.MemberResponse}
// @Failure      409 {object} response.Response "email already exists"
// @Router       /api/members [post]
func (h *MemberHandler) Create(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	m, err := h.memberSvc.CreateMember(c.Request.Context(), req.Email, req.FirstName, req.LastName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewMemberResponse(m))
}

// Update applies a partial update.
// @Summary      Update member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Member id"
// @Param        request body dto.UpdateMemberRequest true "Fields to change"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      404 {object} response.Response "member not found"
// @Failure      409 {object} response.Response "email already exists"
// @Router       /api/members/{id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	m, err := h.memberSvc.UpdateMember(c.Request.Context(), id, member.UpdateParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Active:    req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewMemberResponse(m))
}

// Delete removes a member and their loan history.
// @Summary      Delete member
// @Tags         members
// @Security     BearerAuth
// @Param        id path int true "Member id"
// @Success      204 "deleted"
// @Failure      404 {object} response.Response "member not found"
// @Router       /api/members/{id} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.memberSvc.DeleteMember(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Active returns members allowed to borrow.
// @Summary      List active members
// @Tags         members
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.MemberResponse}
// @Router       /api/members/status/active [get]
func (h *MemberHandler) Active(c *gin.Context) {
	members, err := h.memberSvc.ListActiveMembers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewMemberResponses(members))
}

// Stats counts the active members.
// @Summary      Count active members
// @Tags         members
// @Produce      json
// @Success      200 {object} response.Response{data=dto.MemberStatsResponse}
// @Router       /api/members/stats/active-count [get]
func (h *MemberHandler) Stats(c *gin.Context) {
	count, err := h.memberSvc.CountActiveMembers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.MemberStatsResponse{ActiveMembers: count})
}

// Suspend turns off the member's borrowing permission. Existing loans
// are untouched; returns stay possible.
// @Summary      Suspend member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Member id"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      404 {object} response.Response "member not found"
// @Router       /api/members/{id}/suspend [post]
func (h *MemberHandler) Suspend(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	m, err := h.memberSvc.SuspendMember(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewMemberResponse(m))
}

// Activate restores the member's borrowing permission.
// @Summary      Activate member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Member id"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      404 {object} response.Response "member not found"
// @Router       /api/members/{id}/activate [post]
func (h *MemberHandler) Activate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	m, err := h.memberSvc.ActivateMember(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewMemberResponse(m))
}
