package handler

import (
	"github.com/gin-gonic/gin"

	appstaff "github.com/mdelvaux/library-api/internal/application/staff"
	"github.com/mdelvaux/library-api/internal/interface/http/dto"
	"github.com/mdelvaux/library-api/internal/interface/http/middleware"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
	"github.com/mdelvaux/library-api/pkg/response"
)

// StaffHandler serves the staff authentication endpoints.
type StaffHandler struct {
	registerUC *appstaff.RegisterUseCase
	loginUC    *appstaff.LoginUseCase
}

// NewStaffHandler creates the staff handler.
func NewStaffHandler(registerUC *appstaff.RegisterUseCase, loginUC *appstaff.LoginUseCase) *StaffHandler {
	return &StaffHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// Register creates a staff account.
// @Summary      Register staff account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Account"
// @Success      201 {object} response.Response{data=appstaff.RegisterResult}
// @Failure      400 {object} response.Response "weak password or invalid fields"
// @Failure      409 {object} response.Response "email already exists"
// @Router       /api/auth/register [post]
func (h *StaffHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Login authenticates a staff member and issues a token pair.
// @Summary      Staff login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} response.Response{data=appstaff.LoginResult}
// @Failure      401 {object} response.Response "invalid credentials"
// @Router       /api/auth/login [post]
func (h *StaffHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Logout revokes the current session and access token.
// @Summary      Staff logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/auth/logout [post]
func (h *StaffHandler) Logout(c *gin.Context) {
	staffID := middleware.MustGetStaffID(c)
	token := middleware.GetAccessToken(c)

	if err := h.loginUC.Logout(c.Request.Context(), staffID, token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Refresh exchanges a refresh token for a new access token.
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshRequest true "Refresh token"
// @Success      200 {object} response.Response{data=dto.RefreshResponse}
// @Failure      401 {object} response.Response "invalid or revoked refresh token"
// @Router       /api/auth/refresh [post]
func (h *StaffHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "invalid request: "+err.Error())
		return
	}

	accessToken, err := h.loginUC.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.RefreshResponse{AccessToken: accessToken})
}
