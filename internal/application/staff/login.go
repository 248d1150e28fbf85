package staff

import (
	"context"
	"time"

	"github.com/mdelvaux/library-api/internal/domain/staff"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
	"github.com/mdelvaux/library-api/pkg/jwt"
)

// SessionStore keeps the refresh-token session and the access-token
// blacklist. Backed by Redis in production.
type SessionStore interface {
	SaveSession(ctx context.Context, staffID uint, refreshToken string, expire time.Duration) error
	GetSession(ctx context.Context, staffID uint) (string, error)
	DeleteSession(ctx context.Context, staffID uint) error
	AddToBlacklist(ctx context.Context, token string, expire time.Duration) error
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// LoginUseCase authenticates staff and manages their token lifecycle.
type LoginUseCase struct {
	staffSvc           staff.Service
	jwtManager         *jwt.Manager
	sessions           SessionStore
	refreshTokenExpire time.Duration
}

// NewLoginUseCase wires the use case.
func NewLoginUseCase(
	staffSvc staff.Service,
	jwtManager *jwt.Manager,
	sessions SessionStore,
	refreshTokenExpire time.Duration,
) *LoginUseCase {
	return &LoginUseCase{
		staffSvc:           staffSvc,
		jwtManager:         jwtManager,
		sessions:           sessions,
		refreshTokenExpire: refreshTokenExpire,
	}
}

// LoginResult is the login response payload.
type LoginResult struct {
	ID     uint           `json:"id"`
	Email  string         `json:"email"`
	Name   string         `json:"name"`
	Tokens *jwt.TokenPair `json:"tokens"`
}

// Execute checks credentials, issues a token pair and records the refresh
// session so it can be revoked on logout.
func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (*LoginResult, error) {
	st, err := uc.staffSvc.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	tokens, err := uc.jwtManager.GenerateToken(st.ID, st.Email, st.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.SaveSession(ctx, st.ID, tokens.RefreshToken, uc.refreshTokenExpire); err != nil {
		return nil, err
	}

	return &LoginResult{
		ID:     st.ID,
		Email:  st.Email,
		Name:   st.Name,
		Tokens: tokens,
	}, nil
}

// Logout drops the refresh session and blacklists the presented access
// token for the rest of its lifetime.
func (uc *LoginUseCase) Logout(ctx context.Context, staffID uint, accessToken string) error {
	if err := uc.sessions.DeleteSession(ctx, staffID); err != nil {
		return err
	}

	claims, err := uc.jwtManager.ParseToken(accessToken)
	if err != nil {
		// An expired token needs no blacklisting.
		return nil
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}
	return uc.sessions.AddToBlacklist(ctx, accessToken, remaining)
}

// Refresh exchanges a valid refresh token for a new access token. The
// token must still match the stored session, so a logout invalidates it.
func (uc *LoginUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := uc.jwtManager.ParseToken(refreshToken)
	if err != nil {
		return "", err
	}

	stored, err := uc.sessions.GetSession(ctx, claims.StaffID)
	if err != nil {
		return "", err
	}
	if stored != refreshToken {
		return "", apperrors.ErrInvalidToken
	}

	return uc.jwtManager.RefreshAccessToken(refreshToken)
}
