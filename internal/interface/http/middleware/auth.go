package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mdelvaux/library-api/internal/infrastructure/persistence/redis"
	apperrors "github.com/mdelvaux/library-api/pkg/errors"
	"github.com/mdelvaux/library-api/pkg/jwt"
	"github.com/mdelvaux/library-api/pkg/response"
)

// AuthMiddleware guards the write endpoints: it extracts the bearer
// token, rejects blacklisted tokens, verifies the signature and injects
// the staff identity into the request context.
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth rejects requests without a valid staff token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorWithCode(c, apperrors.ErrCodeUnauthorized, "authentication required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidToken, "malformed authorization header")
			c.Abort()
			return
		}
		tokenString := parts[1]

		// A blacklisted token belongs to a logged-out session.
		blacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if blacklisted {
			response.ErrorWithCode(c, apperrors.ErrCodeTokenExpired, "token has been revoked")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("staff_id", claims.StaffID)
		c.Set("staff_email", claims.Email)
		c.Set("access_token", tokenString)

		c.Next()
	}
}

// GetStaffID returns the authenticated staff id, zero when anonymous.
func GetStaffID(c *gin.Context) uint {
	if v, exists := c.Get("staff_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetAccessToken returns the raw bearer token of the request.
func GetAccessToken(c *gin.Context) string {
	if v, exists := c.Get("access_token"); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// MustGetStaffID returns the staff id behind RequireAuth; panics when the
// middleware did not run.
func MustGetStaffID(c *gin.Context) uint {
	id := GetStaffID(c)
	if id == 0 {
		panic("staff_id not found in context")
	}
	return id
}
