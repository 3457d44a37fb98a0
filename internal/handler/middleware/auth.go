package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"deals-engine/internal/domain/user"
	"deals-engine/internal/handler/httperr"
	"deals-engine/internal/pkg/cookie"
	"deals-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxClaimsKey   = "jwt_claims"
)

var (
	errMissingToken     = errors.New("access token required")
	errForbiddenRole    = errors.New("role not permitted")
	errMissingPrincipal = errors.New("role check without authenticated principal")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", httperr.Detail{Code: "UNAUTHENTICATED"})
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", httperr.Detail{Code: "UNAUTHENTICATED"})
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// RequireRole admits principals holding any of roles. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
			return
		}

		if !principal.Is(roles...) {
			httperr.AbortWithError(c, http.StatusForbidden, errForbiddenRole, "Insufficient permissions", httperr.Detail{Code: "FORBIDDEN"})
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// SetPrincipal stores the authenticated caller on the request context.
func SetPrincipal(c *gin.Context, p user.Principal) {
	c.Set(ctxUserIDKey, p.ID)
	c.Set(ctxUserRoleKey, p.Role)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": p.ID.String(),
		"role":    string(p.Role),
	})
}

func GetPrincipal(c *gin.Context) (user.Principal, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return user.Principal{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return user.Principal{}, false
	}
	return user.Principal{ID: id, Role: role}, true
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
