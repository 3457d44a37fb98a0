//go:build unit

package api_test

import (
	"net/http"

	"deals-engine/internal/domain/user"
	"deals-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// fakeAuth admits any request carrying an Authorization header as p.
func fakeAuth(p user.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}

const bearer = "bearer-token"
