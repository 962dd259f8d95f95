package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/token"
)

// AuthMiddleware gates protected routes. It expects a two-part
// "Bearer <token>" authorization header, verifies the token, and stores the
// resolved subject in the request context. Faults are forwarded to the error
// boundary; the middleware never writes a response body itself.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(apperror.Unauthorized("Authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.Error(apperror.Unauthorized("Authorization header must be in the form: Bearer <token>"))
			c.Abort()
			return
		}

		subject, err := tokens.Verify(parts[1])
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), subject)
		c.Next()
	}
}
