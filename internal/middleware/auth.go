package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"linkcut/internal/service"
)

// ContextUserKey is the gin context key holding the authenticated user.
const ContextUserKey = "current_user"

// CurrentUser resolves the optional bearer token on every request. A
// missing token leaves the caller anonymous; a present but invalid one
// aborts with 401.
func CurrentUser(authService service.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		user, err := authService.CurrentUser(token)
		if err != nil {
			log.Info("authentication failed", zap.Error(err))
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authentication credentials not found.",
			})
			return
		}

		if user != nil {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header, if any
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
