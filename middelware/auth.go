package middelware

import (
	"net/http"
	"strings"

	"mockapi-backend/models"
	"mockapi-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware enforces the static bearer token. Every /api route requires
// it; the root endpoint and the swagger UI stay open.
type AuthMiddleware struct {
	config *models.Config
	logger logger.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(cfg *models.Config, log logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		config: cfg,
		logger: log,
	}
}

// RequireToken returns a gin.HandlerFunc that rejects requests without a
// valid Authorization header.
func (m *AuthMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			m.reject(c, "Authorization header is required")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			m.reject(c, "Authorization header must use the Bearer scheme")
			return
		}

		if token != m.config.AuthToken {
			m.logger.Warnf("rejected request with invalid token from %s", c.ClientIP())
			m.reject(c, "Invalid authentication token")
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIResponse{
		Status:  "error",
		Code:    http.StatusUnauthorized,
		Message: "Unauthorized",
		Error: &models.APIError{
			Type:    "AuthenticationError",
			Details: details,
		},
	})
}
