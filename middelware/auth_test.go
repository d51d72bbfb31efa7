package middelware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mockapi-backend/models"
	"mockapi-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authTestRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &models.Config{AuthToken: token}
	auth := NewAuthMiddleware(cfg, logger.NewLogger("error", "text"))

	r := gin.New()
	r.GET("/api/health", auth.RequireToken(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestRequireTokenAcceptsValidBearer(t *testing.T) {
	r := authTestRouter("secret-token")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireTokenRejections(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{name: "Missing header", header: ""},
		{name: "Wrong scheme", header: "Basic secret-token"},
		{name: "Wrong token", header: "Bearer other-token"},
		{name: "Bare token without scheme", header: "secret-token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := authTestRouter("secret-token")

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "AuthenticationError")
		})
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDKey))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDKey))
}
