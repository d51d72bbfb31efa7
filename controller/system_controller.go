package controller

import (
	"context"
	"net/http"
	"time"

	"mockapi-backend/cache"
	"mockapi-backend/models"
	"mockapi-backend/repository"
	"mockapi-backend/services"
	"mockapi-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type SystemController struct {
	ctx          context.Context
	statsService services.StatsServiceInterface
	store        *repository.Store
	cache        *cache.Coordinator
	config       *models.Config
	logger       logger.Logger
	startedAt    time.Time
}

func NewSystemController(ctx context.Context, statsService services.StatsServiceInterface, store *repository.Store, coordinator *cache.Coordinator, cfg *models.Config, log logger.Logger) *SystemController {
	return &SystemController{
		ctx:          ctx,
		statsService: statsService,
		store:        store,
		cache:        coordinator,
		config:       cfg,
		logger:       log,
		startedAt:    time.Now(),
	}
}

// Index handles GET /
// @Summary API index
// @Description Service identity and a map of available endpoints. No authentication required.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "API index"
// @Router / [get]
func (h *SystemController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api":     h.config.AppName,
		"version": h.config.AppVersion,
		"status":  "running",
		"endpoints": gin.H{
			"organizations": "/api/organizations",
			"organization":  "/api/organizations/{id}",
			"users":         "/api/users",
			"user":          "/api/users/{id}",
			"profiles":      "/api/profiles",
			"profile":       "/api/profiles/{id}",
			"search":        "/api/search/advanced",
			"batch":         "/api/batch/{collection}",
			"stats":         "/api/stats",
			"health":        "/api/health",
			"version":       "/api/version",
			"docs":          "/swagger",
		},
	})
}

// Health handles GET /api/health
// @Summary Health check
// @Description Liveness probe with entity counts. No authentication required.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (h *SystemController) Health(c *gin.Context) {
	organizations, users, profiles := h.store.Counts()

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.config.AppVersion,
		"uptime":    time.Since(h.startedAt).String(),
		"entities": gin.H{
			"organizations": organizations,
			"users":         users,
			"profiles":      profiles,
		},
	})
}

// Version handles GET /api/version
// @Summary Version info
// @Description Build and environment identity. No authentication required.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Version info"
// @Router /version [get]
func (h *SystemController) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":     h.config.AppVersion,
		"build":       h.config.AppBuild,
		"environment": h.config.AppEnv,
	})
}

// Stats handles GET /api/stats
// @Summary Entity statistics
// @Description Totals per collection, organizations grouped by type, users grouped by organization.
// @Tags System
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Statistics retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /stats [get]
func (h *SystemController) Stats(c *gin.Context) {
	key := cache.Key(c.Request.URL.Path, c.Request.URL.RawQuery)
	if payload, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, payload)
		return
	}
	version := h.cache.Version(models.KindOrganization, models.KindUser, models.KindProfile)

	stats := h.statsService.Collect()

	response := models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Statistics retrieved successfully",
		Data:    stats,
	}
	h.cache.Set(key, response, version, models.KindOrganization, models.KindUser, models.KindProfile)
	c.JSON(http.StatusOK, response)
}
