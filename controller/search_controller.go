package controller

import (
	"context"
	"net/http"
	"strconv"

	"mockapi-backend/cache"
	"mockapi-backend/models"
	"mockapi-backend/services"
	"mockapi-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	ctx           context.Context
	searchService services.SearchServiceInterface
	cache         *cache.Coordinator
	config        *models.Config
	logger        logger.Logger
}

func NewSearchController(ctx context.Context, searchService services.SearchServiceInterface, coordinator *cache.Coordinator, cfg *models.Config, log logger.Logger) *SearchController {
	return &SearchController{
		ctx:           ctx,
		searchService: searchService,
		cache:         coordinator,
		config:        cfg,
		logger:        log,
	}
}

// Advanced handles GET /api/search/advanced
// @Summary Multi-entity search
// @Description Search across organizations, users, and profiles with a free-text query, JSON field filters, and pagination. Results are tagged with their entity kind, in a fixed order: organizations, users, profiles.
// @Tags Search
// @Security BearerAuth
// @Produce json
// @Param q query string false "Case-insensitive substring matched against string fields at any depth"
// @Param type query string false "Entity type: all, organizations, users, profiles" default(all)
// @Param filters query string false "JSON object of field filters, dotted paths allowed"
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Items per page (max 100)"
// @Success 200 {object} models.APIResponse "Search completed successfully"
// @Failure 400 {object} models.APIResponse "Invalid type or malformed filters"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /search/advanced [get]
func (h *SearchController) Advanced(c *gin.Context) {
	key := cache.Key(c.Request.URL.Path, c.Request.URL.RawQuery)
	if payload, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, payload)
		return
	}
	version := h.cache.Version(models.KindOrganization, models.KindUser, models.KindProfile)

	filters, err := services.ParseFilters(c.Query("filters"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))

	params := &models.SearchParams{
		Query:   c.Query("q"),
		Type:    c.DefaultQuery("type", models.SearchTypeAll),
		Filters: filters,
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.searchService.Search(params)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Search completed successfully",
		Data:    result,
	}
	// A search result can span every kind, so the entry is tagged with all
	// three and any mutation invalidates it.
	h.cache.Set(key, response, version, models.KindOrganization, models.KindUser, models.KindProfile)
	c.JSON(http.StatusOK, response)
}
