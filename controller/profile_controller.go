package controller

import (
	"context"
	"net/http"

	"mockapi-backend/cache"
	"mockapi-backend/models"
	"mockapi-backend/services"
	"mockapi-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ctx            context.Context
	profileService services.ProfileServiceInterface
	cache          *cache.Coordinator
	config         *models.Config
	logger         logger.Logger
}

func NewProfileController(ctx context.Context, profileService services.ProfileServiceInterface, coordinator *cache.Coordinator, cfg *models.Config, log logger.Logger) *ProfileController {
	return &ProfileController{
		ctx:            ctx,
		profileService: profileService,
		cache:          coordinator,
		config:         cfg,
		logger:         log,
	}
}

// List handles GET /api/profiles
// @Summary List profiles
// @Description Retrieve profiles with pagination and field filters. Dotted paths reach into settings and preferences.
// @Tags Profiles
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Items per page (max 100)"
// @Success 200 {object} models.APIResponse "Profiles retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /profiles [get]
func (h *ProfileController) List(c *gin.Context) {
	key := cache.Key(c.Request.URL.Path, c.Request.URL.RawQuery)
	if payload, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, payload)
		return
	}
	version := h.cache.Version(models.KindProfile)

	page, perPage, filters := listParams(c)
	result, err := h.profileService.ListProfiles(filters, page, perPage)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Profiles retrieved successfully",
		Data:    result,
	}
	h.cache.Set(key, response, version, models.KindProfile)
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/profiles
// @Summary Create a profile
// @Description Create a profile with free-form nested settings and preferences.
// @Tags Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param profile body models.ProfileInput true "Profile payload"
// @Success 201 {object} models.APIResponse "Profile created successfully"
// @Failure 400 {object} models.APIResponse "Validation failed"
// @Failure 409 {object} models.APIResponse "Duplicate id"
// @Router /profiles [post]
func (h *ProfileController) Create(c *gin.Context) {
	var input models.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, h.logger, models.NewValidationError("", "Request body must contain valid JSON"))
		return
	}

	profile, err := h.profileService.CreateProfile(&input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Profile created successfully", profile)
}

// Get handles GET /api/profiles/:id
// @Summary Get a profile
// @Tags Profiles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} models.APIResponse "Profile retrieved successfully"
// @Failure 404 {object} models.APIResponse "Profile not found"
// @Router /profiles/{id} [get]
func (h *ProfileController) Get(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// Update handles PUT /api/profiles/:id
// @Summary Update a profile
// @Description Partially update a profile. Settings, preferences, and metadata keys are merged; other keys are preserved.
// @Tags Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param profile body models.ProfileUpdate true "Fields to update"
// @Success 200 {object} models.APIResponse "Profile updated successfully"
// @Failure 400 {object} models.APIResponse "Validation failed"
// @Failure 404 {object} models.APIResponse "Profile not found"
// @Router /profiles/{id} [put]
func (h *ProfileController) Update(c *gin.Context) {
	var upd models.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondError(c, h.logger, models.NewValidationError("", "Request body must contain valid JSON"))
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Param("id"), &upd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Profile updated successfully", profile)
}

// Delete handles DELETE /api/profiles/:id
// @Summary Delete a profile
// @Tags Profiles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} models.APIResponse "Profile deleted successfully"
// @Failure 404 {object} models.APIResponse "Profile not found"
// @Router /profiles/{id} [delete]
func (h *ProfileController) Delete(c *gin.Context) {
	if err := h.profileService.DeleteProfile(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Profile deleted successfully", nil)
}
