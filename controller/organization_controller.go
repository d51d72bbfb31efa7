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

type OrganizationController struct {
	ctx        context.Context
	orgService services.OrganizationServiceInterface
	cache      *cache.Coordinator
	config     *models.Config
	logger     logger.Logger
}

func NewOrganizationController(ctx context.Context, orgService services.OrganizationServiceInterface, coordinator *cache.Coordinator, cfg *models.Config, log logger.Logger) *OrganizationController {
	return &OrganizationController{
		ctx:        ctx,
		orgService: orgService,
		cache:      coordinator,
		config:     cfg,
		logger:     log,
	}
}

// List handles GET /api/organizations
// @Summary List organizations
// @Description Retrieve organizations with pagination and field filters. Any query parameter other than page and per_page is applied as a filter; dotted paths reach into metadata.
// @Tags Organizations
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Items per page (max 100)"
// @Success 200 {object} models.APIResponse "Organizations retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /organizations [get]
func (h *OrganizationController) List(c *gin.Context) {
	key := cache.Key(c.Request.URL.Path, c.Request.URL.RawQuery)
	if payload, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, payload)
		return
	}
	version := h.cache.Version(models.KindOrganization)

	page, perPage, filters := listParams(c)
	result, err := h.orgService.ListOrganizations(filters, page, perPage)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Organizations retrieved successfully",
		Data:    result,
	}
	h.cache.Set(key, response, version, models.KindOrganization)
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/organizations
// @Summary Create an organization
// @Description Create an organization. ID is optional; when omitted the next sequential ORG### id is assigned.
// @Tags Organizations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param organization body models.OrganizationInput true "Organization payload"
// @Success 201 {object} models.APIResponse "Organization created successfully"
// @Failure 400 {object} models.APIResponse "Validation failed"
// @Failure 409 {object} models.APIResponse "Duplicate id"
// @Router /organizations [post]
func (h *OrganizationController) Create(c *gin.Context) {
	var input models.OrganizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, h.logger, models.NewValidationError("", "Request body must contain valid JSON"))
		return
	}

	org, err := h.orgService.CreateOrganization(&input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Organization created successfully", org)
}

// Get handles GET /api/organizations/:id
// @Summary Get an organization
// @Description Retrieve one organization with its dependent users embedded.
// @Tags Organizations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} models.APIResponse "Organization retrieved successfully"
// @Failure 404 {object} models.APIResponse "Organization not found"
// @Router /organizations/{id} [get]
func (h *OrganizationController) Get(c *gin.Context) {
	detail, err := h.orgService.GetOrganization(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Organization retrieved successfully", detail)
}

// Update handles PUT /api/organizations/:id
// @Summary Update an organization
// @Description Partially update an organization. Omitted fields are preserved; metadata keys are merged.
// @Tags Organizations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param organization body models.OrganizationUpdate true "Fields to update"
// @Success 200 {object} models.APIResponse "Organization updated successfully"
// @Failure 400 {object} models.APIResponse "Validation failed"
// @Failure 404 {object} models.APIResponse "Organization not found"
// @Router /organizations/{id} [put]
func (h *OrganizationController) Update(c *gin.Context) {
	var upd models.OrganizationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondError(c, h.logger, models.NewValidationError("", "Request body must contain valid JSON"))
		return
	}

	org, err := h.orgService.UpdateOrganization(c.Param("id"), &upd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Organization updated successfully", org)
}

// Delete handles DELETE /api/organizations/:id
// @Summary Delete an organization
// @Description Delete an organization. Rejected while any user still references it.
// @Tags Organizations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} models.APIResponse "Organization deleted successfully"
// @Failure 400 {object} models.APIResponse "Organization still referenced"
// @Failure 404 {object} models.APIResponse "Organization not found"
// @Router /organizations/{id} [delete]
func (h *OrganizationController) Delete(c *gin.Context) {
	if err := h.orgService.DeleteOrganization(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Organization deleted successfully", nil)
}
