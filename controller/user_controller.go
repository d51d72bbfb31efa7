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

type UserController struct {
	ctx         context.Context
	userService services.UserServiceInterface
	cache       *cache.Coordinator
	config      *models.Config
	logger      logger.Logger
}

func NewUserController(ctx context.Context, userService services.UserServiceInterface, coordinator *cache.Coordinator, cfg *models.Config, log logger.Logger) *UserController {
	return &UserController{
		ctx:         ctx,
		userService: userService,
		cache:       coordinator,
		config:      cfg,
		logger:      log,
	}
}

// List handles GET /api/users
// @Summary List users
// @Description Retrieve users with pagination and field filters. Any query parameter other than page and per_page is applied as a filter; dotted paths reach into metadata.
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Items per page (max 100)"
// @Param organization_id query string false "Filter by organization"
// @Success 200 {object} models.APIResponse "Users retrieved successfully"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /users [get]
func (h *UserController) List(c *gin.Context) {
	key := cache.Key(c.Request.URL.Path, c.Request.URL.RawQuery)
	if payload, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, payload)
		return
	}
	version := h.cache.Version(models.KindUser)

	page, perPage, filters := listParams(c)
	result, err := h.userService.ListUsers(filters, page, perPage)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Users retrieved successfully",
		Data:    result,
	}
	h.cache.Set(key, response, version, models.KindUser)
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/users
// @Summary Create a user
// @Description Create a user. Email must be unique; organization_id, when set, must reference an existing organization.
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user body models.UserInput true "User payload"
// @Success 201 {object} models.APIResponse "User created successfully"
// @Failure 400 {object} models.APIResponse "Validation failed or dangling organization reference"
// @Failure 409 {object} models.APIResponse "Duplicate id or email"
// @Router /users [post]
func (h *UserController) Create(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, h.logger, models.NewValidationError("", "Request body must contain valid JSON"))
		return
	}

	user, err := h.userService.CreateUser(&input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "User created successfully", user)
}

// Get handles GET /api/users/:id
// @Summary Get a user
// @Description Retrieve one user with the referenced organization embedded when present.
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.APIResponse "User retrieved successfully"
// @Failure 404 {object} models.APIResponse "User not found"
// @Router /users/{id} [get]
func (h *UserController) Get(c *gin.Context) {
	detail, err := h.userService.GetUser(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, "User retrieved successfully", detail)
}

// Update handles PUT /api/users/:id
// @Summary Update a user
// @Description Partially update a user. Setting organization_id to the empty string clears the reference.
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body models.UserUpdate true "Fields to update"
// @Success 200 {object} models.APIResponse "User updated successfully"
// @Failure 400 {object} models.APIResponse "Validation failed"
// @Failure 404 {object} models.APIResponse "User not found"
// @Failure 409 {object} models.APIResponse "Duplicate email"
// @Router /users/{id} [put]
func (h *UserController) Update(c *gin.Context) {
	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondError(c, h.logger, models.NewValidationError("", "Request body must contain valid JSON"))
		return
	}

	user, err := h.userService.UpdateUser(c.Param("id"), &upd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "User updated successfully", user)
}

// Delete handles DELETE /api/users/:id
// @Summary Delete a user
// @Description Delete a user. The freed id is never reassigned.
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.APIResponse "User deleted successfully"
// @Failure 404 {object} models.APIResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserController) Delete(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, "User deleted successfully", nil)
}
