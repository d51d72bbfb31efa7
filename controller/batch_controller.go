package controller

import (
	"context"
	"net/http"
	"strings"

	"mockapi-backend/models"
	"mockapi-backend/services"
	"mockapi-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type BatchController struct {
	ctx          context.Context
	batchService services.BatchServiceInterface
	logger       logger.Logger
	validator    *validator.Validate
}

func NewBatchController(ctx context.Context, batchService services.BatchServiceInterface, log logger.Logger) *BatchController {
	return &BatchController{
		ctx:          ctx,
		batchService: batchService,
		logger:       log,
		validator:    validator.New(),
	}
}

// Organizations handles POST /api/batch/organizations
// @Summary Batch organization operations
// @Description Apply up to 50 create, update, and delete operations in order. Each operation succeeds or fails independently; there is no rollback.
// @Tags Batch
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.BatchRequest true "Batch request"
// @Success 200 {object} models.APIResponse "Batch completed"
// @Failure 400 {object} models.APIResponse "Malformed request or too many operations"
// @Router /batch/organizations [post]
func (h *BatchController) Organizations(c *gin.Context) {
	h.run(c, models.KindOrganization)
}

// Users handles POST /api/batch/users
// @Summary Batch user operations
// @Description Apply up to 50 create, update, and delete operations in order. Each operation succeeds or fails independently; there is no rollback.
// @Tags Batch
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.BatchRequest true "Batch request"
// @Success 200 {object} models.APIResponse "Batch completed"
// @Failure 400 {object} models.APIResponse "Malformed request or too many operations"
// @Router /batch/users [post]
func (h *BatchController) Users(c *gin.Context) {
	h.run(c, models.KindUser)
}

// Profiles handles POST /api/batch/profiles
// @Summary Batch profile operations
// @Description Apply up to 50 create, update, and delete operations in order. Each operation succeeds or fails independently; there is no rollback.
// @Tags Batch
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.BatchRequest true "Batch request"
// @Success 200 {object} models.APIResponse "Batch completed"
// @Failure 400 {object} models.APIResponse "Malformed request or too many operations"
// @Router /batch/profiles [post]
func (h *BatchController) Profiles(c *gin.Context) {
	h.run(c, models.KindProfile)
}

func (h *BatchController) run(c *gin.Context, kind models.Kind) {
	var request models.BatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, h.logger, models.NewValidationError("", "Request body must contain valid JSON"))
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		respondError(c, h.logger, models.NewValidationError("operations", h.formatValidationErrors(err)))
		return
	}

	response, err := h.batchService.Run(kind, request.Operations)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Batch completed", response)
}

// formatValidationErrors formats struct validation errors into one readable
// message.
func (h *BatchController) formatValidationErrors(err error) string {
	var messages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				messages = append(messages, fieldError.Field()+" is required")
			case "min":
				messages = append(messages, fieldError.Field()+" must have at least "+fieldError.Param()+" items")
			case "max":
				messages = append(messages, fieldError.Field()+" must have at most "+fieldError.Param()+" items")
			case "oneof":
				messages = append(messages, fieldError.Field()+" must be one of: "+strings.ReplaceAll(fieldError.Param(), " ", ", "))
			default:
				messages = append(messages, fieldError.Field()+" is invalid")
			}
		}
	}

	if len(messages) == 0 {
		return "Request validation failed"
	}
	return strings.Join(messages, "; ")
}
