package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"mockapi-backend/cache"
	"mockapi-backend/middelware"
	"mockapi-backend/models"
	"mockapi-backend/repository"
	"mockapi-backend/services"
	"mockapi-backend/utils/logger"
	"mockapi-backend/utils/swagger"

	"github.com/gin-gonic/gin"

	_ "mockapi-backend/docs"

	"github.com/swaggo/swag"
)

type Controller struct {
	Organization *OrganizationController
	User         *UserController
	Profile      *ProfileController
	Search       *SearchController
	Batch        *BatchController
	System       *SystemController

	store       *repository.Store
	coordinator *cache.Coordinator
	config      *models.Config
	logger      logger.Logger
}

func NewController(ctx context.Context, cfg *models.Config, log logger.Logger) *Controller {
	store := repository.NewStore(logger.Component(log, "store"))
	coordinator := cache.New(time.Duration(cfg.CacheTTLSeconds)*time.Second, logger.Component(log, "cache"))
	store.SetInvalidator(coordinator)

	if cfg.SeedSampleData {
		store.Seed()
	}

	orgService := services.NewOrganizationService(store, cfg, log)
	userService := services.NewUserService(store, cfg, log)
	profileService := services.NewProfileService(store, cfg, log)
	searchService := services.NewSearchService(store, cfg, log)
	batchService := services.NewBatchService(orgService, userService, profileService, log)
	statsService := services.NewStatsService(store, log)

	return &Controller{
		Organization: NewOrganizationController(ctx, orgService, coordinator, cfg, log),
		User:         NewUserController(ctx, userService, coordinator, cfg, log),
		Profile:      NewProfileController(ctx, profileService, coordinator, cfg, log),
		Search:       NewSearchController(ctx, searchService, coordinator, cfg, log),
		Batch:        NewBatchController(ctx, batchService, log),
		System:       NewSystemController(ctx, statsService, store, coordinator, cfg, log),

		store:       store,
		coordinator: coordinator,
		config:      cfg,
		logger:      log,
	}
}

// Cache exposes the response cache so the janitor can sweep it.
func (c *Controller) Cache() *cache.Coordinator {
	return c.coordinator
}

func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine) error {
	c.Routes(config, r)

	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}
	c.logger.Infof("starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Routes wires the middleware chain and every endpoint onto r.
func (c *Controller) Routes(config *models.Config, r *gin.Engine) {
	logging := middelware.NewLoggingMiddleware(c.logger)
	auth := middelware.NewAuthMiddleware(config, c.logger)
	cors := middelware.NewCORSMiddleware(config)
	limits := middelware.NewRateLimitMiddleware(c.logger)

	r.Use(middelware.RequestID())
	r.Use(logging.RequestLogger())
	r.Use(logging.Recovery())
	r.Use(cors.CORS())

	// Public surface: API index and documentation.
	r.GET("/", c.System.Index)

	swaggerConfig := swagger.SwaggerConfig{
		Title:         config.AppName,
		SwaggerDocURL: "/swagger/doc.json",
	}
	r.GET("/swagger", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/index.html", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/doc.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OpenAPI document unavailable"})
			return
		}
		c.Data(http.StatusOK, "application/json", []byte(doc))
	})

	api := r.Group("/api")

	// System endpoints: health and version are open, stats needs the token.
	system := limits.Limit("system", config.RateLimitSystemPerMinute)
	api.GET("/health", system, c.System.Health)
	api.GET("/version", system, c.System.Version)
	api.GET("/stats", system, auth.RequireToken(), c.System.Stats)

	// Data endpoints: token plus the default rate class.
	data := api.Group("", auth.RequireToken(), limits.Limit("default", config.RateLimitRequestsPerMinute))

	orgs := data.Group("/organizations")
	orgs.GET("", c.Organization.List)
	orgs.POST("", c.Organization.Create)
	orgs.GET("/:id", c.Organization.Get)
	orgs.PUT("/:id", c.Organization.Update)
	orgs.DELETE("/:id", c.Organization.Delete)

	users := data.Group("/users")
	users.GET("", c.User.List)
	users.POST("", c.User.Create)
	users.GET("/:id", c.User.Get)
	users.PUT("/:id", c.User.Update)
	users.DELETE("/:id", c.User.Delete)

	profiles := data.Group("/profiles")
	profiles.GET("", c.Profile.List)
	profiles.POST("", c.Profile.Create)
	profiles.GET("/:id", c.Profile.Get)
	profiles.PUT("/:id", c.Profile.Update)
	profiles.DELETE("/:id", c.Profile.Delete)

	api.GET("/search/advanced",
		auth.RequireToken(),
		limits.Limit("search", config.RateLimitSearchPerMinute),
		c.Search.Advanced)

	batch := api.Group("/batch",
		auth.RequireToken(),
		limits.Limit("batch", config.RateLimitBatchPerMinute))
	batch.POST("/organizations", c.Batch.Organizations)
	batch.POST("/users", c.Batch.Users)
	batch.POST("/profiles", c.Batch.Profiles)
}

// respondError maps an application error onto the response envelope. Errors
// without a recognized kind are treated as unexpected and reported
// generically.
func respondError(c *gin.Context, log logger.Logger, err error) {
	kind := models.KindOfError(err)

	var status int
	switch kind {
	case models.ErrorKindValidation, models.ErrorKindMalformedFilter, models.ErrorKindReference:
		status = http.StatusBadRequest
	case models.ErrorKindDuplicate:
		status = http.StatusConflict
	case models.ErrorKindNotFound:
		status = http.StatusNotFound
	default:
		log.Errorf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal Server Error",
			Error: &models.APIError{
				Type:    "InternalError",
				Details: "An unexpected error occurred",
			},
		})
		return
	}

	c.JSON(status, models.APIResponse{
		Status:  "error",
		Code:    status,
		Message: err.Error(),
		Error: &models.APIError{
			Type:    string(kind),
			Details: err.Error(),
			Field:   models.FieldOfError(err),
		},
	})
}

func respondSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, models.APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// listParams pulls page and per_page from the query string and treats every
// remaining parameter as a field filter (dotted paths allowed). Malformed
// numbers fall back to defaults rather than erroring, matching the lenient
// handling of the list endpoints.
func listParams(c *gin.Context) (page, perPage int, filters map[string]string) {
	page, _ = strconv.Atoi(c.Query("page"))
	perPage, _ = strconv.Atoi(c.Query("per_page"))

	filters = make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if key == "page" || key == "per_page" {
			continue
		}
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}
	return page, perPage, filters
}
