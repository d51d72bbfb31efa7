package main

import (
	"context"
	"log"
	"time"

	"mockapi-backend/cache"
	"mockapi-backend/controller"
	"mockapi-backend/models"
	"mockapi-backend/utils"
	"mockapi-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title Mock API Backend
// @version 1.0
// @description In-memory mock REST service for organizations, users, and profiles.
// @description
// @description All /api data endpoints require a static Bearer token. Click the Authorize
// @description button and enter: Bearer <token> (default token: ft_test_api_2024).
// @description
// @description List endpoints accept page, per_page, and arbitrary field filters as query
// @description parameters; dotted paths (metadata.version) reach into nested objects.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5001
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Static bearer token. Enter 'Bearer' [space] and then the configured token.
func main() {
	Init()

	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Infof("config loaded: %s v%s (%s)", config.AppName, config.AppVersion, config.AppEnv)
	appLogger.Debugf("configuration:\n%s", utils.PrintPrettyJSON(config))

	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	r := gin.New()
	c := controller.NewController(ctx, config, appLogger)

	// Serve HTTP in the background (blocking call).
	go func() {
		if err := c.RegisterRoutes(ctx, config, r); err != nil {
			appLogger.Fatalf("server stopped: %v", err)
		}
	}()

	// Sweep expired cache entries on a schedule.
	janitor := cache.NewJanitor(
		c.Cache(),
		time.Duration(config.CacheSweepIntervalSeconds)*time.Second,
		logger.Component(appLogger, "janitor"),
	)
	if err := janitor.Start(); err != nil {
		appLogger.Fatalf("failed to start cache janitor: %v", err)
	}

	// Keep main goroutine alive
	select {}
}
