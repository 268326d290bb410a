package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bracurobu/traction-intake/internal/config"
	"github.com/bracurobu/traction-intake/internal/handlers"
	"github.com/bracurobu/traction-intake/internal/logger"
	"github.com/bracurobu/traction-intake/internal/middleware"
	"github.com/bracurobu/traction-intake/internal/services"
	"github.com/bracurobu/traction-intake/internal/session"
	"github.com/bracurobu/traction-intake/internal/upstream"
	"github.com/bracurobu/traction-intake/internal/validation"
)

func main() {
	// 1. Configuration (.env + environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatal("Error building logger: ", err)
	}
	defer zlog.Sync()

	// 2. Upstream client and session store
	client := upstream.NewClient(cfg.ApplicantsBaseURL, cfg.APIBaseURL, nil)
	sessions := session.NewStore(cfg.CookieSecure)

	// 3. Core services
	schema := validation.NewSchema()
	registrationService := services.NewRegistrationService(schema, client, zlog)
	listingService := services.NewListingService(client, zlog)
	exportService := services.NewExportService(zlog)

	// 4. Handlers
	registrationHandler := handlers.NewRegistrationHandler(registrationService, cfg.RecruitmentOpen, zlog)
	authHandler := handlers.NewAuthHandler(client, sessions, zlog)
	dashboardHandler := handlers.NewDashboardHandler(listingService, sessions, zlog)
	exportHandler := handlers.NewExportHandler(listingService, exportService, sessions, zlog)

	// 5. Router, CORS, middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(zlog))

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true // For development only
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	r.Use(cors.New(corsCfg))

	// 6. Route table
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/status", registrationHandler.Status)

		// Public form
		api.POST("/register", registrationHandler.Register)

		// Admin session
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		// Dashboard (session required)
		authed := api.Group("", middleware.RequireSession(sessions))
		authed.GET("/applicants", dashboardHandler.List)
		authed.GET("/applicants/export", exportHandler.Export)
	}

	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.Bool("recruitment_open", cfg.RecruitmentOpen))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server failed to start", zap.Error(err))
	}
}
