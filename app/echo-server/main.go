package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	httpMetrics "driverStamps/app/echo-server/metrics"
	"driverStamps/app/echo-server/router"
	"driverStamps/business/activity"
	"driverStamps/business/console"
	"driverStamps/business/identity"
	"driverStamps/business/stamp"
	"driverStamps/internal/middleware"
	psqlRepo "driverStamps/internal/repository/postgres"
	"driverStamps/internal/rest"
	"driverStamps/internal/view"
	"driverStamps/pkg/config"
	"driverStamps/pkg/database"
	"driverStamps/pkg/logger"
	"driverStamps/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()

	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "env", cfg.App.Environment)

	if cfg.Backend.URL == config.PlaceholderBackendURL || cfg.Backend.APIKey == config.PlaceholderBackendAPIKey {
		logger.Warn("Backend credentials not set, using placeholders; backend requests will fail")
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to open backend client", "error", err)
	}
	defer database.Close(db)

	metrics.Init()
	httpMetrics.Init()

	loc := cfg.App.Location()

	// Init repo
	customerRepo := psqlRepo.NewCustomerRepository(db)
	restaurantRepo := psqlRepo.NewRestaurantRepository(db)
	cardRepo := psqlRepo.NewLoyaltyCardRepository(db)
	movementRepo := psqlRepo.NewMovementRepository(db)

	// Init service
	identityService := identity.NewIdentityService(customerRepo, restaurantRepo, cfg.Console.MinQueryLength, cfg.Console.ResultLimit)
	stampService := stamp.NewStampService(identityService, cardRepo, movementRepo)
	activityService := activity.NewActivityService(movementRepo, cfg.Console.HistoryLimit, cfg.Console.RecentLimit, loc)

	sessions, err := console.NewSessionStore(cfg.Console.SessionCapacity, func() *console.Console {
		return console.NewConsole(identityService, stampService, activityService, console.Options{
			SearchDebounce: cfg.Console.SearchDebounce,
			SearchTimeout:  cfg.Server.RequestTimeout,
			SuccessReset:   cfg.Console.SuccessReset,
			MinQueryLength: cfg.Console.MinQueryLength,
		})
	})
	if err != nil {
		logger.Fatal("Failed to create session store", "error", err)
	}
	defer sessions.Purge()

	renderer, err := view.NewRenderer(loc)
	if err != nil {
		logger.Fatal("Failed to load templates", "error", err)
	}

	// Init handler
	consoleHandler := rest.NewConsoleHandler(sessions, cfg.App.Name, cfg.Server.RequestTimeout)
	identityHandler := rest.NewIdentityHandler(identityService, cfg.Server.RequestTimeout)
	stampHandler := rest.NewStampHandler(stampService, cfg.Server.RequestTimeout)
	movementHandler := rest.NewMovementHandler(activityService, cfg.Server.RequestTimeout)
	loyaltyCardHandler := rest.NewLoyaltyCardHandler()
	healthHandler := rest.NewHealthHandler(cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(httpMetrics.Middleware())
	e.Use(middleware.RequestLogger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupConsoleRoutes(e, api, consoleHandler, middleware.DriverSession())
	router.SetupIdentityRoutes(api, identityHandler)
	router.SetupStampRoutes(api, stampHandler, movementHandler)
	router.SetupLoyaltyCardRoutes(e, api, loyaltyCardHandler)
	router.SetupOpsRoutes(e, healthHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
