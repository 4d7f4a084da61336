package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"scenicinn/config"
	"scenicinn/database"
	"scenicinn/handlers"
	"scenicinn/middleware"
	"scenicinn/routes"
	"scenicinn/services/booking"
	"scenicinn/services/catalog"
	"scenicinn/services/notification"
	"scenicinn/services/render"
	"scenicinn/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	// Catalog backend: the seeded in-memory catalog, or the database-backed
	// one, optionally wrapped in the Redis cache.
	var reader catalog.Reader
	switch cfg.CatalogSource {
	case "mongo":
		database.InitDB()
		reader = catalog.NewMongoCatalog(database.MongoClient, cfg.MongoDatabase)
	case "memory":
		reader = catalog.NewMemoryCatalog()
	default:
		logger.Sugar().Fatalf("main: unknown catalog source %q", cfg.CatalogSource)
	}
	if cfg.RedisAddr != "" {
		utils.InitRedis()
		ttl := time.Duration(cfg.MenuCacheTTLMin) * time.Minute
		reader = catalog.NewCachedReader(reader, utils.GetCacheClient(), ttl, logger)
	}

	if cfg.DeliveryStrategy != notification.StrategyInline && cfg.DeliveryStrategy != notification.StrategyAttachment {
		logger.Sugar().Fatalf("main: unknown delivery strategy %q", cfg.DeliveryStrategy)
	}

	// Booking workflow: validator, renderer and dispatcher composed once at
	// startup; credentials and venue identity are injected here, never read
	// inside the services.
	sender := notification.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dispatcher := notification.NewMailDispatcher(notification.Config{
		From:       cfg.SMTPUser,
		VenueName:  cfg.VenueName,
		VenueEmail: cfg.VenueEmail,
		Strategy:   cfg.DeliveryStrategy,
	}, sender, logger)
	renderer := render.NewConfirmationRenderer(cfg.VenueName)
	workflow := booking.NewWorkflow(booking.NewValidator(), renderer, dispatcher, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	menuHandler := handlers.NewMenuHandler(reader, logger)
	bookingHandler := handlers.NewBookingHandler(workflow, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Health:        handlers.NewHealthHandler(cfg.Version),
		ListMenus:     menuHandler.ListMenus,
		ListMenuItems: menuHandler.ListMenuItems,
		SubmitBooking: bookingHandler.SubmitBooking,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
