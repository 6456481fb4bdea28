// File: venuebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuebook/cache"
	"venuebook/config"
	"venuebook/gateway"
	"venuebook/handlers"
	"venuebook/middleware"
	"venuebook/routes"
	"venuebook/services/booking"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.ProviderAPIKey == "" {
		logger.Warn("main: PROVIDER_API_KEY is not set; provider calls will fail until it is configured")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// One gateway and one cache instance back both the availability engine
	// and the booking orchestrator.
	providerClient := gateway.New(
		config.AppConfig.ProviderBaseURL,
		config.AppConfig.ProviderAPIKey,
		logger,
	).WithTimeout(config.ProviderTimeout())
	sharedCache := cache.New(config.AppConfig.CacheCapacity)

	bookingService := &booking.DefaultBookingService{
		Gateway: providerClient,
		Cache:   sharedCache,
	}
	bookingHandler := handlers.NewBookingHandler(bookingService)

	routes.RegisterRoutes(router, bookingHandler)

	utils.StartHealthMonitor(providerClient.Ping)

	// Periodic cache janitor. Reads already delete expired entries
	// lazily; this bounds memory for keys nothing reads again.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := sharedCache.Prune(); n > 0 {
				logger.Debug("pruned expired cache entries", zap.Int("count", n))
			}
		}
	}()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
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
