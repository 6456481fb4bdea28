package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"venuebook/config"
	"venuebook/handlers"
)

// RegisterRoutes wires every endpoint the site consumes.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler) {
	r.Use(corsMiddleware())

	r.GET("/health", handlers.Health)
	RegisterBookingRoutes(r, bookingHandler)
}

// RegisterBookingRoutes registers the booking core endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api")
	{
		api.GET("/games", h.GetGames)
		api.GET("/availability", h.GetAvailability)
		api.POST("/bookings", h.ConfirmBooking)
	}
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	origins := config.AppConfig.AllowedOrigins
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}
	return cors.New(cfg)
}
