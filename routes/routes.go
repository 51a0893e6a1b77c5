package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"venuebook/handlers"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, eventHandler *handlers.EventHandler, bookingHandler *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterEventRoutes(r, eventHandler)
	RegisterBookingRoutes(r, bookingHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "venuebook is up"})
	})
}

// RegisterEventRoutes registers admin event and tier management endpoints.
func RegisterEventRoutes(r *gin.Engine, h *handlers.EventHandler) {
	api := r.Group("/api/events")
	{
		api.POST("", h.CreateEventHandler)
		api.GET("", h.ListEventsHandler)
		api.GET("/:id", h.GetEventHandler)
		api.DELETE("/:id", h.DeleteEventHandler)

		api.POST("/:id/tiers", h.AddTierHandler)
		api.PUT("/:id/tiers", h.UpdateTierHandler)
		api.DELETE("/:id/tiers/:days", h.RemoveTierHandler)
		api.POST("/validate-tiers", h.ValidateTiersHandler)
	}
}

// RegisterBookingRoutes registers the booking session endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", h.StartSession)
		api.PUT("/session/:sessionID/selection", h.UpdateSelection)
		api.POST("/session/:sessionID/quote", h.Quote)
		api.POST("/session/:sessionID/submit", h.SubmitBooking)
		api.DELETE("/session/:sessionID", h.CancelSession)
	}
}
