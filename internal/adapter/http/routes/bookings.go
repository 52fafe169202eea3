package routes

import (
	"travel_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathBookings = "/bookings"

func addBookingRoutes(rg *gin.RouterGroup, h *handlers.BookingHandler, requireAuth, optionalAuth gin.HandlerFunc) {
	bookings := rg.Group(PathBookings)
	{
		// Reserva anonima; com token a reserva fica vinculada ao usuario.
		bookings.POST("", optionalAuth, h.CreateBooking)
	}

	admin := bookings.Group("", requireAuth)
	{
		admin.GET("", h.ListBookings)
		admin.GET("/me", h.ListMyBookings)
		admin.GET("/details", h.ListBookingDetails)
		admin.GET("/stats/city", h.StatsByCity)
		admin.GET("/stats/source", h.StatsBySource)
		admin.GET("/travel-package/:id", h.ListBookingsByTravelPackage)
		admin.GET("/:id", h.GetBooking)
		admin.DELETE("/:id", h.DeleteBooking)
	}
}
