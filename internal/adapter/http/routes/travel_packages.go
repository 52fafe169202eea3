package routes

import (
	"travel_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathTravelPackages = "/travel-packages"

func addTravelPackageRoutes(rg *gin.RouterGroup, h *handlers.TravelPackageHandler, requireAuth gin.HandlerFunc) {
	packages := rg.Group(PathTravelPackages)
	{
		// Catalogo publico.
		packages.POST("", h.CreateTravelPackage)
		packages.GET("", h.ListTravelPackages)
		packages.GET("/filter", h.FilterTravelPackages)
		packages.GET("/:id", h.GetTravelPackage)
		packages.GET("/:id/image", h.GetTravelPackageImage)

		packages.PUT("/:id", requireAuth, h.UpdateTravelPackage)
		packages.DELETE("/:id", requireAuth, h.DeleteTravelPackage)
	}
}
