package routes

import (
	"travel_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup, h *handlers.HealthHandler) {
	rg.GET("/health", h.Health)
}
