package routes

import (
	"travel_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth  = "/auth"
	PathUsers = "/users"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler, requireAuth gin.HandlerFunc) {
	users := rg.Group(PathUsers, requireAuth)
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}
