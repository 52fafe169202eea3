package routes

import (
	"travel_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUploads = "/uploads"
	PathTest    = "/test"
)

func addUploadRoutes(rg *gin.RouterGroup, h *handlers.UploadHandler, requireAuth gin.HandlerFunc) {
	uploads := rg.Group(PathUploads, requireAuth)
	{
		uploads.GET("/pending", h.ListPendingUploads)
		uploads.GET("/failed", h.ListFailedUploads)
	}
}

func addTestRoutes(rg *gin.RouterGroup, h *handlers.TestEmailHandler) {
	test := rg.Group(PathTest)
	{
		test.GET("/health", h.Health)
		test.POST("/send-email", h.SendTestEmail)
		test.POST("/verify-smtp", h.VerifySMTP)
	}
}
