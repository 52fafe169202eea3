package handlers

import (
	"net/http"

	response "travel_backoffice/internal/adapter/http/dto/response"
	"travel_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// UploadHandler is the operator view of the background upload queue.
type UploadHandler struct {
	usecase usecase.IUploadAdminUseCase
}

func NewUploadHandler(uc usecase.IUploadAdminUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// ListPendingUploads godoc
// @Summary   Uploads still waiting for the object store
// @Tags      uploads
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.UploadTaskResponse
// @Router    /uploads/pending [get]
func (h *UploadHandler) ListPendingUploads(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromUploadTasks(h.usecase.Pending()))
}

// ListFailedUploads godoc
// @Summary   Uploads that ran out of retries
// @Tags      uploads
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.UploadTaskResponse
// @Router    /uploads/failed [get]
func (h *UploadHandler) ListFailedUploads(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromUploadTasks(h.usecase.Failed()))
}
