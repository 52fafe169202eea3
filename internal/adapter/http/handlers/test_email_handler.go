package handlers

import (
	"errors"
	"net/http"
	"time"

	request "travel_backoffice/internal/adapter/http/dto/request"
	response "travel_backoffice/internal/adapter/http/dto/response"
	"travel_backoffice/internal/config"
	"travel_backoffice/internal/usecase"
	"travel_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// TestEmailHandler serves the development-only SMTP diagnostics.
type TestEmailHandler struct {
	usecase usecase.INotificationUseCase
	smtp    config.SMTPConfig
	now     func() time.Time
}

func NewTestEmailHandler(uc usecase.INotificationUseCase, smtp config.SMTPConfig) *TestEmailHandler {
	return &TestEmailHandler{usecase: uc, smtp: smtp, now: time.Now}
}

// SendTestEmail godoc
// @Summary  Send a test email
// @Tags     test
// @Accept   json
// @Produce  json
// @Param    body  body  request.TestEmailRequest  true  "Recipient"
// @Success  200  {object}  response.MessageResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  503  {object}  pkg.HTTPError
// @Router   /test/send-email [post]
func (h *TestEmailHandler) SendTestEmail(c *gin.Context) {
	var payload request.TestEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload("test email", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.SendTestEmail(c.Request.Context(), payload.Email); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Email de teste enviado para " + payload.Email})
}

// VerifySMTP godoc
// @Summary  Check the SMTP connection and credentials
// @Tags     test
// @Produce  json
// @Success  200  {object}  response.SMTPVerifyResponse
// @Failure  503  {object}  response.SMTPVerifyResponse
// @Router   /test/verify-smtp [post]
func (h *TestEmailHandler) VerifySMTP(c *gin.Context) {
	body := response.SMTPVerifyResponse{
		Success: true,
		Message: "Conexão SMTP verificada com sucesso",
		SMTPConfig: response.SMTPConfigResponse{
			Host:   h.smtp.Host,
			Port:   h.smtp.Port,
			Secure: h.smtp.Secure,
			User:   h.smtp.User,
		},
		Timestamp: h.now().UTC(),
	}

	if err := h.usecase.VerifySMTP(c.Request.Context()); err != nil {
		body.Success = false
		body.Message = "Falha na verificação SMTP: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	c.JSON(http.StatusOK, body)
}

// Health godoc
// @Summary  Liveness of the test endpoints
// @Tags     test
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   /test/health [get]
func (h *TestEmailHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Test endpoints are enabled"})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecipient):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid email recipient", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("SMTP_UNAVAILABLE", "Could not send email", err, http.StatusServiceUnavailable)
	}
}
