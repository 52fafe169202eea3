package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	response "travel_backoffice/internal/adapter/http/dto/response"
	"travel_backoffice/internal/adapter/http/handlers/mocks"
	"travel_backoffice/internal/config"
	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUploadAdminUseCase(ctrl)
	h := NewUploadHandler(uc)

	r := newTestEngine(t)
	r.GET("/uploads/pending", h.ListPendingUploads)
	r.GET("/uploads/failed", h.ListFailedUploads)

	uc.EXPECT().Pending().Return(nil)
	uc.EXPECT().Failed().Return([]entities.UploadTask{{Token: "abc", Key: "pdfs/x.pdf", Attempts: 20, LastError: "timeout"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/pending", nil))
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("unexpected pending response %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/failed", nil))
	var got []response.UploadTaskResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Key != "pdfs/x.pdf" || got[0].LastError != "timeout" {
		t.Fatalf("unexpected failed list: %+v", got)
	}
}

func TestTestEmailHandler(t *testing.T) {
	smtp := config.SMTPConfig{Host: "smtp.example.com", Port: 465, Secure: true, User: "noreply@example.com", Pass: "s3cret"}

	t.Run("send test email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewTestEmailHandler(uc, smtp)

		r := newTestEngine(t)
		r.POST("/test/send-email", h.SendTestEmail)

		uc.EXPECT().SendTestEmail(gomock.Any(), "ops@example.com").Return(nil)

		w := sendJSON(r, http.MethodPost, "/test/send-email", `{"email":"ops@example.com"}`)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"success":true`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("send test email with smtp down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewTestEmailHandler(uc, smtp)

		r := newTestEngine(t)
		r.POST("/test/send-email", h.SendTestEmail)

		uc.EXPECT().SendTestEmail(gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: refused"))

		w := sendJSON(r, http.MethodPost, "/test/send-email", `{"email":"ops@example.com"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("send test email with invalid recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewTestEmailHandler(uc, smtp)

		r := newTestEngine(t)
		r.POST("/test/send-email", h.SendTestEmail)

		w := sendJSON(r, http.MethodPost, "/test/send-email", `{"email":"not-an-email"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("recipient rejected by the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewTestEmailHandler(uc, smtp)

		r := newTestEngine(t)
		r.POST("/test/send-email", h.SendTestEmail)

		uc.EXPECT().SendTestEmail(gomock.Any(), gomock.Any()).Return(usecase.ErrInvalidRecipient)

		w := sendJSON(r, http.MethodPost, "/test/send-email", `{"email":"ops@example.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("verify smtp hides the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewTestEmailHandler(uc, smtp)
		h.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

		r := newTestEngine(t)
		r.POST("/test/verify-smtp", h.VerifySMTP)

		uc.EXPECT().VerifySMTP(gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test/verify-smtp", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.SMTPVerifyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !got.Success || got.SMTPConfig.Host != "smtp.example.com" || got.SMTPConfig.Port != 465 || !got.Timestamp.Equal(h.now()) {
			t.Fatalf("unexpected body: %+v", got)
		}
		if strings.Contains(w.Body.String(), "s3cret") {
			t.Fatalf("smtp password leaked: %s", w.Body.String())
		}
	})

	t.Run("verify smtp failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewTestEmailHandler(uc, smtp)

		r := newTestEngine(t)
		r.POST("/test/verify-smtp", h.VerifySMTP)

		uc.EXPECT().VerifySMTP(gomock.Any()).Return(errors.New("535 auth failed"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test/verify-smtp", nil))
		if w.Code != http.StatusServiceUnavailable || !strings.Contains(w.Body.String(), `"success":false`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler("development")

	r := newTestEngine(t)
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
