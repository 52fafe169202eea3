package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel_backoffice/internal/adapter/http/handlers/mocks"
	"travel_backoffice/internal/adapter/http/middleware"
	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validBookingJSON = `{
	"travelPackageId": "pkg-1",
	"fullName": "Maria Silva",
	"rg": "12.345.678-9",
	"cpf": "123.456.789-00",
	"birthDate": "1990-05-20",
	"phone": "11999990000",
	"email": "maria@example.com",
	"boardingLocation": "São Paulo",
	"city": "Campinas",
	"howDidYouMeetUs": "Instagram"
}`

func postBooking(r *gin.Engine, body, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	t.Run("anonymous booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.POST("/bookings", middleware.OptionalAuth(auth), h.CreateBooking)

		uc.EXPECT().Create(gomock.Any(), "", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.CreateBookingInput) (entities.Booking, error) {
			if in.TravelPackageID != "pkg-1" || in.BirthDate.Year() != 1990 || in.City != "Campinas" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Booking{ID: "b-1", TravelPackageID: in.TravelPackageID, UserID: "generated"}, nil
		})

		w := postBooking(r, validBookingJSON, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"id":"b-1"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("bearer subject becomes the booking user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.POST("/bookings", middleware.OptionalAuth(auth), h.CreateBooking)

		auth.EXPECT().Authenticate("tok").Return(interfaces.TokenClaims{Subject: "user-9"}, nil)
		uc.EXPECT().Create(gomock.Any(), "user-9", gomock.Any()).Return(entities.Booking{ID: "b-2", UserID: "user-9"}, nil)

		w := postBooking(r, validBookingJSON, "Bearer tok")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid cpf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.POST("/bookings", h.CreateBooking)

		w := postBooking(r, strings.Replace(validBookingJSON, "123.456.789-00", "12345678900", 1), "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"package not found", usecase.ErrTravelPackageNotFound, http.StatusNotFound, "TRAVEL_PACKAGE_NOT_FOUND"},
		{"location unavailable", fmt.Errorf("%w. Available locations: Campinas", usecase.ErrBoardingLocationUnavailable), http.StatusBadRequest, "BOARDING_LOCATION_UNAVAILABLE"},
		{"full", usecase.ErrNoSeatsAvailable, http.StatusBadRequest, "NO_SEATS_AVAILABLE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIBookingUseCase(ctrl)
			h := NewBookingHandler(uc)

			r := newTestEngine(t)
			r.POST("/bookings", h.CreateBooking)

			uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Booking{}, tc.err)

			w := postBooking(r, validBookingJSON, "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			var body struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, body.Code)
			}
			if tc.code == "BOARDING_LOCATION_UNAVAILABLE" && !strings.Contains(body.Message, "Campinas") {
				t.Fatalf("expected available locations in message, got %q", body.Message)
			}
		})
	}
}

func TestBookingHandler_Queries(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.GET("/bookings", h.ListBookings)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Booking{{ID: "b-1"}, {ID: "b-2"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings", nil))
		if w.Code != http.StatusOK || strings.Count(w.Body.String(), `"id"`) != 2 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("me requires claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.GET("/bookings/me", h.ListMyBookings)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("me lists by subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.GET("/bookings/me", middleware.AuthRequired(auth), h.ListMyBookings)

		auth.EXPECT().Authenticate("tok").Return(interfaces.TokenClaims{Subject: "user-1"}, nil)
		uc.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Booking{{ID: "b-1", UserID: "user-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/bookings/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by travel package", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.GET("/bookings/travel-package/:id", h.ListBookingsByTravelPackage)

		uc.EXPECT().ListByTravelPackage(gomock.Any(), "pkg-1").Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/travel-package/pkg-1", nil))
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.GET("/bookings/:id", h.GetBooking)

		uc.EXPECT().GetByID(gomock.Any(), "b-404").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/b-404", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.DELETE("/bookings/:id", h.DeleteBooking)

		uc.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/bookings/b-1", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("details keep unresolved references null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.GET("/bookings/details", h.ListBookingDetails)

		uc.EXPECT().Details(gomock.Any()).Return([]entities.BookingDetails{{
			Booking:       entities.Booking{ID: "b-1"},
			TravelPackage: &entities.BookingPackageSummary{Name: "Bonito", Price: 100, TravelMonth: "Março"},
		}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/details", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `"user":null`) || !strings.Contains(body, `"name":"Bonito"`) {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := newTestEngine(t)
		r.GET("/bookings/stats/city", h.StatsByCity)
		r.GET("/bookings/stats/source", h.StatsBySource)

		uc.EXPECT().StatsByCity(gomock.Any()).Return([]entities.CityStat{{City: "Campinas", TotalBookings: 3, AverageAge: 34}}, nil)
		uc.EXPECT().StatsBySource(gomock.Any()).Return([]entities.SourceStat{{Source: "Instagram", TotalBookings: 3, Percentage: "75.00%"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/stats/city", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"averageAge":34`) {
			t.Fatalf("unexpected city stats %d %s", w.Code, w.Body.String())
		}

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/stats/source", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"percentage":"75.00%"`) {
			t.Fatalf("unexpected source stats %d %s", w.Code, w.Body.String())
		}
	})
}
