package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	request "travel_backoffice/internal/adapter/http/dto/request"
	response "travel_backoffice/internal/adapter/http/dto/response"
	"travel_backoffice/internal/adapter/http/handlers/mocks"
	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidators(); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	return gin.New()
}

type formFile struct {
	field, name, contentType string
	data                     []byte
}

func multipartBody(t *testing.T, fields map[string][]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, values := range fields {
		for _, v := range values {
			if err := w.WriteField(k, v); err != nil {
				t.Fatalf("write field: %v", err)
			}
		}
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write(f.data)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func validPackageForm() map[string][]string {
	return map[string][]string{
		"name":              {"Bonito"},
		"price":             {"1500.50"},
		"description":       {"Flutuação e grutas"},
		"maxPeople":         {"20"},
		"boardingLocations": {`["Av. Paulista, 1000 - 07:00","Campinas"]`},
		"travelMonth":       {"Março"},
		"travelDate":        {"15/03/2026"},
		"travelTime":        {"06:30"},
	}
}

func TestTravelPackageHandler_CreateTravelPackage(t *testing.T) {
	image := formFile{field: "image", name: "cover.png", contentType: "image/png", data: []byte("png-bytes")}
	pdf := formFile{field: "pdf", name: "roteiro.pdf", contentType: "application/pdf", data: []byte("%PDF-1.4")}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 1)

		r := newTestEngine(t)
		r.POST("/travel-packages", h.CreateTravelPackage)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateTravelPackageInput) (entities.TravelPackage, error) {
			if in.Name != "Bonito" || in.Price != 1500.50 || in.MaxPeople != 20 {
				t.Fatalf("unexpected input: %+v", in)
			}
			if len(in.BoardingLocations) != 2 || in.BoardingLocations[0] != "Av. Paulista, 1000 - 07:00" || in.BoardingLocations[1] != "Campinas" {
				t.Fatalf("unexpected boarding locations: %v", in.BoardingLocations)
			}
			if in.Image == nil || string(in.Image.Data) != "png-bytes" || in.Image.ContentType != "image/png" {
				t.Fatalf("unexpected image: %+v", in.Image)
			}
			if in.Pdf == nil || in.Pdf.Filename != "roteiro.pdf" {
				t.Fatalf("unexpected pdf: %+v", in.Pdf)
			}
			return entities.TravelPackage{ID: "pkg-1", Name: in.Name, BoardingLocations: in.BoardingLocations}, nil
		})

		body, ct := multipartBody(t, validPackageForm(), image, pdf)
		req := httptest.NewRequest(http.MethodPost, "/travel-packages", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got response.TravelPackageResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.ID != "pkg-1" || len(got.BoardingLocations) != 2 {
			t.Fatalf("unexpected body: %+v", got)
		}
	})

	t.Run("invalid travel date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 1)

		r := newTestEngine(t)
		r.POST("/travel-packages", h.CreateTravelPackage)

		form := validPackageForm()
		form["travelDate"] = []string{"31/02/2026"}
		body, ct := multipartBody(t, form, image)
		req := httptest.NewRequest(http.MethodPost, "/travel-packages", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing image is mapped by the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 1)

		r := newTestEngine(t)
		r.POST("/travel-packages", h.CreateTravelPackage)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateTravelPackageInput) (entities.TravelPackage, error) {
			if in.Image != nil {
				t.Fatalf("expected no image")
			}
			return entities.TravelPackage{}, usecase.ErrImageRequired
		})

		body, ct := multipartBody(t, validPackageForm())
		req := httptest.NewRequest(http.MethodPost, "/travel-packages", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body over the upload limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 1)

		r := newTestEngine(t)
		r.POST("/travel-packages", h.CreateTravelPackage)

		big := formFile{field: "image", name: "huge.jpg", contentType: "image/jpeg", data: bytes.Repeat([]byte("x"), 2<<20)}
		body, ct := multipartBody(t, validPackageForm(), big)
		req := httptest.NewRequest(http.MethodPost, "/travel-packages", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge && w.Code != http.StatusBadRequest {
			t.Fatalf("expected 413 or 400, got %d", w.Code)
		}
	})
}

func TestTravelPackageHandler_ListAndFilter(t *testing.T) {
	t.Run("list passes parsed sort options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 0)

		r := newTestEngine(t)
		r.GET("/travel-packages", h.ListTravelPackages)

		uc.EXPECT().List(gomock.Any(), entities.ParseSortField("price"), entities.ParseSortOrder("desc")).
			Return([]entities.TravelPackage{{ID: "a"}, {ID: "b"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/travel-packages?sortBy=price&sortOrder=desc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []response.TravelPackageResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 2 {
			t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
		}
	})

	t.Run("filter clamps pagination and returns meta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 0)

		r := newTestEngine(t)
		r.GET("/travel-packages/filter", h.FilterTravelPackages)

		uc.EXPECT().Filter(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, q entities.PackageQuery) (entities.PackagePage, entities.PaginationMeta, error) {
			if q.Page != 1 || q.Limit != 100 || q.Month != "março" {
				t.Fatalf("unexpected query: %+v", q)
			}
			return entities.PackagePage{Data: []entities.TravelPackage{{ID: "a"}}, Total: 1, Pages: 1},
				entities.NewPaginationMeta(1, 100, 1, 1), nil
		})

		req := httptest.NewRequest(http.MethodGet, "/travel-packages/filter?month=Mar%C3%A7o&page=-3&limit=1000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.TravelPackagePageResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got.Data) != 1 || got.Meta.TotalItems != 1 || got.Meta.HasNextPage {
			t.Fatalf("unexpected body: %+v", got)
		}
	})
}

func TestTravelPackageHandler_GetAndImage(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", usecase.ErrTravelPackageNotFound, http.StatusNotFound},
		{"invalid id", usecase.ErrInvalidTravelPackageID, http.StatusBadRequest},
		{"internal", errors.New("dynamo down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run("get "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockITravelPackageUseCase(ctrl)
			h := NewTravelPackageHandler(uc, 0)

			r := newTestEngine(t)
			r.GET("/travel-packages/:id", h.GetTravelPackage)

			uc.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.TravelPackage{}, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/travel-packages/pkg-1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.status == http.StatusInternalServerError && strings.Contains(w.Body.String(), "dynamo down") {
				t.Fatalf("internal cause leaked to client: %s", w.Body.String())
			}
		})
	}

	t.Run("image url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 0)

		r := newTestEngine(t)
		r.GET("/travel-packages/:id/image", h.GetTravelPackageImage)

		uc.EXPECT().GetImageURL(gomock.Any(), "pkg-1").Return("https://b.s3.sa-east-1.amazonaws.com/images/x.jpg", nil)

		req := httptest.NewRequest(http.MethodGet, "/travel-packages/pkg-1/image", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"imageUrl":"https://b.s3.sa-east-1.amazonaws.com/images/x.jpg"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("package without image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 0)

		r := newTestEngine(t)
		r.GET("/travel-packages/:id/image", h.GetTravelPackageImage)

		uc.EXPECT().GetImageURL(gomock.Any(), "pkg-1").Return("", usecase.ErrImageNotFound)

		req := httptest.NewRequest(http.MethodGet, "/travel-packages/pkg-1/image", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTravelPackageHandler_UpdateTravelPackage(t *testing.T) {
	t.Run("json patch only carries present fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 0)

		r := newTestEngine(t)
		r.PUT("/travel-packages/:id", h.UpdateTravelPackage)

		uc.EXPECT().Update(gomock.Any(), "pkg-1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.UpdateTravelPackageInput) (entities.TravelPackage, error) {
			p := in.Patch
			if p.MaxPeople == nil || *p.MaxPeople != 30 {
				t.Fatalf("expected maxPeople 30, got %v", p.MaxPeople)
			}
			if p.Name != nil || p.Price != nil || in.Image != nil {
				t.Fatalf("unexpected fields in patch: %+v", in)
			}
			if p.BoardingLocations == nil || len(*p.BoardingLocations) != 1 {
				t.Fatalf("expected one boarding location, got %v", p.BoardingLocations)
			}
			return entities.TravelPackage{ID: "pkg-1", MaxPeople: 30}, nil
		})

		req := httptest.NewRequest(http.MethodPut, "/travel-packages/pkg-1", bytes.NewBufferString(`{"maxPeople":30,"boardingLocations":["Sorocaba"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("multipart update with new image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 1)

		r := newTestEngine(t)
		r.PUT("/travel-packages/:id", h.UpdateTravelPackage)

		uc.EXPECT().Update(gomock.Any(), "pkg-1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.UpdateTravelPackageInput) (entities.TravelPackage, error) {
			if in.Image == nil || in.Pdf != nil {
				t.Fatalf("expected only an image, got %+v", in)
			}
			if in.Patch.Name == nil || *in.Patch.Name != "Novo nome" {
				t.Fatalf("expected name in patch")
			}
			if in.Patch.BoardingLocations == nil || len(*in.Patch.BoardingLocations) != 2 {
				t.Fatalf("expected two boarding locations, got %v", in.Patch.BoardingLocations)
			}
			return entities.TravelPackage{ID: "pkg-1"}, nil
		})

		body, ct := multipartBody(t,
			map[string][]string{"name": {"Novo nome"}, "boardingLocations": {"Santos", "Jundiaí"}},
			formFile{field: "image", name: "new.jpg", contentType: "image/jpeg", data: []byte("jpg")},
		)
		req := httptest.NewRequest(http.MethodPut, "/travel-packages/pkg-1", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITravelPackageUseCase(ctrl)
		h := NewTravelPackageHandler(uc, 0)

		r := newTestEngine(t)
		r.PUT("/travel-packages/:id", h.UpdateTravelPackage)

		req := httptest.NewRequest(http.MethodPut, "/travel-packages/pkg-1", bytes.NewBufferString(`{"price":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTravelPackageHandler_DeleteTravelPackage(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", usecase.ErrTravelPackageNotFound, http.StatusNotFound},
		{"has bookings", fmt.Errorf("%w (3)", usecase.ErrPackageHasBookings), http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockITravelPackageUseCase(ctrl)
			h := NewTravelPackageHandler(uc, 0)

			r := newTestEngine(t)
			r.DELETE("/travel-packages/:id", h.DeleteTravelPackage)

			uc.EXPECT().Delete(gomock.Any(), "pkg-1").Return(tc.err)

			req := httptest.NewRequest(http.MethodDelete, "/travel-packages/pkg-1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}
