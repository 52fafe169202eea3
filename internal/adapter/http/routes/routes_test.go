package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel_backoffice/internal/adapter/http/handlers"
	"travel_backoffice/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func denyAll(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func newTestAPI() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group(PathAPI)
	addPingRoutes(api, handlers.NewHealthHandler("test"))
	addAuthRoutes(api, handlers.NewAuthHandler(nil))
	addTravelPackageRoutes(api, handlers.NewTravelPackageHandler(nil, 1), denyAll)
	addBookingRoutes(api, handlers.NewBookingHandler(nil), denyAll, func(c *gin.Context) { c.Next() })
	addUserRoutes(api, handlers.NewUserHandler(nil), denyAll)
	addUploadRoutes(api, handlers.NewUploadHandler(nil), denyAll)
	addTestRoutes(api, handlers.NewTestEmailHandler(nil, config.SMTPConfig{}))
	return r
}

func TestRoutesAreRegistered(t *testing.T) {
	r := newTestAPI()

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	expected := []string{
		"GET /api/health",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/travel-packages",
		"GET /api/travel-packages",
		"GET /api/travel-packages/filter",
		"GET /api/travel-packages/:id",
		"GET /api/travel-packages/:id/image",
		"PUT /api/travel-packages/:id",
		"DELETE /api/travel-packages/:id",
		"POST /api/bookings",
		"GET /api/bookings",
		"GET /api/bookings/me",
		"GET /api/bookings/details",
		"GET /api/bookings/stats/city",
		"GET /api/bookings/stats/source",
		"GET /api/bookings/travel-package/:id",
		"GET /api/bookings/:id",
		"DELETE /api/bookings/:id",
		"POST /api/users",
		"GET /api/users",
		"GET /api/users/:id",
		"PUT /api/users/:id",
		"DELETE /api/users/:id",
		"GET /api/uploads/pending",
		"GET /api/uploads/failed",
		"GET /api/test/health",
		"POST /api/test/send-email",
		"POST /api/test/verify-smtp",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r := newTestAPI()

	protected := []struct{ method, path string }{
		{http.MethodPut, "/api/travel-packages/pkg-1"},
		{http.MethodDelete, "/api/travel-packages/pkg-1"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/bookings/b-1"},
		{http.MethodGet, "/api/bookings/stats/city"},
		{http.MethodDelete, "/api/bookings/b-1"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/uploads/failed"},
	}
	for _, p := range protected {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
