package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "travelbooking/internal/config"
	h "travelbooking/internal/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterMountsBookingRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h.Configure(h.Deps{})
	r := NewRouter(intconfig.Env{})

	mounted := map[string]bool{}
	for _, rt := range r.Routes() {
		mounted[rt.Method+" "+rt.Path] = true
	}
	for _, want := range []string{
		"POST /api/bookings",
		"GET /api/bookings",
		"GET /api/bookings/mine",
		"GET /api/bookings/:id/receipt",
		"GET /api/packages",
		"POST /api/drafts",
		"POST /api/drafts/quote",
		"POST /api/payments/request",
		"POST /api/payments/qr",
		"POST /api/payments/settle",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/logout",
		"GET /api/auth/me",
		"GET /api/health",
	} {
		assert.True(t, mounted[want], "route %s not mounted", want)
	}
}

func TestRouterHealthAndNoRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h.Configure(h.Deps{})
	r := NewRouter(intconfig.Env{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
