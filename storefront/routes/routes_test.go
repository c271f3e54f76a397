package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/wastesmart-storefront/storefront/health"
	"github.com/tair/wastesmart-storefront/storefront/middleware"
)

type stubModule struct{}

func (stubModule) RegisterRoutes(router *mux.Router) {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	router.HandleFunc("/api/auth/login", ok).Methods("POST")
	router.HandleFunc("/api/products", ok).Methods("GET")
}

func newRouter(t *testing.T, checks map[string]health.CheckFunc, sessionHits *int) *mux.Router {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	session := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*sessionHits++
			next.ServeHTTP(w, r)
		})
	}

	return SetupRoutes(Options{
		Modules:     []Module{stubModule{}},
		Middleware:  middleware.MiddlewareConfig{Session: session},
		Health:      health.NewHealthChecker("storefront", checks),
		Gatherer:    prometheus.NewRegistry(),
		AuthLimiter: middleware.NewRateLimiter(rdb, "auth", 2, time.Minute),
	})
}

func TestHealthSkipsSession(t *testing.T) {
	hits := 0
	router := newRouter(t, nil, &hits)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, hits)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, hits)
}

func TestReadinessReportsUnhealthy(t *testing.T) {
	hits := 0
	router := newRouter(t, map[string]health.CheckFunc{
		"backend": func(context.Context) error { return errors.New("connection refused") },
	}, &hits)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body health.StorefrontHealth
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, health.StatusUnhealthy, body.Status)
	assert.Equal(t, "connection refused", body.Dependencies["backend"].Error)
}

func TestCredentialRateLimit(t *testing.T) {
	hits := 0
	router := newRouter(t, nil, &hits)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	hits := 0
	router := newRouter(t, nil, &hits)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
