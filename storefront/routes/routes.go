package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tair/wastesmart-storefront/internal/httpapi"
	"github.com/tair/wastesmart-storefront/storefront/health"
	"github.com/tair/wastesmart-storefront/storefront/middleware"
)

// Module is an API surface that mounts its own routes
type Module interface {
	RegisterRoutes(router *mux.Router)
}

// Options collects what the router is built from
type Options struct {
	Modules     []Module
	Middleware  middleware.MiddlewareConfig
	Health      *health.HealthChecker
	Gatherer    prometheus.Gatherer
	AuthLimiter *middleware.RateLimiter
}

// credentialPaths are the POST endpoints guarded by the sign-in rate limit
var credentialPaths = map[string]bool{
	"/api/auth/signup":   true,
	"/api/auth/login":    true,
	"/api/vendor/signup": true,
	"/api/vendor/login":  true,
}

// SetupRoutes builds the storefront router. Operational endpoints are mounted
// first and skip the session middleware.
func SetupRoutes(opts Options) *mux.Router {
	router := mux.NewRouter()

	if opts.Health != nil {
		registerHealth(router, opts.Health)
	}
	if opts.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Methods("GET")
	}
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.NewRoute().Subrouter()
	middleware.RegisterMiddlewares(api, opts.Middleware)
	if opts.AuthLimiter != nil {
		api.Use(credentialLimit(opts.AuthLimiter))
	}
	for _, m := range opts.Modules {
		m.RegisterRoutes(api)
	}

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpapi.RespondFail(w, http.StatusNotFound, "Page not found")
	})

	return router
}

func registerHealth(router *mux.Router, checker *health.HealthChecker) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpapi.RespondJSON(w, http.StatusOK, checker.QuickCheck())
	}).Methods("GET")

	router.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		httpapi.RespondJSON(w, http.StatusOK, map[string]string{"status": "alive"})
	}).Methods("GET")

	router.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		status := checker.CheckAll(ctx)
		code := http.StatusOK
		if status.Status == health.StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		httpapi.RespondJSON(w, code, status)
	}).Methods("GET")
}

func credentialLimit(limiter *middleware.RateLimiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		limited := limiter.Wrap(next.ServeHTTP)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && credentialPaths[r.URL.Path] {
				limited(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
