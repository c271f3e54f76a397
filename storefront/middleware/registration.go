package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// MiddlewareConfig holds middleware configuration
type MiddlewareConfig struct {
	EnableLogging bool
	EnableTracing bool
	// Session loads the browser session; nil leaves every request anonymous
	Session mux.MiddlewareFunc
}

func DefaultMiddlewareConfig(session mux.MiddlewareFunc) MiddlewareConfig {
	return MiddlewareConfig{
		EnableLogging: true,
		EnableTracing: true,
		Session:       session,
	}
}

// RegisterMiddlewares registers all middlewares to the router. Tracing wraps
// logging so request logs carry the trace id.
func RegisterMiddlewares(router *mux.Router, config MiddlewareConfig) {
	if config.EnableTracing {
		router.Use(func(next http.Handler) http.Handler {
			return TracingMiddleware("storefront-request", next)
		})
	}
	if config.EnableLogging {
		router.Use(LoggingMiddleware)
	}
	if config.Session != nil {
		router.Use(config.Session)
	}
}
