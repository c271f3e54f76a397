package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// TracingMiddleware wraps HTTP handlers with OpenTelemetry tracing and
// echoes the trace id back to the browser
func TracingMiddleware(operationName string, next http.Handler) http.Handler {
	return otelhttp.NewHandler(traceIDHeader(next), operationName)
}

func traceIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sc := trace.SpanFromContext(r.Context()).SpanContext(); sc.IsValid() {
			w.Header().Set("X-Trace-Id", sc.TraceID().String())
		}
		next.ServeHTTP(w, r)
	})
}
