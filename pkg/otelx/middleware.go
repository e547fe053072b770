package otelx

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/aussiebroadwan/roster/pkg/otelx"

// Tracer returns the named tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// HTTPMiddleware starts a server span per request with otelhttp, continuing
// any trace carried in the inbound headers. It must wrap the ServeMux
// directly: once routing is done the span is renamed to the matched pattern.
func HTTPMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		routed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			// ServeMux fills in Pattern on the request it was handed
			if r.Pattern != "" {
				span := trace.SpanFromContext(r.Context())
				span.SetName(r.Pattern)
				span.SetAttributes(semconv.HTTPRoute(r.Pattern))
			}
		})

		return otelhttp.NewHandler(routed, "http.server",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method
			}),
		)
	}
}
