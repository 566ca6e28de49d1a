package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/outfit-api/internal/platform/logger"
	"github.com/phrazzld/outfit-api/internal/platform/metrics"
)

// UnmatchedRoute labels requests that matched no registered route.
const UnmatchedRoute = "unmatched"

// NewRequestLogger returns middleware that logs each served request with the
// request-scoped logger and counts it in reg. It must run after the trace
// middleware so log lines carry the trace ID. Counters are labeled with the
// chi route pattern rather than the raw path.
func NewRequestLogger(reg *metrics.Registry, base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			labels := map[string]string{
				"method": r.Method,
				"path":   routeLabel(r),
				"status": statusClass(status),
			}
			reg.Inc(r.Context(), metrics.HTTPRequestsTotal, labels, 1)

			log := logger.FromContextOrDefault(r.Context(), base)
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", chimw.GetReqID(r.Context())),
			}

			if status >= http.StatusInternalServerError {
				reg.Inc(r.Context(), metrics.HTTPRequestErrorsTotal, labels, 1)
				log.Error("http request failed", attrs...)
				return
			}
			log.Info("http request served", attrs...)
		})
	}
}

// routeLabel returns the pattern chi matched for r. It is only complete once
// the downstream handler has run.
func routeLabel(r *http.Request) string {
	if pattern := chi.RouteContext(r.Context()).RoutePattern(); pattern != "" {
		return pattern
	}
	return UnmatchedRoute
}

func statusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500 && code < 600:
		return "5xx"
	default:
		return "0"
	}
}
