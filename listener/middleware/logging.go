package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logging returns a middleware that logs one record per request via global slog:
// method, path, route pattern, status, response size, duration and request ID.
// Log level is Info for 2xx/3xx, Warn for 4xx, Error for 5xx.
func Logging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			}

			if route := routePattern(r); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}

			if reqID := chimw.GetReqID(r.Context()); reqID != "" {
				attrs = append(attrs, slog.String("request_id", reqID))
			}

			msg := "http request"

			switch {
			case status >= http.StatusInternalServerError:
				slog.Error(msg, attrs...) //nolint:gosec // G706: msg is a hardcoded constant, not user input.
			case status >= http.StatusBadRequest:
				slog.Warn(msg, attrs...) //nolint:gosec // G706: msg is a hardcoded constant, not user input.
			default:
				slog.Info(msg, attrs...) //nolint:gosec // G706: msg is a hardcoded constant, not user input.
			}
		})
	}
}

// routePattern returns the matched chi route, e.g. "/v1/sections/{section}",
// or "" outside a chi router.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}

	return rctx.RoutePattern()
}
