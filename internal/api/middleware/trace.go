package middleware

import (
	"log/slog"
	"net/http"

	"github.com/aroundtheus/around-api/internal/api/shared"
	"github.com/aroundtheus/around-api/internal/platform/logger"
)

// Trace adds a per-request trace ID to the context and stores a
// trace-scoped logger alongside it, so every log line produced while
// serving the request can be correlated. Apply early in the chain.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
