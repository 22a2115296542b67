package middlewarex

import (
	"log/slog"
	"net/http"

	"league_table/pkg/contextx"
	"league_table/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Logger кладёт в контекст запроса логгер, обогащённый trace id, методом и
// URL запроса. Должен идти после TraceID.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		l := logger(ctx).With(
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldURL, r.URL.String()),
			slog.String(logx.FieldIP, r.RemoteAddr),
		)

		if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
			l = l.With(logx.Stringer(logx.FieldTraceID, traceID))
		}

		next.ServeHTTP(w, r.WithContext(contextx.WithLogger(ctx, l)))
	})
}
