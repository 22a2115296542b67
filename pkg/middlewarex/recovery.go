package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"git.appkode.ru/pub/go/failure"

	"league_table/pkg/httpx/reply"
	"league_table/pkg/logx"
)

// Recovery turns a panic in a handler into a 500 JSON error carrying the
// trace id, so the client can report it.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, failure.NewInternalServerError(
					fmt.Sprintf("panic: %v", rec),
					failure.WithDescription("Internal server error"),
				))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
