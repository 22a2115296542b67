package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"league_table/pkg/contextx"
)

const (
	headerNameTraceID = "X-Trace-Id"
	maxTraceIDLen     = 64
)

// TraceID reuses the caller's X-Trace-Id when it is a short printable token
// and generates an xid otherwise. The id is echoed in the response.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)

		if !validTraceID(traceID) {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > maxTraceIDLen {
		return false
	}

	for _, c := range traceID {
		if c <= ' ' || c > '~' {
			return false
		}
	}

	return true
}
