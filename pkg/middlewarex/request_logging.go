package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"league_table/pkg/logx"
)

// RequestLogging dumps each incoming request, masked and cut to
// logFieldMaxLen. Multipart bodies are not dumped.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			dump, err := httputil.DumpRequest(r, dumpBody)

			if len(dump) > logFieldMaxLen {
				dump = dump[:logFieldMaxLen]
			}

			attrs := []any{
				slog.Int64(logx.FieldRequestSize, r.ContentLength),
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(dump))),
			}

			// A body over the size limit fails to dump; the handler reports it.
			if err != nil {
				attrs = append(attrs, logx.Error(err))
			}

			logger(ctx).Info(logx.FieldHTTPRequest, attrs...)

			next.ServeHTTP(w, r)
		})
	}
}
