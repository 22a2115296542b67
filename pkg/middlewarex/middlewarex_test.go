package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"league_table/pkg/contextx"
	"league_table/pkg/logx"
	"league_table/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		traceID string
		kept    bool
	}{
		{name: "Header is kept", traceID: "test-trace-id", kept: true},
		{name: "Header is generated", traceID: ""},
		{name: "Header with a line break is replaced", traceID: "id\nlevel=ERROR"},
		{name: "Header too long is replaced", traceID: strings.Repeat("a", 65)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var got contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				var err error

				got, err = contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.traceID != "" {
				req.Header.Set("X-Trace-Id", tc.traceID)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			rq.NotEmpty(got)
			rq.Equal(got.String(), rec.Header().Get("X-Trace-Id"))

			if tc.kept {
				rq.Equal(tc.traceID, got.String())
			} else {
				rq.NotEqual(tc.traceID, got.String())
				rq.Len(got.String(), 20)
			}
		})
	}
}

func TestLoggerAndRecovery(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := logx.New(&buf, slog.LevelDebug)

	h := middlewarex.TraceID(middlewarex.Logger(middlewarex.Recovery(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}),
	)))

	req := httptest.NewRequest(http.MethodPost, "/v1/league/table", http.NoBody)
	req.Header.Set("X-Trace-Id", "trace-42")
	req = req.WithContext(contextx.WithLogger(req.Context(), base))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	rq.Equal(http.StatusInternalServerError, rec.Code)
	rq.JSONEq(
		`{"code":"InternalServerError","message":"Internal server error","supportId":"trace-42"}`,
		rec.Body.String(),
	)
	rq.Contains(buf.String(), "panic in handler")
	rq.Contains(buf.String(), "trace-42")
	rq.Contains(buf.String(), "/v1/league/table")
}

func TestResponseLoggingRoute(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	r := chi.NewRouter()
	r.Use(middlewarex.ResponseLogging(logx.NewNopSensitiveDataMasker(), 1024))
	r.Post("/v1/league/{kind}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/league/table", http.NoBody)
	req = req.WithContext(contextx.WithLogger(req.Context(), logx.New(&buf, slog.LevelDebug)))

	r.ServeHTTP(httptest.NewRecorder(), req)

	rq.Contains(buf.String(), "ERR")
	rq.Contains(buf.String(), "/v1/league/{kind}")
}

func TestRequestLogging(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	h := middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), 1024)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}),
	)

	body := `{"input":"Arsenal,9,6,2","password":"qwerty"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/league/table", strings.NewReader(body))
	req = req.WithContext(contextx.WithLogger(req.Context(), logx.New(&buf, slog.LevelDebug)))

	h.ServeHTTP(httptest.NewRecorder(), req)

	rq.Contains(buf.String(), "Arsenal,9,6,2")
	rq.NotContains(buf.String(), "qwerty")
	rq.Contains(buf.String(), "45")
	rq.NotContains(buf.String(), "error=")
}

func TestResponseLogging(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	h := middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), 8)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			w.Write([]byte("Arsenal,20,10,8")) //nolint:errcheck
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req = req.WithContext(contextx.WithLogger(req.Context(), logx.New(&buf, slog.LevelDebug)))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	rq.Equal(http.StatusTeapot, rec.Code)
	rq.Equal("Arsenal,20,10,8", rec.Body.String())
	rq.Contains(buf.String(), "418")
	rq.Contains(buf.String(), "GET /")
	rq.Contains(buf.String(), "15")
	rq.Contains(buf.String(), "Arsenal,")
	rq.NotContains(buf.String(), "Arsenal,20,10,8")
}
