package probe_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"league_table/pkg/probe"
)

func TestServerHandler(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		endpoint   string
		ready      bool
		statusCode int
		body       string
	}{
		{
			name:       "Health handler",
			endpoint:   "/healthz",
			statusCode: http.StatusOK,
			body:       `{"name":"league-table","version":"v0.0.1"}`,
		},
		{
			name:       "Ready handler before MarkReady",
			endpoint:   "/ready",
			statusCode: http.StatusServiceUnavailable,
			body:       `{"name":"league-table","version":"v0.0.1"}`,
		},
		{
			name:       "Ready handler after MarkReady",
			endpoint:   "/ready",
			ready:      true,
			statusCode: http.StatusOK,
			body:       `{"name":"league-table","version":"v0.0.1"}`,
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
			body:       "404 page not found\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			probeServer := probe.NewServer(":0", probe.Options{Name: "league-table", Version: "v0.0.1"})
			if tc.ready {
				probeServer.MarkReady()
			}

			rec := httptest.NewRecorder()
			probeServer.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.endpoint, http.NoBody))

			rq.Equal(tc.statusCode, rec.Code)
			rq.Equal(tc.body, rec.Body.String())
		})
	}
}

func TestServerRun(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	probeServer := probe.NewServer(":10001", probe.Options{Name: "app-1", Version: "v0.0.1"})
	probeServer.MarkReady()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return probeServer.Run(ctx)
	})

	// Wait for server to start.
	time.Sleep(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://:10001/ready", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	rq.Equal(http.StatusOK, resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.JSONEq(`{"name":"app-1","version":"v0.0.1"}`, string(bodyBytes))

	cancel()

	rq.NoError(g.Wait())
}
