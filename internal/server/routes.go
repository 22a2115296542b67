package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"league_table/pkg/httpx/reply"
	"league_table/pkg/logx"
	"league_table/pkg/middlewarex"
)

type RouterOptions struct {
	LogFieldMaxLen int
	// MaxBodyBytes caps request bodies; zero leaves them unbounded.
	MaxBodyBytes int64
}

// NewRouter wires the middleware chain and all routes of s.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	masker := logx.NewSensitiveDataMasker()

	if opts.MaxBodyBytes > 0 {
		r.Use(middleware.RequestSize(opts.MaxBodyBytes))
	}

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Get("/", handler(s.getIndex))
		r.Post("/", handler(s.postIndex))

		r.Route("/v1", func(r chi.Router) {
			r.Route("/league", func(r chi.Router) {
				r.Post("/table", handler(s.postV1LeagueTable))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
