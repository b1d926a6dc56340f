// Package api serves projections and portfolio totals over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options configures the router.
type Options struct {
	Logger   *zap.Logger
	Metrics  *Metrics
	CacheTTL time.Duration // how long a projection is memoized, 0 disables the cache
	MaxBody  int64         // largest accepted request body, in bytes
}

const defaultMaxBody = 1 << 20

// NewRouter returns the API handler.
func NewRouter(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}
	if opts.MaxBody <= 0 {
		opts.MaxBody = defaultMaxBody
	}
	s := &server{
		logger:  opts.Logger,
		metrics: opts.Metrics,
		maxBody: opts.MaxBody,
	}
	if opts.CacheTTL > 0 {
		s.cache = cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(ZapLoggerMiddleware(opts.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(opts.Metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/projections", s.projectHandler)
		r.Post("/portfolio/totals", s.totalsHandler)
	})
	return r
}
