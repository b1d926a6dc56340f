package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/compound/api"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr     string
	cacheTTL time.Duration
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve projections over HTTP" }
func (*serveCmd) Usage() string {
	return `invest serve [-addr <host:port>] [-cache-ttl <duration>]

  Serves the projection API until interrupted.
  See 'invest topic serve' for the endpoints.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", config.Addr, "address to listen on (env "+EnvAddr+")")
	f.DurationVar(&c.cacheTTL, "cache-ttl", config.CacheTTL, "how long projections are cached, 0 disables the cache (env "+EnvCacheTTL+")")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := NewLogger()
	defer logger.Sync()

	router := api.NewRouter(api.Options{
		Logger:   logger,
		Metrics:  api.NewMetrics(),
		CacheTTL: c.cacheTTL,
	})
	srv := &http.Server{
		Addr:         c.addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", c.addr), zap.Duration("cache_ttl", c.cacheTTL))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Error serving on %s: %v\n", c.addr, err)
			return subcommands.ExitFailure
		}
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error shutting down server: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Info("server stopped")
	return subcommands.ExitSuccess
}
