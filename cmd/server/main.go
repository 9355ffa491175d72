package main

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

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/skdeore/rtopulse/config"
	"github.com/skdeore/rtopulse/internal/corpus"
	"github.com/skdeore/rtopulse/internal/httpserv"
	"github.com/skdeore/rtopulse/internal/runtime"
	"github.com/skdeore/rtopulse/pkg/version"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var (
		addr            string
		shutdownTimeout time.Duration
	)
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides RTOPULSE_ADDR)")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", config.DefaultShutdownTimeout, "Graceful shutdown timeout")
	flag.Parse()

	logger := zlog.With().Str("service", "rtopulse-server").Logger()

	cfg := config.FromEnv()
	if addr != "" {
		cfg.ListenAddr = addr
	}
	// Misconfiguration is the only fatal path; everything past this point
	// degrades to empty tables instead of failing.
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		fmt.Fprintln(os.Stderr, "invalid configuration; check RTOPULSE_* environment variables")
		os.Exit(1)
	}
	for _, year := range cfg.Years() {
		logger.Info().Int("year", year).Str("dir", cfg.YearDirs[year]).Msg("data partition configured")
	}

	store := corpus.NewStore(cfg.YearDirs, cfg.RecheckInterval, nil, nil, logger)

	limits := runtime.NewLimits(cfg.MaxConcurrent)
	controller := runtime.NewController(limits)

	// Warm the cache so the first request does not pay the full parse cost.
	snap := store.Load(true)
	if snap.Empty() {
		logger.Warn().Msg("corpus is empty after initial load; serving no-data views")
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: httpserv.New(store, cfg, logger).Router(runtime.NewMiddleware(controller)),
	}

	logger.Info().
		Str("version", version.Version()).
		Str("addr", cfg.ListenAddr).
		Int("max_concurrent_requests", limits.MaxConcurrentRequests).
		Dur("recheck_interval", cfg.RecheckInterval).
		Msg("server bootstrap configured")

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error().Err(err).Msg("server error")
		os.Exit(1)
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
