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

	"github.com/iwvelando/mortgage-payoff/internal/logging"
	"github.com/iwvelando/mortgage-payoff/internal/server"
	"github.com/iwvelando/mortgage-payoff/internal/session"
	"github.com/iwvelando/mortgage-payoff/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

// run starts the server and reports the process exit code. Deferred cleanup
// runs before the code is returned.
func run() int {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	address := flag.String("address", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return 1
	}
	if *address != "" {
		cfg.Address = *address
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newSessionStore(ctx, cfg.Session)
	if err != nil {
		logger.Error("failed to initialize session store",
			zap.String("op", "main"),
			zap.String("backend", cfg.Session.Backend),
			zap.Error(err),
		)
		return 1
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, store, cfg.UploadSizeBytes(), version),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
		zap.String("sessionBackend", cfg.Session.Backend),
		zap.Int64("maxUploadSize", cfg.UploadSizeBytes()),
		zap.String("version", version),
	)
	if err := serve(ctx, logger, srv); err != nil {
		logger.Error("server stopped unexpectedly",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return 1
	}
	return 0
}

// serve runs srv until it fails or ctx is cancelled, then shuts it down.
func serve(ctx context.Context, logger *zap.Logger, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down server", zap.String("op", "main"))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return nil
	}
}

// newSessionStore builds the configured store and a function that releases it.
func newSessionStore(ctx context.Context, cfg server.SessionConfig) (session.Store, func(), error) {
	switch cfg.Backend {
	case constants.SessionBackendRedis:
		store := session.NewRedisStore(session.RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.KeyPrefix,
			TTL:       cfg.TTLDuration(),
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("redis at %s is unreachable: %w", cfg.RedisAddr, err)
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return session.NewMemoryStore(cfg.TTLDuration()), func() {}, nil
	}
}
