// Command esportivai-mock serves an in-memory EsportiVai API seeded with a
// demo user, for trying the client without a backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"esportivai/internal/mockapi"
)

func main() {
	fs := pflag.NewFlagSet("esportivai-mock", pflag.ExitOnError)
	addr := fs.String("addr", "localhost:3000", "listen address")
	seed := fs.Bool("seed", true, "create the demo user and sample data")
	debug := fs.Bool("debug", false, "log every request")
	_ = fs.Parse(os.Args[1:])

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(*addr, *seed, logger); err != nil {
		logger.Error("mock server failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run(addr string, seed bool, logger *zap.Logger) error {
	s := mockapi.New()
	if seed {
		id := mockapi.Seed(s)
		logger.Info("seeded demo data",
			zap.String("user_id", id),
			zap.String("email", mockapi.DemoEmail),
			zap.String("password", mockapi.DemoPassword),
		)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLog(logger))
	r.Mount("/", s.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func requestLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", r.Header.Get("X-Request-ID")),
			)
		})
	}
}
