package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"esportivai/internal/api"
	"esportivai/internal/config"
	"esportivai/internal/i18n"
	"esportivai/internal/logging"
	"esportivai/internal/metrics"
	"esportivai/internal/telemetry"
	"esportivai/internal/ui"
)

func main() {
	fs := pflag.NewFlagSet("esportivai", pflag.ExitOnError)
	config.RegisterFlags(fs)
	printConfig := fs.Bool("print-config", false, "print the effective configuration and exit")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *printConfig {
		out, err := cfg.YAML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Error("metrics server", zap.String("addr", cfg.MetricsAddr), zap.Error(err))
			}
		}()
	}

	client := api.New(cfg.APIURL,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger),
		api.WithMetrics(m),
	)
	logger.Info("starting",
		zap.String("api_url", cfg.APIURL),
		zap.String("locale", cfg.Locale),
		zap.Bool("skip_login", cfg.SkipLogin),
	)

	app := ui.NewAppModel(ui.Options{
		Context:    ctx,
		Client:     client,
		UserID:     cfg.UserID,
		Translator: i18n.NewTranslator(cfg.Locale, i18n.WithLogger(logger.Named("i18n"))),
		Logger:     logger,
		SkipLogin:  cfg.SkipLogin,
	})
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
