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

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/trustrent/trustchain-backend/internal/core"
	"github.com/trustrent/trustchain-backend/internal/ledger/repository/postgres"
	"github.com/trustrent/trustchain-backend/internal/ledger/service"
	"github.com/trustrent/trustchain-backend/internal/metrics"
	"go.uber.org/zap"
)

type config struct {
	LedgerDSN    string `long:"ledger-dsn" env:"BACKFILL_LEDGER_POSTGRES_DSN" description:"ledger Postgres DSN"`
	CoreDSN      string `long:"core-dsn" env:"BACKFILL_CORE_POSTGRES_DSN" description:"core application Postgres DSN"`
	DocumentRoot string `long:"document-root" env:"BACKFILL_DOCUMENT_ROOT" description:"root directory of property documents" default:"media"`
	MetricsAddr  string `long:"metrics-addr" env:"BACKFILL_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, statErr := os.Stat(".env"); statErr == nil {
		_ = godotenv.Load(".env")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.LedgerDSN == "" || cfg.CoreDSN == "" {
		logger.Fatal("ledger and core Postgres DSNs are required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger backfill failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := postgres.NewRepository(cfg.LedgerDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init ledger repository: %w", err)
	}
	source, err := core.NewSource(cfg.CoreDSN)
	if err != nil {
		return fmt.Errorf("init core source: %w", err)
	}

	ledger, err := service.NewLedger(repo, metrics.NewLedger(), logger)
	if err != nil {
		return err
	}
	backfill, err := service.NewBackfill(source, core.NewDocumentStore(cfg.DocumentRoot), ledger, metrics.NewBackfill(), logger)
	if err != nil {
		return err
	}

	summary, err := backfill.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("backfill summary",
		zap.Int("processed", summary.Processed),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)
	return summary.FailureErr
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
