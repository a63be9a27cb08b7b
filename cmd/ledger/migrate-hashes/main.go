package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/trustrent/trustchain-backend/internal/ledger/repository/postgres"
	"github.com/trustrent/trustchain-backend/internal/ledger/service"
	"github.com/trustrent/trustchain-backend/internal/metrics"
	"go.uber.org/zap"
)

type config struct {
	LedgerDSN string `long:"ledger-dsn" env:"MIGRATE_HASHES_LEDGER_POSTGRES_DSN" description:"ledger Postgres DSN"`
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
	if cfg.LedgerDSN == "" {
		logger.Fatal("ledger Postgres DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("hash migration failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := postgres.NewRepository(cfg.LedgerDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init ledger repository: %w", err)
	}

	migration, err := service.NewHashMigration(repo, logger)
	if err != nil {
		return err
	}

	changed, err := migration.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("hash migration complete", zap.Int("rewritten", changed))
	return nil
}
