package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/trustrent/trustchain-backend/internal/ledger/repository/postgres"
	"github.com/trustrent/trustchain-backend/internal/ledger/service"
	"github.com/trustrent/trustchain-backend/internal/metrics"
	"github.com/trustrent/trustchain-backend/internal/transport"
	"go.uber.org/zap"
)

var config struct {
	Addr        string `long:"addr" env:"API_GATEWAY_ADDR" description:"listen address" default:":8000"`
	PostgresDSN string `long:"postgres-dsn" env:"API_GATEWAY_POSTGRES_DSN" description:"Postgres DSN"`
}

func main() {
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

	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if config.PostgresDSN == "" {
		logger.Fatal("Postgres DSN is required")
	}

	repo, err := postgres.NewRepository(config.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		logger.Fatal("init repository", zap.Error(err))
	}

	ledger, err := service.NewLedger(repo, metrics.NewLedger(), logger)
	if err != nil {
		logger.Fatal("init ledger", zap.Error(err))
	}
	contracts, err := service.NewContracts(repo, ledger, logger)
	if err != nil {
		logger.Fatal("init contracts", zap.Error(err))
	}

	handler, err := transport.NewHandler(ledger, contracts, logger)
	if err != nil {
		logger.Fatal("init http handler", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = transport.NewValidator()
	handler.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(e),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
