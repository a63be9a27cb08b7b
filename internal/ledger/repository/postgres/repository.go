// Package postgres implements the ledger block store and contract store on
// top of PostgreSQL.
package postgres

import (
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes the outcome and duration of every store operation.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository provides access to the append-only block table and the contract
// table. Block rows are never deleted; they are only ever rewritten in bulk
// by the hash migration job through UpdateBlockHashes.
type Repository struct {
	db      *gorm.DB
	metrics Metrics
}

// NewRepository opens a PostgreSQL connection for the given DSN.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	// Silent ORM logging; errors surface through returned values and the
	// metrics observer.
	quiet := gormlogger.New(
		stdlog.New(os.Stdout, "", stdlog.LstdFlags),
		gormlogger.Config{
			LogLevel:                  gormlogger.Silent,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         quiet,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	return &Repository{db: db, metrics: metrics}, nil
}
