// Package service implements the ledger core: block append and queries,
// chain auditing, verification contracts, and the backfill and hash
// migration batch jobs.
package service

import (
	"context"
	"io"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockRepository is the append-only block store.
	BlockRepository interface {
		LastBlock(ctx context.Context) (*model.Block, error)
		InsertBlock(ctx context.Context, block *model.Block) error
		BlocksByProperty(ctx context.Context, propertyID string) ([]model.Block, error)
		LatestBlockByProperty(ctx context.Context, propertyID string) (*model.Block, error)
		AllBlocks(ctx context.Context) ([]model.Block, error)
		UpdateBlockHashes(ctx context.Context, blocks []model.Block) error
	}

	// ContractRepository stores verification contracts.
	ContractRepository interface {
		InsertContract(ctx context.Context, contract *model.Contract) error
		ContractByID(ctx context.Context, contractID string) (*model.Contract, error)
		UpdateContract(ctx context.Context, contract *model.Contract) error
	}

	// RecordSource provides externally verified ownership records that still
	// lack a chain entry, and receives the linkage hash once they have one.
	RecordSource interface {
		PendingRecords(ctx context.Context) ([]model.VerifiedRecord, error)
		MarkRegistered(ctx context.Context, recordID int64, blockHash string) error
	}

	// DocumentStore opens supporting documents for content hashing.
	DocumentStore interface {
		Open(name string) (io.ReadCloser, error)
	}

	// LedgerMetrics observes ledger write and audit operations.
	LedgerMetrics interface {
		ObserveAppend(err error, started time.Time)
		ObserveVerifyChain(valid bool, blocks int, started time.Time)
	}

	// BackfillMetrics observes backfill runs and per-record outcomes.
	BackfillMetrics interface {
		ObserveRun(err error, records int, started time.Time)
		ObserveRecord(err error, started time.Time)
	}
)
