package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/trustrent/trustchain-backend/internal/clock"
	"github.com/trustrent/trustchain-backend/internal/ledger/canonical"
	"github.com/trustrent/trustchain-backend/internal/ledger/model"
	"github.com/trustrent/trustchain-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultBackfillWorkers = 4
	defaultAppendRetries   = 3
	defaultRetryDelay      = 200 * time.Millisecond
)

// Backfill registers already verified ownership records that predate the
// chain. Document hashing runs concurrently, block appends stay sequential
// so the chain keeps its single-writer ordering.
type Backfill struct {
	source    RecordSource
	documents DocumentStore
	ledger    *Ledger
	metrics   BackfillMetrics
	logger    *zap.Logger

	workerCount   int
	appendRetries int
	retryDelay    time.Duration
	sleep         func(ctx context.Context, d time.Duration) error
}

// NewBackfill constructs a backfill job over the given record source and
// document store.
func NewBackfill(source RecordSource, documents DocumentStore, ledger *Ledger, metrics BackfillMetrics, logger *zap.Logger) (*Backfill, error) {
	if source == nil {
		return nil, errors.New("record source is required")
	}
	if documents == nil {
		return nil, errors.New("document store is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics are required")
	}

	return &Backfill{
		source:        source,
		documents:     documents,
		ledger:        ledger,
		metrics:       metrics,
		logger:        logger.Named("backfill"),
		workerCount:   defaultBackfillWorkers,
		appendRetries: defaultAppendRetries,
		retryDelay:    defaultRetryDelay,
		sleep:         clock.SleepWithContext,
	}, nil
}

// BackfillSummary aggregates a backfill run. FailureErr collects per-record
// errors and is nil when every record registered.
type BackfillSummary struct {
	Results    []model.BackfillResult
	Processed  int
	Succeeded  int
	Failed     int
	FailureErr error
}

// Run fetches all pending records and registers each on the chain. A record
// failure is recorded and the run continues with the remaining records.
func (b *Backfill) Run(ctx context.Context) (summary *BackfillSummary, err error) {
	started := time.Now()
	defer func() {
		records := 0
		if summary != nil {
			records = summary.Processed
		}
		b.metrics.ObserveRun(err, records, started)
	}()

	records, err := b.source.PendingRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pending records: %w", err)
	}

	b.logger.Info("backfill started", zap.Int("pending_records", len(records)))

	docHashes, err := b.hashDocuments(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("hash documents: %w", err)
	}

	summary = &BackfillSummary{Processed: len(records)}
	failures := &multierror.Error{}
	for i, record := range records {
		result := b.registerRecord(ctx, record, docHashes[i])
		summary.Results = append(summary.Results, result)
		if result.Err != nil {
			summary.Failed++
			failures = multierror.Append(failures, fmt.Errorf("record %d: %w", record.RecordID, result.Err))
			continue
		}
		summary.Succeeded++
	}
	summary.FailureErr = failures.ErrorOrNil()

	b.logger.Info("backfill finished",
		zap.Int("processed", summary.Processed),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// hashDocuments computes document hashes concurrently. A record whose
// document cannot be read is registered without one, so the slot stays nil.
// An error only comes from context cancellation and aborts the run.
func (b *Backfill) hashDocuments(ctx context.Context, records []model.VerifiedRecord) ([]*string, error) {
	hashes := make([]*string, len(records))
	err := workerpool.Process(ctx, b.workerCount, indexes(len(records)),
		func(ctx context.Context, i int) error {
			record := records[i]
			if record.DocumentPath == "" {
				return nil
			}

			file, err := b.documents.Open(record.DocumentPath)
			if err != nil {
				b.logger.Warn("document unavailable, registering without hash",
					zap.Int64("record_id", record.RecordID),
					zap.String("document", record.DocumentPath),
					zap.Error(err),
				)
				return nil
			}
			defer file.Close()

			hash, err := canonical.DocumentHash(file)
			if err != nil {
				b.logger.Warn("document hashing failed, registering without hash",
					zap.Int64("record_id", record.RecordID),
					zap.Error(err),
				)
				return nil
			}
			hashes[i] = &hash
			return nil
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	return hashes, nil
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (b *Backfill) registerRecord(ctx context.Context, record model.VerifiedRecord, documentHash *string) (result model.BackfillResult) {
	started := time.Now()
	defer func() { b.metrics.ObserveRecord(result.Err, started) }()

	result = model.BackfillResult{
		RecordID:   record.RecordID,
		PropertyID: record.PropertyID,
	}

	block, err := b.appendWithRetry(ctx, AppendRequest{
		PropertyID:   record.PropertyID,
		OwnerID:      record.OwnerID,
		DocumentHash: documentHash,
		VerifiedBy:   record.VerifiedBy,
		Timestamp:    record.VerifiedAt,
	})
	if err != nil {
		result.Err = err
		return result
	}
	result.BlockNumber = block.BlockNumber

	if err := b.source.MarkRegistered(ctx, record.RecordID, block.CurrentHash); err != nil {
		result.Err = fmt.Errorf("mark registered: %w", err)
		return result
	}

	return result
}

// appendWithRetry retries only on append conflicts, which occur when another
// writer claims the block number first.
func (b *Backfill) appendWithRetry(ctx context.Context, req AppendRequest) (*model.Block, error) {
	var lastErr error
	for attempt := 0; attempt < b.appendRetries; attempt++ {
		if attempt > 0 {
			if err := b.sleep(ctx, b.retryDelay); err != nil {
				return nil, err
			}
		}

		block, err := b.ledger.Append(ctx, req)
		if err == nil {
			return block, nil
		}
		if !errors.Is(err, model.ErrAppendConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}
