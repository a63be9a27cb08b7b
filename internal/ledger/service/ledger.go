package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/canonical"
	"github.com/trustrent/trustchain-backend/internal/ledger/model"
	"go.uber.org/zap"
)

// AppendRequest carries the semantic fields of a new block. PropertyID
// accepts any of the surface forms handled by canonical.ParsePropertyID.
// VerifiedBy defaults to the owner and Timestamp defaults to the current
// time; backfill supplies both explicitly.
type AppendRequest struct {
	PropertyID   any
	OwnerID      int64
	DocumentHash *string
	VerifiedBy   *int64
	Timestamp    *time.Time
}

// Ledger is the sole writer-side gateway to the block store.
//
// Appends are serialized: the read-last/compute-next/write-new sequence runs
// under the append lock, and the store's unique block number index backs the
// lock up across processes by turning a lost race into
// model.ErrAppendConflict.
type Ledger struct {
	repo    BlockRepository
	auditor *Auditor
	metrics LedgerMetrics
	logger  *zap.Logger
	now     func() time.Time

	mu sync.Mutex
}

// NewLedger constructs a Ledger over the given block store.
func NewLedger(repo BlockRepository, metrics LedgerMetrics, logger *zap.Logger) (*Ledger, error) {
	if repo == nil {
		return nil, errors.New("block repository is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}

	logger = logger.Named("ledger")
	return &Ledger{
		repo:    repo,
		auditor: NewAuditor(repo, logger),
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Append creates and persists the next block of the chain. It never rejects
// a property that already has blocks: each block records a new verification
// or transfer event, and the latest block for a property is its current
// state.
func (l *Ledger) Append(ctx context.Context, req AppendRequest) (*model.Block, error) {
	started := time.Now()
	block, err := l.append(ctx, req)
	l.metrics.ObserveAppend(err, started)
	if err != nil {
		return nil, err
	}

	l.logger.Info("block appended",
		zap.Uint64("block_number", block.BlockNumber),
		zap.String("property_id", block.PropertyID),
		zap.Int64("owner_id", block.OwnerID),
	)
	return block, nil
}

func (l *Ledger) append(ctx context.Context, req AppendRequest) (*model.Block, error) {
	propertyID, err := canonical.ParsePropertyID(req.PropertyID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	last, err := l.repo.LastBlock(ctx)
	if err != nil {
		return nil, fmt.Errorf("read last block: %w", err)
	}

	number := model.GenesisBlockNumber
	var previousHash *string
	if last != nil {
		number = last.BlockNumber + 1
		hash := last.CurrentHash
		previousHash = &hash
	}

	timestamp := l.now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}
	timestamp = canonical.NormalizeTime(timestamp)

	verifiedBy := req.OwnerID
	if req.VerifiedBy != nil {
		verifiedBy = *req.VerifiedBy
	}

	block := &model.Block{
		BlockNumber:      number,
		PropertyID:       propertyID.String(),
		OwnerID:          req.OwnerID,
		DocumentHash:     req.DocumentHash,
		PreviousHash:     previousHash,
		Timestamp:        timestamp,
		VerifiedBy:       verifiedBy,
		VerificationDate: timestamp,
	}
	block.CurrentHash = canonical.BlockHash(canonical.BlockContent{
		PropertyID:   block.PropertyID,
		OwnerID:      block.OwnerID,
		DocumentHash: block.DocumentHash,
		BlockNumber:  block.BlockNumber,
		Timestamp:    block.Timestamp,
	})

	if err := l.repo.InsertBlock(ctx, block); err != nil {
		return nil, err
	}

	return block, nil
}

// History returns all blocks for a property, ascending by block number.
// Backfill can insert historical timestamps out of append order, so block
// number order may deviate from wall-clock order. Malformed and unknown
// identifiers yield an empty history, not an error: the read path is
// forgiving where the write path is strict.
func (l *Ledger) History(ctx context.Context, propertyID any) ([]model.Block, error) {
	parsed, err := canonical.ParsePropertyID(propertyID)
	if err != nil {
		l.logger.Debug("history requested for malformed property id", zap.Any("property_id", propertyID))
		return []model.Block{}, nil
	}

	blocks, err := l.repo.BlocksByProperty(ctx, parsed.String())
	if err != nil {
		return nil, fmt.Errorf("read property history: %w", err)
	}
	if blocks == nil {
		blocks = []model.Block{}
	}
	return blocks, nil
}

// CurrentOwner resolves the owner asserted by the highest-numbered block for
// the property: most recent event wins. found is false for unknown or
// malformed identifiers.
func (l *Ledger) CurrentOwner(ctx context.Context, propertyID any) (int64, bool, error) {
	parsed, err := canonical.ParsePropertyID(propertyID)
	if err != nil {
		return 0, false, nil
	}

	latest, err := l.repo.LatestBlockByProperty(ctx, parsed.String())
	if err != nil {
		return 0, false, fmt.Errorf("read latest block: %w", err)
	}
	if latest == nil {
		return 0, false, nil
	}
	return latest.OwnerID, true, nil
}

// VerifyChain runs a full chain audit.
func (l *Ledger) VerifyChain(ctx context.Context) (*model.AuditReport, error) {
	started := time.Now()
	report, err := l.auditor.Verify(ctx)
	if err != nil {
		l.metrics.ObserveVerifyChain(false, 0, started)
		return nil, err
	}

	l.metrics.ObserveVerifyChain(report.Valid, report.BlockCount, started)
	return report, nil
}
