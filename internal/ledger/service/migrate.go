package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/canonical"
	"github.com/trustrent/trustchain-backend/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultMigrationBatchSize = 250
	defaultMigrationFlushRPS  = 10
	migrationFlushInterval    = time.Second
)

// HashMigration rewrites every block whose stored hash predates the current
// canonical hashing and relinks the chain from the recomputed values. The
// job is idempotent: a chain already in canonical form rewrites nothing.
type HashMigration struct {
	repo      BlockRepository
	logger    *zap.Logger
	batchSize int
	flushRPS  int
}

// NewHashMigration constructs the migration job over the block store.
func NewHashMigration(repo BlockRepository, logger *zap.Logger) (*HashMigration, error) {
	if repo == nil {
		return nil, errors.New("block repository is required")
	}

	return &HashMigration{
		repo:      repo,
		logger:    logger.Named("hash_migration"),
		batchSize: defaultMigrationBatchSize,
		flushRPS:  defaultMigrationFlushRPS,
	}, nil
}

// Run walks the full chain in block number order, recomputing each content
// hash from the stored fields and each link from the predecessor's fresh
// hash. It returns the number of blocks rewritten.
func (m *HashMigration) Run(ctx context.Context) (int, error) {
	blocks, err := m.repo.AllBlocks(ctx)
	if err != nil {
		return 0, fmt.Errorf("read chain: %w", err)
	}

	m.logger.Info("hash migration started", zap.Int("blocks", len(blocks)))

	writes := batcher.New(m.logger, m.repo.UpdateBlockHashes, m.batchSize, migrationFlushInterval, m.flushRPS)
	writes.Start(ctx)

	changed := 0
	var previousHash *string
	for i := range blocks {
		block := blocks[i]

		hash := canonical.BlockHash(canonical.BlockContent{
			PropertyID:   block.PropertyID,
			OwnerID:      block.OwnerID,
			DocumentHash: block.DocumentHash,
			BlockNumber:  block.BlockNumber,
			Timestamp:    block.Timestamp,
		})

		dirty := block.CurrentHash != hash || !equalHash(block.PreviousHash, previousHash)
		block.CurrentHash = hash
		block.PreviousHash = cloneHash(previousHash)

		if dirty {
			if err := writes.Add(ctx, block); err != nil {
				_ = writes.Stop()
				return changed, fmt.Errorf("queue block %d: %w", block.BlockNumber, err)
			}
			changed++
		}

		// Successors link against the recomputed hash, not the stored one.
		previousHash = &block.CurrentHash
	}

	if err := writes.Stop(); err != nil {
		return changed, fmt.Errorf("write rehashed blocks: %w", err)
	}

	m.logger.Info("hash migration finished",
		zap.Int("blocks", len(blocks)),
		zap.Int("rewritten", changed),
	)
	return changed, nil
}

func equalHash(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cloneHash(h *string) *string {
	if h == nil {
		return nil
	}
	v := *h
	return &v
}
