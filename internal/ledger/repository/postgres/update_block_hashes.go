package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/model"
	"gorm.io/gorm"
)

// UpdateBlockHashes rewrites current and previous hashes for the given
// blocks in one transaction. It exists solely for the hash migration job:
// every other code path treats block rows as immutable.
func (r *Repository) UpdateBlockHashes(ctx context.Context, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_block_hashes", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, block := range blocks {
			res := tx.Model(&model.Block{}).
				Where("block_number = ?", block.BlockNumber).
				Updates(map[string]any{
					"current_hash":  block.CurrentHash,
					"previous_hash": block.PreviousHash,
				})
			if res.Error != nil {
				return fmt.Errorf("update block %d: %w", block.BlockNumber, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("update block %d: no such block", block.BlockNumber)
			}
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("update block hashes: %w", err)
		return err
	}

	return nil
}
