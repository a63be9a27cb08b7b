package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/model"
)

// AllBlocks returns the full chain ascending by block number.
func (r *Repository) AllBlocks(ctx context.Context) ([]model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("all_blocks", err, start)
	}()

	var blocks []model.Block
	err = r.db.WithContext(ctx).Order("block_number ASC").Find(&blocks).Error
	if err != nil {
		err = fmt.Errorf("query all blocks: %w", err)
		return nil, err
	}

	return blocks, nil
}
