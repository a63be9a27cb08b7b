package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/model"
	"gorm.io/gorm"
)

// LastBlock returns the block with the highest block number, or nil when the
// chain is empty.
func (r *Repository) LastBlock(ctx context.Context) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("last_block", err, start)
	}()

	var block model.Block
	err = r.db.WithContext(ctx).Order("block_number DESC").First(&block).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = nil
		return nil, nil
	}
	if err != nil {
		err = fmt.Errorf("query last block: %w", err)
		return nil, err
	}

	return &block, nil
}
