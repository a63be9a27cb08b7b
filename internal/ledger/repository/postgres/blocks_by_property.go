package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/model"
)

// BlocksByProperty returns all blocks recorded for the given canonical
// property id, ascending by block number. Backfilled chains may carry
// historical timestamps out of append order, so block number is the one
// ordering the store guarantees.
func (r *Repository) BlocksByProperty(ctx context.Context, propertyID string) ([]model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("blocks_by_property", err, start)
	}()

	var blocks []model.Block
	err = r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("block_number ASC").
		Find(&blocks).Error
	if err != nil {
		err = fmt.Errorf("query blocks by property: %w", err)
		return nil, err
	}

	return blocks, nil
}
