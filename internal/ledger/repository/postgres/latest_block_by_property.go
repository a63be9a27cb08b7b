package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/model"
	"gorm.io/gorm"
)

// LatestBlockByProperty returns the highest-numbered block for the given
// canonical property id, or nil when the property has no blocks.
func (r *Repository) LatestBlockByProperty(ctx context.Context, propertyID string) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_block_by_property", err, start)
	}()

	var block model.Block
	err = r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("block_number DESC").
		First(&block).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = nil
		return nil, nil
	}
	if err != nil {
		err = fmt.Errorf("query latest block by property: %w", err)
		return nil, err
	}

	return &block, nil
}
