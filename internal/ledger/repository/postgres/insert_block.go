package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/model"
	"gorm.io/gorm"
)

// InsertBlock appends one block row. A unique-index violation on the block
// number means another writer appended concurrently; it is reported as
// model.ErrAppendConflict so the caller can retry the whole append.
func (r *Repository) InsertBlock(ctx context.Context, block *model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block", err, start)
	}()

	err = r.db.WithContext(ctx).Create(block).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = fmt.Errorf("%w: block number %d already taken", model.ErrAppendConflict, block.BlockNumber)
		return err
	}
	if err != nil {
		err = fmt.Errorf("insert block: %w", err)
		return err
	}

	return nil
}
