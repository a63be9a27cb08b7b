// Package core adapts the main application database (users, properties,
// documents) for the ledger's batch jobs. The ledger never writes property
// state here except for the transaction-hash linkage column that ties a
// verified property record to its chain entry.
package core

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Source reads externally verified ownership records from the core database
// and writes back the chain linkage once a record has been registered.
type Source struct {
	db *gorm.DB
}

// NewSource opens a connection to the core database.
func NewSource(dsn string) (*Source, error) {
	if dsn == "" {
		return nil, errors.New("core postgres dsn is required")
	}

	quiet := gormlogger.New(
		stdlog.New(os.Stdout, "", stdlog.LstdFlags),
		gormlogger.Config{
			LogLevel:                  gormlogger.Silent,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: quiet})
	if err != nil {
		return nil, fmt.Errorf("open core postgres connection: %w", err)
	}

	return &Source{db: db}, nil
}

type pendingRow struct {
	UserPropertyID int64
	OwnerID        int64
	PropertyID     int64
	Attachment     *string
	LastVerifiedAt *time.Time
}

// PendingRecords returns properties that are verified and approved but have
// no ledger entry yet, detected via an empty transaction-hash linkage.
// Records come back in id order so backfill runs are deterministic. The core
// schema carries no verifier column, so VerifiedBy stays nil and the ledger
// credits the owner.
func (s *Source) PendingRecords(ctx context.Context) ([]model.VerifiedRecord, error) {
	const query = `
SELECT
	up.id AS user_property_id,
	up.owner_id,
	up.property_id,
	pd.attachment,
	up.last_verified_at
FROM core_userproperty up
LEFT JOIN core_propertydocument pd ON up.id = pd.user_property_id
WHERE
	up.is_verified = true
	AND up.verification_status = 'approved'
	AND (up.transaction_hash IS NULL OR up.transaction_hash = '')
ORDER BY up.id`

	var rows []pendingRow
	if err := s.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query pending verified records: %w", err)
	}

	records := make([]model.VerifiedRecord, 0, len(rows))
	for _, row := range rows {
		record := model.VerifiedRecord{
			RecordID:   row.UserPropertyID,
			PropertyID: fmt.Sprintf("PROP_%d", row.PropertyID),
			OwnerID:    row.OwnerID,
			VerifiedAt: row.LastVerifiedAt,
		}
		if row.Attachment != nil {
			record.DocumentPath = *row.Attachment
		}
		records = append(records, record)
	}

	return records, nil
}

// MarkRegistered writes the block hash back into the record's linkage column.
func (s *Source) MarkRegistered(ctx context.Context, recordID int64, blockHash string) error {
	res := s.db.WithContext(ctx).Exec(
		`UPDATE core_userproperty SET transaction_hash = ? WHERE id = ?`,
		blockHash, recordID,
	)
	if res.Error != nil {
		return fmt.Errorf("mark record %d registered: %w", recordID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("mark record %d registered: no such record", recordID)
	}
	return nil
}
