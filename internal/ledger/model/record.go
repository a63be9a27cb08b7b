package model

import "time"

// VerifiedRecord is one externally verified ownership record that still lacks
// a ledger entry. It is produced by the core-database adapter and consumed by
// the backfill job. VerifiedBy is nil when the source never captured a
// verifier, in which case the ledger credits the owner.
type VerifiedRecord struct {
	RecordID     int64
	PropertyID   string
	OwnerID      int64
	DocumentPath string
	VerifiedBy   *int64
	VerifiedAt   *time.Time
}

// BackfillResult is the per-record outcome of a backfill run. Err is nil for
// records that were registered and linked back successfully.
type BackfillResult struct {
	RecordID    int64
	PropertyID  string
	BlockNumber uint64
	Err         error
}
