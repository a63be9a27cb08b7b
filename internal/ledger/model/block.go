// Package model defines domain models for the property ledger.
package model

import "time"

// GenesisBlockNumber is the number of the first block in the chain.
const GenesisBlockNumber uint64 = 1

// Block is one immutable, hash-linked record of a property verification
// event. Once appended it is never changed, with the single exception of the
// hash migration job, which rewrites CurrentHash and PreviousHash for the
// whole chain at once.
type Block struct {
	ID               uint64    `gorm:"primaryKey"`
	BlockNumber      uint64    `gorm:"uniqueIndex;not null"`
	PropertyID       string    `gorm:"size:100;index;not null"`
	OwnerID          int64     `gorm:"not null"`
	DocumentHash     *string   `gorm:"size:64"`
	PreviousHash     *string   `gorm:"size:64"`
	CurrentHash      string    `gorm:"size:64;uniqueIndex;not null"`
	Timestamp        time.Time `gorm:"index;not null"`
	VerifiedBy       int64     `gorm:"not null"`
	VerificationDate time.Time `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName keeps the table name stable across ORM defaults.
func (Block) TableName() string { return "ledger_block" }

// IsGenesis reports whether the block is the first block of the chain.
func (b Block) IsGenesis() bool { return b.BlockNumber == GenesisBlockNumber }
