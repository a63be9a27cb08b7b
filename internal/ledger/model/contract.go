package model

import "time"

// ContractType identifies what a verification contract does on execution.
type ContractType string

const (
	// ContractOwnershipVerification checks current ownership without writing
	// to the chain.
	ContractOwnershipVerification ContractType = "ownership_verification"
	// ContractOwnershipTransfer appends a new block asserting a new owner.
	ContractOwnershipTransfer ContractType = "ownership_transfer"
)

// ContractStatus is the lifecycle state of a verification contract.
type ContractStatus string

const (
	ContractPending   ContractStatus = "pending"
	ContractActive    ContractStatus = "active"
	ContractExecuted  ContractStatus = "executed"
	ContractFailed    ContractStatus = "failed"
	ContractCancelled ContractStatus = "cancelled"
)

// Terminal reports whether the status permits no further transitions.
func (s ContractStatus) Terminal() bool {
	switch s {
	case ContractExecuted, ContractFailed, ContractCancelled:
		return true
	default:
		return false
	}
}

// ContractConditions carries the typed execution payload of a contract.
// Transfer contracts require NewOwnerID; the rest is optional.
type ContractConditions struct {
	NewOwnerID   *int64    `json:"new_owner_id,omitempty"`
	DocumentHash *string   `json:"document_hash,omitempty"`
	VerifiedBy   *int64    `json:"verified_by,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}

// Contract is a deferred two-phase ledger action: created pending, activated,
// then executed exactly once. A failed execution is terminal; retrying means
// creating a new contract.
type Contract struct {
	ID         uint64             `gorm:"primaryKey"`
	ContractID string             `gorm:"size:100;uniqueIndex;not null"`
	PropertyID string             `gorm:"size:100;index;not null"`
	OwnerID    int64              `gorm:"not null"`
	Type       ContractType       `gorm:"column:contract_type;size:50;not null"`
	Status     ContractStatus     `gorm:"size:20;not null"`
	Conditions ContractConditions `gorm:"serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ExecutedAt *time.Time
}

// TableName keeps the table name stable across ORM defaults.
func (Contract) TableName() string { return "ledger_smart_contract" }
