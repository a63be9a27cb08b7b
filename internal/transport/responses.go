package transport

import (
	"strconv"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/canonical"
	"github.com/trustrent/trustchain-backend/internal/ledger/model"
)

// blockJSON is the wire rendering of a block. Timestamps use the canonical
// format so a client can reproduce the block hash from the response alone.
type blockJSON struct {
	BlockNumber  uint64  `json:"block_number"`
	PropertyID   string  `json:"property_id"`
	OwnerID      int64   `json:"owner_id"`
	DocumentHash *string `json:"document_hash"`
	CurrentHash  string  `json:"current_hash"`
	PreviousHash *string `json:"previous_hash"`
	Timestamp    string  `json:"timestamp"`
	VerifiedBy   int64   `json:"verified_by"`
}

func toBlockJSON(block model.Block) blockJSON {
	return blockJSON{
		BlockNumber:  block.BlockNumber,
		PropertyID:   block.PropertyID,
		OwnerID:      block.OwnerID,
		DocumentHash: block.DocumentHash,
		CurrentHash:  block.CurrentHash,
		PreviousHash: block.PreviousHash,
		Timestamp:    canonical.FormatTime(block.Timestamp),
		VerifiedBy:   block.VerifiedBy,
	}
}

type contractJSON struct {
	ContractID string                   `json:"contract_id"`
	PropertyID string                   `json:"property_id"`
	OwnerID    int64                    `json:"owner_id"`
	Type       model.ContractType       `json:"type"`
	Status     model.ContractStatus     `json:"status"`
	Conditions model.ContractConditions `json:"conditions"`
	CreatedAt  time.Time                `json:"created_at"`
	ExecutedAt *time.Time               `json:"executed_at,omitempty"`
}

func toContractJSON(contract *model.Contract) contractJSON {
	return contractJSON{
		ContractID: contract.ContractID,
		PropertyID: contract.PropertyID,
		OwnerID:    contract.OwnerID,
		Type:       contract.Type,
		Status:     contract.Status,
		Conditions: contract.Conditions,
		CreatedAt:  contract.CreatedAt,
		ExecutedAt: contract.ExecutedAt,
	}
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
