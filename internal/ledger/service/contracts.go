package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trustrent/trustchain-backend/internal/ledger/canonical"
	"github.com/trustrent/trustchain-backend/internal/ledger/model"
	"go.uber.org/zap"
)

const (
	verificationIDPrefix = "OWN_VER_"
	transferIDPrefix     = "OWN_TRF_"
)

// Contracts manages the verification contract lifecycle: create pending,
// activate, then execute exactly once. Execution failure is terminal; a new
// contract must be created to retry.
type Contracts struct {
	repo   ContractRepository
	ledger *Ledger
	logger *zap.Logger
	now    func() time.Time
	newID  func(prefix string) string
}

// NewContracts constructs a contract service bound to the ledger it executes
// against.
func NewContracts(repo ContractRepository, ledger *Ledger, logger *zap.Logger) (*Contracts, error) {
	if repo == nil {
		return nil, errors.New("contract repository is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}

	return &Contracts{
		repo:   repo,
		ledger: ledger,
		logger: logger.Named("contracts"),
		now:    time.Now,
		newID:  newContractID,
	}, nil
}

func newContractID(prefix string) string {
	id := uuid.New()
	return prefix + hex.EncodeToString(id[:])[:8]
}

// ExecutionResult is the outcome of executing a contract. IsOwner is set for
// ownership verifications, Block for successful transfers.
type ExecutionResult struct {
	Contract *model.Contract
	IsOwner  *bool
	Block    *model.Block
}

// CreateVerification creates a pending ownership verification contract.
func (c *Contracts) CreateVerification(ctx context.Context, propertyID any, ownerID int64) (*model.Contract, error) {
	parsed, err := canonical.ParsePropertyID(propertyID)
	if err != nil {
		return nil, err
	}

	contract := &model.Contract{
		ContractID: c.newID(verificationIDPrefix),
		PropertyID: parsed.String(),
		OwnerID:    ownerID,
		Type:       model.ContractOwnershipVerification,
		Status:     model.ContractPending,
		Conditions: model.ContractConditions{RequestedAt: c.now().UTC()},
	}
	if err := c.repo.InsertContract(ctx, contract); err != nil {
		return nil, err
	}

	c.logger.Info("verification contract created", zap.String("contract_id", contract.ContractID))
	return contract, nil
}

// CreateTransfer creates a pending ownership transfer contract carrying the
// new owner and optional document hash and verifier.
func (c *Contracts) CreateTransfer(ctx context.Context, propertyID any, currentOwnerID, newOwnerID int64, documentHash *string, verifiedBy *int64) (*model.Contract, error) {
	parsed, err := canonical.ParsePropertyID(propertyID)
	if err != nil {
		return nil, err
	}

	contract := &model.Contract{
		ContractID: c.newID(transferIDPrefix),
		PropertyID: parsed.String(),
		OwnerID:    currentOwnerID,
		Type:       model.ContractOwnershipTransfer,
		Status:     model.ContractPending,
		Conditions: model.ContractConditions{
			NewOwnerID:   &newOwnerID,
			DocumentHash: documentHash,
			VerifiedBy:   verifiedBy,
			RequestedAt:  c.now().UTC(),
		},
	}
	if err := c.repo.InsertContract(ctx, contract); err != nil {
		return nil, err
	}

	c.logger.Info("transfer contract created",
		zap.String("contract_id", contract.ContractID),
		zap.Int64("new_owner_id", newOwnerID),
	)
	return contract, nil
}

// Activate moves a pending contract to active.
func (c *Contracts) Activate(ctx context.Context, contractID string) (*model.Contract, error) {
	contract, err := c.repo.ContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != model.ContractPending {
		return nil, fmt.Errorf("%w: cannot activate %s contract %s", model.ErrInvalidContractState, contract.Status, contractID)
	}

	contract.Status = model.ContractActive
	if err := c.repo.UpdateContract(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// Cancel moves a pending or active contract to cancelled.
func (c *Contracts) Cancel(ctx context.Context, contractID string) (*model.Contract, error) {
	contract, err := c.repo.ContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != model.ContractPending && contract.Status != model.ContractActive {
		return nil, fmt.Errorf("%w: cannot cancel %s contract %s", model.ErrInvalidContractState, contract.Status, contractID)
	}

	contract.Status = model.ContractCancelled
	if err := c.repo.UpdateContract(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// Status returns the contract by id.
func (c *Contracts) Status(ctx context.Context, contractID string) (*model.Contract, error) {
	return c.repo.ContractByID(ctx, contractID)
}

// Execute runs an active contract. Verification contracts record completion
// of the ownership check and execute even when the check comes back
// negative; transfer contracts append a block and fail terminally when the
// append fails.
func (c *Contracts) Execute(ctx context.Context, contractID string) (*ExecutionResult, error) {
	contract, err := c.repo.ContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != model.ContractActive {
		return nil, fmt.Errorf("%w: cannot execute %s contract %s", model.ErrInvalidContractState, contract.Status, contractID)
	}

	switch contract.Type {
	case model.ContractOwnershipVerification:
		return c.executeVerification(ctx, contract)
	case model.ContractOwnershipTransfer:
		return c.executeTransfer(ctx, contract)
	default:
		return nil, fmt.Errorf("%w: unknown contract type %q", model.ErrInvalidContractState, contract.Type)
	}
}

func (c *Contracts) executeVerification(ctx context.Context, contract *model.Contract) (*ExecutionResult, error) {
	ownerID, found, err := c.ledger.CurrentOwner(ctx, contract.PropertyID)
	if err != nil {
		// Storage failure: leave the contract active so the check can run
		// again once the store recovers.
		return nil, err
	}

	isOwner := found && ownerID == contract.OwnerID
	if err := c.markExecuted(ctx, contract); err != nil {
		return nil, err
	}

	c.logger.Info("verification contract executed",
		zap.String("contract_id", contract.ContractID),
		zap.Bool("is_owner", isOwner),
	)
	return &ExecutionResult{Contract: contract, IsOwner: &isOwner}, nil
}

func (c *Contracts) executeTransfer(ctx context.Context, contract *model.Contract) (*ExecutionResult, error) {
	if contract.Conditions.NewOwnerID == nil {
		failErr := errors.New("transfer contract has no new owner")
		if err := c.markFailed(ctx, contract); err != nil {
			return nil, err
		}
		return nil, failErr
	}

	block, err := c.ledger.Append(ctx, AppendRequest{
		PropertyID:   contract.PropertyID,
		OwnerID:      *contract.Conditions.NewOwnerID,
		DocumentHash: contract.Conditions.DocumentHash,
		VerifiedBy:   contract.Conditions.VerifiedBy,
	})
	if err != nil {
		if markErr := c.markFailed(ctx, contract); markErr != nil {
			c.logger.Error("could not mark contract failed", zap.String("contract_id", contract.ContractID), zap.Error(markErr))
		}
		return nil, fmt.Errorf("execute transfer: %w", err)
	}

	if err := c.markExecuted(ctx, contract); err != nil {
		return nil, err
	}

	c.logger.Info("transfer contract executed",
		zap.String("contract_id", contract.ContractID),
		zap.Uint64("block_number", block.BlockNumber),
	)
	return &ExecutionResult{Contract: contract, Block: block}, nil
}

func (c *Contracts) markExecuted(ctx context.Context, contract *model.Contract) error {
	executedAt := c.now().UTC()
	contract.Status = model.ContractExecuted
	contract.ExecutedAt = &executedAt
	return c.repo.UpdateContract(ctx, contract)
}

func (c *Contracts) markFailed(ctx context.Context, contract *model.Contract) error {
	contract.Status = model.ContractFailed
	return c.repo.UpdateContract(ctx, contract)
}
