package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustrent/trustchain-backend/internal/ledger/model"
	"gorm.io/gorm"
)

// InsertContract stores a newly created contract.
func (r *Repository) InsertContract(ctx context.Context, contract *model.Contract) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_contract", err, start)
	}()

	err = r.db.WithContext(ctx).Create(contract).Error
	if err != nil {
		err = fmt.Errorf("insert contract: %w", err)
		return err
	}

	return nil
}

// ContractByID looks a contract up by its public contract id.
func (r *Repository) ContractByID(ctx context.Context, contractID string) (*model.Contract, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("contract_by_id", err, start)
	}()

	var contract model.Contract
	err = r.db.WithContext(ctx).Where("contract_id = ?", contractID).First(&contract).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = fmt.Errorf("%w: %s", model.ErrContractNotFound, contractID)
		return nil, err
	}
	if err != nil {
		err = fmt.Errorf("query contract: %w", err)
		return nil, err
	}

	return &contract, nil
}

// UpdateContract persists a contract state transition.
func (r *Repository) UpdateContract(ctx context.Context, contract *model.Contract) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_contract", err, start)
	}()

	err = r.db.WithContext(ctx).Save(contract).Error
	if err != nil {
		err = fmt.Errorf("update contract: %w", err)
		return err
	}

	return nil
}
