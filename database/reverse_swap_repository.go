//nolint:dupl
package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hatchswap/hatchswapd/database/models"
)

// ReverseSwapRepository is the persistence contract for Lightning to chain
// swaps. The Get* lookups return (nil, nil) when no record matches.
type ReverseSwapRepository interface {
	AddReverseSwap(ctx context.Context, swap *models.ReverseSwap) error
	GetReverseSwap(ctx context.Context, id string) (*models.ReverseSwap, error)
	GetReverseSwapByInvoice(ctx context.Context, invoice string) (*models.ReverseSwap, error)
	GetReverseSwapByTransactionID(ctx context.Context, transactionID string) (*models.ReverseSwap, error)
	UpdateReverseSwap(ctx context.Context, swap *models.ReverseSwap) error
	SetReverseSwapStatus(ctx context.Context, id string, status models.SwapStatus) error
}

func (d *Database) AddReverseSwap(ctx context.Context, swap *models.ReverseSwap) error {
	err := d.orm.WithContext(ctx).Create(swap).Error
	if isUniqueViolation(err) {
		return ErrDuplicateInvoice
	}

	return err
}

func (d *Database) GetReverseSwap(ctx context.Context, id string) (*models.ReverseSwap, error) {
	return d.findReverseSwap(ctx, "id = ?", id)
}

func (d *Database) GetReverseSwapByInvoice(ctx context.Context, invoice string) (*models.ReverseSwap, error) {
	return d.findReverseSwap(ctx, "invoice = ?", invoice)
}

func (d *Database) GetReverseSwapByTransactionID(ctx context.Context, transactionID string) (*models.ReverseSwap, error) {
	return d.findReverseSwap(ctx, "transaction_id = ?", transactionID)
}

func (d *Database) UpdateReverseSwap(ctx context.Context, swap *models.ReverseSwap) error {
	return d.orm.WithContext(ctx).Save(swap).Error
}

func (d *Database) SetReverseSwapStatus(ctx context.Context, id string, status models.SwapStatus) error {
	return d.orm.WithContext(ctx).
		Model(&models.ReverseSwap{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (d *Database) findReverseSwap(ctx context.Context, query string, arg interface{}) (*models.ReverseSwap, error) {
	var swap models.ReverseSwap
	err := d.orm.WithContext(ctx).Where(query, arg).First(&swap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &swap, nil
}
