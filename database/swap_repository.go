package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hatchswap/hatchswapd/database/models"
)

// ErrDuplicateInvoice is returned when a swap or reverse swap is added for
// an invoice that is already stored.
var ErrDuplicateInvoice = errors.New("a swap with this invoice exists already")

// SwapRepository is the persistence contract for chain to Lightning swaps.
// The Get* lookups return (nil, nil) when no record matches.
type SwapRepository interface {
	AddSwap(ctx context.Context, swap *models.Swap) error
	GetSwap(ctx context.Context, id string) (*models.Swap, error)
	GetSwapByInvoice(ctx context.Context, invoice string) (*models.Swap, error)
	GetSwapByLockupAddress(ctx context.Context, lockupAddress string) (*models.Swap, error)
	GetSwapByLockupTransactionID(ctx context.Context, transactionID string) (*models.Swap, error)
	UpdateSwap(ctx context.Context, swap *models.Swap) error
	SetSwapStatus(ctx context.Context, id string, status models.SwapStatus) error
}

func (d *Database) AddSwap(ctx context.Context, swap *models.Swap) error {
	err := d.orm.WithContext(ctx).Create(swap).Error
	if isUniqueViolation(err) {
		return ErrDuplicateInvoice
	}

	return err
}

func (d *Database) GetSwap(ctx context.Context, id string) (*models.Swap, error) {
	return d.findSwap(ctx, "id = ?", id)
}

func (d *Database) GetSwapByInvoice(ctx context.Context, invoice string) (*models.Swap, error) {
	return d.findSwap(ctx, "invoice = ?", invoice)
}

func (d *Database) GetSwapByLockupAddress(ctx context.Context, lockupAddress string) (*models.Swap, error) {
	return d.findSwap(ctx, "lockup_address = ?", lockupAddress)
}

func (d *Database) GetSwapByLockupTransactionID(ctx context.Context, transactionID string) (*models.Swap, error) {
	return d.findSwap(ctx, "lockup_transaction_id = ?", transactionID)
}

func (d *Database) UpdateSwap(ctx context.Context, swap *models.Swap) error {
	return d.orm.WithContext(ctx).Save(swap).Error
}

func (d *Database) SetSwapStatus(ctx context.Context, id string, status models.SwapStatus) error {
	return d.orm.WithContext(ctx).
		Model(&models.Swap{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (d *Database) findSwap(ctx context.Context, query string, arg interface{}) (*models.Swap, error) {
	var swap models.Swap
	err := d.orm.WithContext(ctx).Where(query, arg).First(&swap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &swap, nil
}
