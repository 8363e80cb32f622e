package database

import (
	"context"

	"github.com/hatchswap/hatchswapd/database/models"
)

//go:generate go tool mockgen -destination=mock.go -package=database . PairRepository,SwapRepository,ReverseSwapRepository

type PairRepository interface {
	GetPairs(ctx context.Context) ([]models.Pair, error)
	AddPair(ctx context.Context, pair *models.Pair) error
	RemovePair(ctx context.Context, id string) error
}

func (d *Database) GetPairs(ctx context.Context) ([]models.Pair, error) {
	var pairs []models.Pair
	err := d.orm.WithContext(ctx).Find(&pairs).Error
	if err != nil {
		return nil, err
	}

	return pairs, nil
}

func (d *Database) AddPair(ctx context.Context, pair *models.Pair) error {
	return d.orm.WithContext(ctx).Create(pair).Error
}

func (d *Database) RemovePair(ctx context.Context, id string) error {
	return d.orm.WithContext(ctx).Delete(&models.Pair{}, "id = ?", id).Error
}
