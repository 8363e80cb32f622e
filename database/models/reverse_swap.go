package models

import (
	"time"

	"github.com/hatchswap/hatchswapd/money"
)

// ReverseSwap is a Lightning to chain swap: the backend locks up on-chain
// funds which become claimable once the user's invoice is settled.
type ReverseSwap struct {
	ID string `gorm:"primaryKey"`

	PairID    string    `gorm:"not null"`
	OrderSide OrderSide `gorm:"type:order_side_enum;not null"`

	// The invoice the user has to pay.
	Invoice string `gorm:"uniqueIndex;not null"`

	// Preimage of the invoice, known once it settled.
	Preimage string

	// OnchainAmount is the value of the lockup output the backend
	// broadcasts, Fee the percentage fee owed.
	OnchainAmount money.Money `gorm:"not null"`
	Fee           money.Money `gorm:"not null"`

	MinerFee money.Money

	// TransactionID of the backend's lockup transaction.
	TransactionID string

	Status *SwapStatus `gorm:"type:swap_status_enum"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ReverseSwap) TableName() string {
	return "reverse_swaps"
}
