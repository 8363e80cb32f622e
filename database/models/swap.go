package models

import (
	"time"

	"github.com/hatchswap/hatchswapd/money"
)

// Swap is a chain to Lightning swap: the user funds an on-chain HTLC, the
// backend claims it by paying the Lightning invoice.
type Swap struct {
	// Short random token, not a UUID. Collisions are accepted and not
	// deduplicated beyond the invoice uniqueness constraint.
	ID string `gorm:"primaryKey"`

	PairID    string    `gorm:"not null"`
	OrderSide OrderSide `gorm:"type:order_side_enum;not null"`

	// The Lightning payment request the backend will pay. Creating a second
	// swap for the same invoice is rejected by the unique index.
	Invoice string `gorm:"uniqueIndex;not null"`

	// The on-chain HTLC output the user has to fund.
	LockupAddress      string `gorm:"not null"`
	RedeemScript       string
	TimeoutBlockHeight uint32

	// AcceptZeroConf is decided at creation from the expected amount.
	AcceptZeroConf bool `gorm:"not null"`

	// ExpectedAmount is what the user has to lock up, Fee the percentage
	// fee owed. Both are fixed at creation.
	ExpectedAmount money.Money `gorm:"not null"`
	Fee            money.Money `gorm:"not null"`

	// Filled in as the swap progresses.
	MinerFee            money.Money
	RoutingFee          money.Money
	OnchainAmount       money.Money
	LockupTransactionID string

	// Status is nil until the first event for the swap arrives.
	Status *SwapStatus `gorm:"type:swap_status_enum"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Swap) TableName() string {
	return "swaps"
}
