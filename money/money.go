package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Money is a type that represents a monetary amount in the base unit of a
// chain (satoshis for Bitcoin, litoshis for Litecoin).
type Money uint64

// UnitsPerCoin is the number of base units in a whole coin.
const UnitsPerCoin = 1e8

// ErrNegativeAmount is returned when trying to create a Money with a negative amount.
var ErrNegativeAmount = errors.New("amount cannot be negative")

func NewFromCoins(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return 0, ErrNegativeAmount
	}

	return Money(amount.Mul(decimal.NewFromInt(UnitsPerCoin)).IntPart()), nil // nolint:gosec
}

func (m Money) ToCoins() decimal.Decimal {
	return decimal.NewFromUint64(uint64(m)).Div(decimal.NewFromInt(UnitsPerCoin))
}

// Decimal returns the amount in base units, for rate math.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromUint64(uint64(m))
}
