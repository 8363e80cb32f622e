package models

import "fmt"

// Pair is a tradeable combination of two assets. The ID is "{base}/{quote}".
// A non-nil Rate pins the pair to a fixed rate and skips live pricing.
type Pair struct {
	ID    string `gorm:"primaryKey"`
	Base  string `gorm:"not null"`
	Quote string `gorm:"not null"`
	Rate  *float64
}

func (Pair) TableName() string {
	return "pairs"
}

// PairID builds the identity key of a base/quote combination.
func PairID(base, quote string) string {
	return fmt.Sprintf("%s/%s", base, quote)
}

// SplitPairID is the inverse of PairID.
func SplitPairID(id string) (base string, quote string, err error) {
	for i := 0; i < len(id); i++ {
		if id[i] == '/' {
			return id[:i], id[i+1:], nil
		}
	}

	return "", "", fmt.Errorf("invalid pair id: %s", id)
}

// ChainCurrency resolves which asset of a pair is the on-chain leg of a
// swap: the asset the user locks up for a normal swap, the asset the
// backend locks up for a reverse one.
func ChainCurrency(base, quote string, side OrderSide, isReverse bool) string {
	if isReverse {
		if side == OrderSideBuy {
			return base
		}

		return quote
	}

	if side == OrderSideBuy {
		return quote
	}

	return base
}

// LightningCurrency resolves the Lightning leg, the opposite asset of
// ChainCurrency.
func LightningCurrency(base, quote string, side OrderSide, isReverse bool) string {
	chain := ChainCurrency(base, quote, side, isReverse)
	if chain == base {
		return quote
	}

	return base
}
