package service

import (
	"context"
	"errors"
	"strings"

	"github.com/hatchswap/hatchswapd/backend"
	"github.com/hatchswap/hatchswapd/rates"
)

// WarningReverseSwapsDisabled is included in GetPairs responses while the
// reverse swap toggle is off.
const WarningReverseSwapsDisabled = "reverse.swaps.disabled"

// Pairs is the rate table handed to API consumers.
type Pairs struct {
	Warnings []string                  `json:"warnings"`
	Pairs    map[string]rates.PairInfo `json:"pairs"`
}

// GetPairs returns the current rate table and operational warnings.
func (s *Service) GetPairs() Pairs {
	warnings := []string{}
	if !s.allowReverseSwaps.Load() {
		warnings = append(warnings, WarningReverseSwapsDisabled)
	}

	return Pairs{
		Warnings: warnings,
		Pairs:    s.rates.All(),
	}
}

// GetLimits returns the tradeable bounds per pair, denominated in the base
// asset.
func (s *Service) GetLimits() map[string]rates.Limits {
	all := s.rates.All()

	limits := make(map[string]rates.Limits, len(all))
	for pairID, info := range all {
		limits[pairID] = info.Limits
	}

	return limits
}

// GetFeeEstimation returns the current fee rates of all chains in
// sat/vbyte.
func (s *Service) GetFeeEstimation(ctx context.Context) (map[string]int64, error) {
	return s.backend.GetFeeEstimation(ctx, "")
}

// GetBalance returns the backend's wallet and channel balances.
func (s *Service) GetBalance(ctx context.Context, currency string) (*backend.GetBalanceResponse, error) {
	return s.backend.GetBalance(ctx, currency)
}

// GetTransaction fetches the raw hex of a transaction from the backend.
func (s *Service) GetTransaction(ctx context.Context, currency, transactionID string) (string, error) {
	return s.backend.GetTransaction(ctx, currency, transactionID)
}

// BroadcastTransaction relays a raw transaction through the backend.
// Refunds broadcast before their timeout is reached are rejected by the
// backend with a "non-final" error, which is translated for API consumers.
func (s *Service) BroadcastTransaction(ctx context.Context, currency, transactionHex string) (string, error) {
	transactionID, err := s.backend.BroadcastTransaction(ctx, currency, transactionHex)
	if err != nil {
		var callErr *backend.CallError
		if errors.As(err, &callErr) && strings.Contains(callErr.Message, "non-final") {
			return "", ErrTransactionNotFinal()
		}

		return "", err
	}

	return transactionID, nil
}
