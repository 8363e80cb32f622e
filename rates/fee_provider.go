package rates

import (
	"context"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/hatchswap/hatchswapd/config"
	"github.com/hatchswap/hatchswapd/database/models"
	"github.com/hatchswap/hatchswapd/money"
)

// Estimated transaction virtual sizes in vbytes, conservative worst-case
// spends. Downstream balance expectations depend on these exact numbers.
const (
	sizeNormalClaim   = 140
	sizeReverseLockup = 153
	sizeReverseClaim  = 138
)

const defaultPercentageFee = 1

// FeeEstimationFetcher is the slice of the backend client the fee provider
// needs: current network fee rates in sat/vbyte per currency.
type FeeEstimationFetcher interface {
	GetFeeEstimation(ctx context.Context, currency string) (map[string]int64, error)
}

// MinerFees are the estimated on-chain fees of the settlement transactions
// of one currency.
type MinerFees struct {
	Normal  money.Money      `json:"normal"`
	Reverse ReverseMinerFees `json:"reverse"`
}

type ReverseMinerFees struct {
	Lockup money.Money `json:"lockup"`
	Claim  money.Money `json:"claim"`
}

// FeeProvider knows the percentage fee of every pair and estimates the
// miner fee of the on-chain legs through the backend's fee estimation.
type FeeProvider struct {
	backend FeeEstimationFetcher

	percentageFees map[string]float64
}

func NewFeeProvider(backend FeeEstimationFetcher) *FeeProvider {
	return &FeeProvider{
		backend:        backend,
		percentageFees: make(map[string]float64),
	}
}

// Init stores the percentage fee of every configured pair, defaulting to 1%.
func (f *FeeProvider) Init(pairs []config.PairConfig) {
	for _, pair := range pairs {
		percentage := float64(defaultPercentageFee)
		if pair.Fee != nil {
			percentage = *pair.Fee
		}

		f.percentageFees[models.PairID(pair.Base, pair.Quote)] = percentage / 100
	}

	log.Debugf("Prepared data for fee estimations: %v", f.percentageFees)
}

// PercentageFee returns the fee share of a pair, zero when the pair has
// none configured.
func (f *FeeProvider) PercentageFee(pairID string) float64 {
	return f.percentageFees[pairID]
}

// GetBaseFee estimates the miner fee of the settlement transaction the
// middleware pays for: the claim of a normal swap or the lockup of a
// reverse one.
func (f *FeeProvider) GetBaseFee(ctx context.Context, currency string, isReverse bool) (money.Money, error) {
	satPerVbyte, err := f.feeRate(ctx, currency)
	if err != nil {
		return 0, err
	}

	return calculateBaseFee(satPerVbyte, isReverse), nil
}

// MinerFees estimates all three settlement transactions of a currency from
// a single fee rate lookup.
func (f *FeeProvider) MinerFees(ctx context.Context, currency string) (MinerFees, error) {
	satPerVbyte, err := f.feeRate(ctx, currency)
	if err != nil {
		return MinerFees{}, err
	}

	return MinerFees{
		Normal: money.Money(satPerVbyte * sizeNormalClaim),
		Reverse: ReverseMinerFees{
			Lockup: money.Money(satPerVbyte * sizeReverseLockup),
			Claim:  money.Money(satPerVbyte * sizeReverseClaim),
		},
	}, nil
}

// GetFees computes both fee components of a swap: the percentage fee on the
// converted amount and the miner fee of the on-chain leg.
func (f *FeeProvider) GetFees(
	ctx context.Context,
	pairID string,
	rate float64,
	side models.OrderSide,
	amount money.Money,
	isReverse bool,
) (baseFee money.Money, percentageFee money.Money, err error) {
	if pct := f.percentageFees[pairID]; pct != 0 {
		percentageFee = money.Money(math.Ceil(pct * float64(amount) * rate))
	}

	base, quote, err := models.SplitPairID(pairID)
	if err != nil {
		return 0, 0, err
	}

	chainCurrency := models.ChainCurrency(base, quote, side, isReverse)
	baseFee, err = f.GetBaseFee(ctx, chainCurrency, isReverse)
	if err != nil {
		return 0, 0, err
	}

	return baseFee, percentageFee, nil
}

func (f *FeeProvider) feeRate(ctx context.Context, currency string) (int64, error) {
	fees, err := f.backend.GetFeeEstimation(ctx, currency)
	if err != nil {
		return 0, err
	}

	satPerVbyte, ok := fees[currency]
	if !ok {
		return 0, fmt.Errorf("backend returned no fee estimation for %s", currency)
	}

	return satPerVbyte, nil
}

func calculateBaseFee(satPerVbyte int64, isReverse bool) money.Money {
	if isReverse {
		return money.Money(satPerVbyte * sizeReverseLockup)
	}

	return money.Money(satPerVbyte * sizeNormalClaim)
}
