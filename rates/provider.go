// Package rates maintains the rate, limit and fee table of the configured
// trading pairs: live prices aggregated from exchanges, limits intersected
// across both legs and miner fees estimated through the backend.
package rates

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hatchswap/hatchswapd/config"
	"github.com/hatchswap/hatchswapd/database/models"
	"github.com/hatchswap/hatchswapd/money"
)

// Limits are the tradeable bounds of a pair, denominated in the base asset.
type Limits struct {
	Minimal money.Money `json:"minimal"`
	Maximal money.Money `json:"maximal"`
}

// MinerFeePair holds the miner fee estimations of both legs of a pair.
type MinerFeePair struct {
	BaseAsset  MinerFees `json:"baseAsset"`
	QuoteAsset MinerFees `json:"quoteAsset"`
}

type Fees struct {
	Percentage float64      `json:"percentage"`
	MinerFees  MinerFeePair `json:"minerFees"`
}

// PairInfo is the full rate table entry of one pair, rebuilt on every
// refresh tick.
type PairInfo struct {
	Rate   float64 `json:"rate"`
	Limits Limits  `json:"limits"`
	Fees   Fees    `json:"fees"`
}

// PriceFetcher aggregates prices of many base assets against one quote
// asset.
type PriceFetcher interface {
	GetPrices(ctx context.Context, baseAssets []string, quoteAsset string) map[string]float64
}

// Provider keeps a PairInfo per configured pair and refreshes it
// periodically. Readers always see a complete snapshot, never a refresh in
// progress.
type Provider struct {
	prices PriceFetcher
	fees   *FeeProvider

	interval time.Duration

	currencyLimits map[string]Limits

	hardcoded      map[string]float64
	baseAssets     map[string][]string
	pairs          []models.Pair
	pairCurrencies map[string]struct{}

	snapshot atomic.Pointer[map[string]PairInfo]

	stopOnce sync.Once
	stop     chan struct{}
}

func NewProvider(
	prices PriceFetcher,
	fees *FeeProvider,
	rateUpdateIntervalMinutes int,
	currencies []config.CurrencyConfig,
) *Provider {
	currencyLimits := make(map[string]Limits, len(currencies))
	for _, currency := range currencies {
		currencyLimits[currency.Symbol] = Limits{
			Minimal: money.Money(currency.MinSwapAmount),
			Maximal: money.Money(currency.MaxSwapAmount),
		}
	}

	provider := &Provider{
		prices:         prices,
		fees:           fees,
		interval:       time.Duration(rateUpdateIntervalMinutes) * time.Minute,
		currencyLimits: currencyLimits,
		hardcoded:      make(map[string]float64),
		baseAssets:     make(map[string][]string),
		pairCurrencies: make(map[string]struct{}),
		stop:           make(chan struct{}),
	}
	empty := make(map[string]PairInfo)
	provider.snapshot.Store(&empty)

	return provider
}

// Init prepares the pair table and runs the first refresh synchronously, so
// that the table is populated when Init returns. Pairs with a hardcoded
// rate skip live pricing; the rest are grouped by quote asset so one
// aggregated price request covers all base assets against it.
func (p *Provider) Init(ctx context.Context, pairs []models.Pair) {
	p.pairs = pairs

	for _, pair := range pairs {
		p.pairCurrencies[pair.Base] = struct{}{}
		p.pairCurrencies[pair.Quote] = struct{}{}

		if pair.Rate != nil {
			log.Debugf("Setting hardcoded rate for pair %s: %v", pair.ID, *pair.Rate)
			p.hardcoded[pair.ID] = *pair.Rate
			continue
		}

		p.baseAssets[pair.Quote] = append(p.baseAssets[pair.Quote], pair.Base)
	}

	p.updateRates(ctx)

	log.Debugf("Updating rates every %d minutes", int(p.interval.Minutes()))

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.updateRates(ctx)
			case <-p.stop:
				return
			}
		}
	}()
}

// Stop ends the periodic refresh.
func (p *Provider) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

// Get returns the rate table entry of a pair.
func (p *Provider) Get(pairID string) (PairInfo, bool) {
	info, ok := (*p.snapshot.Load())[pairID]
	return info, ok
}

// All returns the current rate table. The map is an immutable snapshot and
// must not be modified.
func (p *Provider) All() map[string]PairInfo {
	return *p.snapshot.Load()
}

func (p *Provider) updateRates(ctx context.Context) {
	var mu sync.Mutex
	fetchedRates := make(map[string]float64)
	minerFees := make(map[string]MinerFees)

	g, gctx := errgroup.WithContext(ctx)

	for quoteAsset, baseAssets := range p.baseAssets {
		g.Go(func() error {
			prices := p.prices.GetPrices(gctx, baseAssets, quoteAsset)

			mu.Lock()
			defer mu.Unlock()
			for baseAsset, price := range prices {
				fetchedRates[models.PairID(baseAsset, quoteAsset)] = price
			}

			return nil
		})
	}

	for currency := range p.pairCurrencies {
		g.Go(func() error {
			fees, err := p.fees.MinerFees(gctx, currency)
			if err != nil {
				log.Errorf("Could not get miner fees for %s: %v", currency, err)
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			minerFees[currency] = fees

			return nil
		})
	}

	// The workers swallow their errors, missing entries are handled below.
	_ = g.Wait()

	previous := *p.snapshot.Load()
	updated := make(map[string]PairInfo, len(p.pairs))

	for _, pair := range p.pairs {
		rate, ok := p.hardcoded[pair.ID]
		if !ok {
			rate, ok = fetchedRates[pair.ID]
		}
		if !ok {
			// Keep the previous rate when every price source failed.
			if previousInfo, exists := previous[pair.ID]; exists {
				rate = previousInfo.Rate
			} else {
				log.Error(ErrCouldNotGetRate(pair.ID).Error())
				continue
			}
		}

		limits, ok := p.intersectLimits(pair, rate)
		if !ok {
			log.Errorf("Could not get limits for pair %s", pair.ID)
			continue
		}

		baseFees, hasBase := minerFees[pair.Base]
		quoteFees, hasQuote := minerFees[pair.Quote]
		if !hasBase || !hasQuote {
			if previousInfo, exists := previous[pair.ID]; exists {
				baseFees = previousInfo.Fees.MinerFees.BaseAsset
				quoteFees = previousInfo.Fees.MinerFees.QuoteAsset
			} else {
				log.Errorf("Could not initialize pair %s: no miner fees available", pair.ID)
				continue
			}
		}

		updated[pair.ID] = PairInfo{
			Rate:   rate,
			Limits: limits,
			Fees: Fees{
				Percentage: p.fees.PercentageFee(pair.ID),
				MinerFees: MinerFeePair{
					BaseAsset:  baseFees,
					QuoteAsset: quoteFees,
				},
			},
		}
	}

	p.snapshot.Store(&updated)

	log.Debugf("Updated rates of %d pairs", len(updated))
}

// intersectLimits converts the quote leg's limits into base-asset terms
// with 1/rate and intersects them with the base leg's, so an amount inside
// the result is within bounds on both chains.
func (p *Provider) intersectLimits(pair models.Pair, rate float64) (Limits, bool) {
	baseLimits, hasBase := p.currencyLimits[pair.Base]
	quoteLimits, hasQuote := p.currencyLimits[pair.Quote]
	if !hasBase || !hasQuote || rate == 0 {
		return Limits{}, false
	}

	// Rounded towards the inside of the quote bounds.
	minimal := baseLimits.Minimal
	if converted := money.Money(math.Ceil(float64(quoteLimits.Minimal) / rate)); converted > minimal {
		minimal = converted
	}

	maximal := baseLimits.Maximal
	if converted := money.Money(math.Floor(float64(quoteLimits.Maximal) / rate)); converted < maximal {
		maximal = converted
	}

	return Limits{
		Minimal: minimal,
		Maximal: maximal,
	}, true
}
