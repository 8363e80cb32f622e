// Package data aggregates prices from independent exchanges into a single
// rate per pair. A failing exchange is dropped from the calculation; only
// when every exchange fails does a lookup error out.
package data

import (
	"context"
	"fmt"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/hatchswap/hatchswapd/rates/data/exchanges"
)

// Source is a single exchange answering last-price queries.
type Source interface {
	Name() string
	GetPrice(ctx context.Context, base, quote string) (float64, error)
}

type Provider struct {
	sources []Source
}

// NewProvider wires up the default exchange set.
func NewProvider() *Provider {
	return NewProviderWithSources(
		exchanges.NewBinance(),
		exchanges.NewBitfinex(),
		exchanges.NewCoinbase(),
		exchanges.NewKraken(),
		exchanges.NewPoloniex(),
	)
}

func NewProviderWithSources(sources ...Source) *Provider {
	return &Provider{
		sources: sources,
	}
}

// GetPrice queries all sources concurrently and returns the median of the
// prices that could be fetched.
func (p *Provider) GetPrice(ctx context.Context, base, quote string) (float64, error) {
	type result struct {
		source string
		price  float64
		err    error
	}

	results := make(chan result, len(p.sources))

	var wg sync.WaitGroup
	for _, source := range p.sources {
		wg.Add(1)
		go func(source Source) {
			defer wg.Done()

			price, err := source.GetPrice(ctx, base, quote)
			results <- result{source: source.Name(), price: price, err: err}
		}(source)
	}
	wg.Wait()
	close(results)

	var prices []float64
	for res := range results {
		if res.err != nil {
			log.Warnf("Could not get %s/%s price from %s: %v", base, quote, res.source, res.err)
			continue
		}

		prices = append(prices, res.price)
	}

	if len(prices) == 0 {
		return 0, fmt.Errorf("no exchange returned a price for %s/%s", base, quote)
	}

	return median(prices), nil
}

// GetPrices fetches all base assets against one quote asset. Bases for
// which no price could be determined are missing from the returned map.
func (p *Provider) GetPrices(ctx context.Context, baseAssets []string, quoteAsset string) map[string]float64 {
	prices := make(map[string]float64, len(baseAssets))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, base := range baseAssets {
		wg.Add(1)
		go func(base string) {
			defer wg.Done()

			price, err := p.GetPrice(ctx, base, quoteAsset)
			if err != nil {
				log.Errorf("Could not aggregate %s/%s price: %v", base, quoteAsset, err)
				return
			}

			mu.Lock()
			prices[base] = price
			mu.Unlock()
		}(base)
	}
	wg.Wait()

	return prices
}

// median returns the middle element for odd counts and the mean of the two
// middle elements for even counts.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	middle := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[middle-1] + sorted[middle]) / 2
	}

	return sorted[middle]
}
