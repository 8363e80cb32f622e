package data

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	name  string
	price float64
	err   error
}

func (f *fakeSource) Name() string {
	return f.name
}

func (f *fakeSource) GetPrice(_ context.Context, _, _ string) (float64, error) {
	return f.price, f.err
}

func sourcesFor(prices ...float64) []Source {
	sources := make([]Source, len(prices))
	for i, price := range prices {
		sources[i] = &fakeSource{name: "fake", price: price}
	}

	return sources
}

func Test_median(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "single element",
			values:   []float64{42},
			expected: 42,
		},
		{
			name:     "even count averages the two middle elements",
			values:   []float64{10, 2, 38, 23, 38, 23, 21, 16, 1000, 0},
			expected: 22,
		},
		{
			name:     "odd count takes the middle element",
			values:   []float64{10, 2, 38, 23, 38, 23, 21, 16, 1000, 0, 35},
			expected: 23,
		},
		{
			name:     "two elements",
			values:   []float64{1, 2},
			expected: 1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, median(tt.values))
		})
	}
}

func TestProvider_GetPrice(t *testing.T) {
	t.Run("single source is passed through", func(t *testing.T) {
		provider := NewProviderWithSources(sourcesFor(0.015)...)

		price, err := provider.GetPrice(context.Background(), "LTC", "BTC")
		require.NoError(t, err)
		assert.Equal(t, 0.015, price)
	})

	t.Run("failing sources are dropped", func(t *testing.T) {
		sources := sourcesFor(10, 20, 30)
		sources = append(sources, &fakeSource{name: "broken", err: errors.New("exchange down")})
		provider := NewProviderWithSources(sources...)

		price, err := provider.GetPrice(context.Background(), "LTC", "BTC")
		require.NoError(t, err)
		assert.Equal(t, float64(20), price)
	})

	t.Run("all sources failing is an error", func(t *testing.T) {
		provider := NewProviderWithSources(
			&fakeSource{name: "broken", err: errors.New("exchange down")},
		)

		_, err := provider.GetPrice(context.Background(), "LTC", "BTC")
		require.Error(t, err)
	})
}

func TestProvider_GetPrices(t *testing.T) {
	provider := NewProviderWithSources(sourcesFor(0.015)...)

	prices := provider.GetPrices(context.Background(), []string{"LTC"}, "BTC")
	assert.Equal(t, map[string]float64{"LTC": 0.015}, prices)
}
