package rates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatchswap/hatchswapd/config"
	"github.com/hatchswap/hatchswapd/database/models"
	"github.com/hatchswap/hatchswapd/money"
)

type fakeFeeBackend struct {
	fees map[string]int64
	err  error
}

func (f *fakeFeeBackend) GetFeeEstimation(_ context.Context, _ string) (map[string]int64, error) {
	return f.fees, f.err
}

func feePct(value float64) *float64 {
	return &value
}

func TestFeeProvider_Init(t *testing.T) {
	provider := NewFeeProvider(&fakeFeeBackend{})
	provider.Init([]config.PairConfig{
		{Base: "LTC", Quote: "BTC"},
		{Base: "BTC", Quote: "BTC", Fee: feePct(5)},
		{Base: "LTC", Quote: "LTC", Fee: feePct(0)},
	})

	assert.Equal(t, 0.01, provider.PercentageFee("LTC/BTC"))
	assert.Equal(t, 0.05, provider.PercentageFee("BTC/BTC"))
	assert.Equal(t, float64(0), provider.PercentageFee("LTC/LTC"))
	assert.Equal(t, float64(0), provider.PercentageFee("DOGE/BTC"))
}

func TestFeeProvider_GetBaseFee(t *testing.T) {
	provider := NewFeeProvider(&fakeFeeBackend{
		fees: map[string]int64{"BTC": 10},
	})

	tests := []struct {
		name      string
		isReverse bool
		expected  money.Money
	}{
		{
			name:      "normal claim",
			isReverse: false,
			expected:  1400,
		},
		{
			name:      "reverse lockup",
			isReverse: true,
			expected:  1530,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := provider.GetBaseFee(context.Background(), "BTC", tt.isReverse)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fee)
		})
	}
}

func TestFeeProvider_MinerFees(t *testing.T) {
	provider := NewFeeProvider(&fakeFeeBackend{
		fees: map[string]int64{"BTC": 10},
	})

	fees, err := provider.MinerFees(context.Background(), "BTC")
	require.NoError(t, err)

	assert.Equal(t, MinerFees{
		Normal: 1400,
		Reverse: ReverseMinerFees{
			Lockup: 1530,
			Claim:  1380,
		},
	}, fees)
}

func TestFeeProvider_MinerFeesErrors(t *testing.T) {
	t.Run("backend error", func(t *testing.T) {
		provider := NewFeeProvider(&fakeFeeBackend{err: errors.New("backend down")})

		_, err := provider.MinerFees(context.Background(), "BTC")
		require.Error(t, err)
	})

	t.Run("missing currency", func(t *testing.T) {
		provider := NewFeeProvider(&fakeFeeBackend{fees: map[string]int64{"BTC": 10}})

		_, err := provider.MinerFees(context.Background(), "LTC")
		require.ErrorContains(t, err, "no fee estimation for LTC")
	})
}

func TestFeeProvider_GetFees(t *testing.T) {
	provider := NewFeeProvider(&fakeFeeBackend{
		fees: map[string]int64{"LTC": 10, "BTC": 10},
	})
	provider.Init([]config.PairConfig{
		{Base: "LTC", Quote: "BTC"},
	})

	t.Run("percentage fee uses the ceiling", func(t *testing.T) {
		// Selling LTC/BTC: a 5000 unit invoice at the inverted rate.
		rate := 1 / 0.015
		baseFee, percentageFee, err := provider.GetFees(
			context.Background(), "LTC/BTC", rate, models.OrderSideSell, 5000, false,
		)
		require.NoError(t, err)

		assert.Equal(t, money.Money(3334), percentageFee)
		assert.Equal(t, money.Money(1400), baseFee)
	})

	t.Run("one percent of a round amount at rate one", func(t *testing.T) {
		_, percentageFee, err := provider.GetFees(
			context.Background(), "LTC/BTC", 1, models.OrderSideSell, 100_000, false,
		)
		require.NoError(t, err)

		assert.Equal(t, money.Money(1000), percentageFee)
	})

	t.Run("no configured fee means no percentage fee", func(t *testing.T) {
		_, percentageFee, err := provider.GetFees(
			context.Background(), "BTC/LTC", 1, models.OrderSideBuy, 100_000, false,
		)
		require.NoError(t, err)

		assert.Equal(t, money.Money(0), percentageFee)
	})
}
