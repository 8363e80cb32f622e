package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPairID(t *testing.T) {
	base, quote, err := SplitPairID("LTC/BTC")
	require.NoError(t, err)
	assert.Equal(t, "LTC", base)
	assert.Equal(t, "BTC", quote)

	_, _, err = SplitPairID("LTCBTC")
	assert.Error(t, err)
}

func TestChainCurrency(t *testing.T) {
	tests := []struct {
		name      string
		side      OrderSide
		isReverse bool
		chain     string
		lightning string
	}{
		{"normal buy", OrderSideBuy, false, "BTC", "LTC"},
		{"normal sell", OrderSideSell, false, "LTC", "BTC"},
		{"reverse buy", OrderSideBuy, true, "LTC", "BTC"},
		{"reverse sell", OrderSideSell, true, "BTC", "LTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.chain, ChainCurrency("LTC", "BTC", tt.side, tt.isReverse))
			assert.Equal(t, tt.lightning, LightningCurrency("LTC", "BTC", tt.side, tt.isReverse))
		})
	}
}
