package exchanges

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickerServer(t *testing.T, expectedPath string, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, expectedPath, r.URL.Path)

		_, err := w.Write([]byte(body))
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestBinance_GetPrice(t *testing.T) {
	server := tickerServer(t, "/api/v3/ticker/price", `{"symbol":"LTCBTC","price":"0.01500000"}`)

	price, err := NewBinance(WithURL(server.URL)).GetPrice(context.Background(), "LTC", "BTC")
	require.NoError(t, err)
	assert.Equal(t, 0.015, price)
}

func TestBitfinex_GetPrice(t *testing.T) {
	server := tickerServer(t, "/v1/pubticker/ltcbtc", `{"last_price":"0.015"}`)

	price, err := NewBitfinex(WithURL(server.URL)).GetPrice(context.Background(), "LTC", "BTC")
	require.NoError(t, err)
	assert.Equal(t, 0.015, price)
}

func TestCoinbase_GetPrice(t *testing.T) {
	server := tickerServer(t, "/products/LTC-BTC/ticker", `{"price":"0.015"}`)

	price, err := NewCoinbase(WithURL(server.URL)).GetPrice(context.Background(), "LTC", "BTC")
	require.NoError(t, err)
	assert.Equal(t, 0.015, price)
}

func TestKraken_GetPrice(t *testing.T) {
	server := tickerServer(t, "/0/public/Ticker",
		`{"error":[],"result":{"XLTCXXBT":{"c":["0.015","5.0"]}}}`)

	price, err := NewKraken(WithURL(server.URL)).GetPrice(context.Background(), "LTC", "BTC")
	require.NoError(t, err)
	assert.Equal(t, 0.015, price)
}

func TestKraken_GetPriceError(t *testing.T) {
	server := tickerServer(t, "/0/public/Ticker", `{"error":["EQuery:Unknown asset pair"]}`)

	_, err := NewKraken(WithURL(server.URL)).GetPrice(context.Background(), "LTC", "BTC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown asset pair")
}

func TestPoloniex_GetPrice(t *testing.T) {
	server := tickerServer(t, "/markets/LTC_BTC/price", `{"price":"0.015"}`)

	price, err := NewPoloniex(WithURL(server.URL)).GetPrice(context.Background(), "LTC", "BTC")
	require.NoError(t, err)
	assert.Equal(t, 0.015, price)
}

func Test_circuitBreakerOpensOnRepeatedFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	binance := NewBinance(WithURL(server.URL))
	for i := 0; i < breakerMinRequests; i++ {
		_, err := binance.GetPrice(context.Background(), "LTC", "BTC")
		require.Error(t, err)
	}

	_, err := binance.GetPrice(context.Background(), "LTC", "BTC")
	require.ErrorContains(t, err, "circuit breaker is open")
}
