package exchanges

import (
	"context"
	"strings"

	"github.com/sony/gobreaker"
)

const binanceBaseURL = "https://api.binance.com"

type Binance struct {
	client  Options
	breaker *gobreaker.CircuitBreaker
}

func NewBinance(options ...Option) *Binance {
	return &Binance{
		client:  parseOptions(binanceBaseURL, options),
		breaker: newBreaker("binance"),
	}
}

func (b *Binance) Name() string {
	return "Binance"
}

func (b *Binance) GetPrice(ctx context.Context, base, quote string) (float64, error) {
	price, err := b.breaker.Execute(func() (interface{}, error) {
		var response struct {
			Price string `json:"price"`
		}

		symbol := strings.ToUpper(base) + strings.ToUpper(quote)
		url := b.client.baseURL + "/api/v3/ticker/price?symbol=" + symbol
		if err := getJSON(ctx, b.client.client, url, &response); err != nil {
			return 0, err
		}

		return parsePrice(response.Price)
	})
	if err != nil {
		return 0, err
	}

	return price.(float64), nil
}
