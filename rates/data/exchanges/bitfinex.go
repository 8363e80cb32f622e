package exchanges

import (
	"context"
	"strings"

	"github.com/sony/gobreaker"
)

const bitfinexBaseURL = "https://api.bitfinex.com"

type Bitfinex struct {
	client  Options
	breaker *gobreaker.CircuitBreaker
}

func NewBitfinex(options ...Option) *Bitfinex {
	return &Bitfinex{
		client:  parseOptions(bitfinexBaseURL, options),
		breaker: newBreaker("bitfinex"),
	}
}

func (b *Bitfinex) Name() string {
	return "Bitfinex"
}

func (b *Bitfinex) GetPrice(ctx context.Context, base, quote string) (float64, error) {
	price, err := b.breaker.Execute(func() (interface{}, error) {
		var response struct {
			LastPrice string `json:"last_price"`
		}

		symbol := strings.ToLower(base) + strings.ToLower(quote)
		url := b.client.baseURL + "/v1/pubticker/" + symbol
		if err := getJSON(ctx, b.client.client, url, &response); err != nil {
			return 0, err
		}

		return parsePrice(response.LastPrice)
	})
	if err != nil {
		return 0, err
	}

	return price.(float64), nil
}
