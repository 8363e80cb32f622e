package exchanges

import (
	"context"
	"strings"

	"github.com/sony/gobreaker"
)

const coinbaseBaseURL = "https://api.exchange.coinbase.com"

type Coinbase struct {
	client  Options
	breaker *gobreaker.CircuitBreaker
}

func NewCoinbase(options ...Option) *Coinbase {
	return &Coinbase{
		client:  parseOptions(coinbaseBaseURL, options),
		breaker: newBreaker("coinbase"),
	}
}

func (c *Coinbase) Name() string {
	return "Coinbase"
}

func (c *Coinbase) GetPrice(ctx context.Context, base, quote string) (float64, error) {
	price, err := c.breaker.Execute(func() (interface{}, error) {
		var response struct {
			Price string `json:"price"`
		}

		product := strings.ToUpper(base) + "-" + strings.ToUpper(quote)
		url := c.client.baseURL + "/products/" + product + "/ticker"
		if err := getJSON(ctx, c.client.client, url, &response); err != nil {
			return 0, err
		}

		return parsePrice(response.Price)
	})
	if err != nil {
		return 0, err
	}

	return price.(float64), nil
}
