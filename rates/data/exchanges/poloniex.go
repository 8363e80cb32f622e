package exchanges

import (
	"context"
	"strings"

	"github.com/sony/gobreaker"
)

const poloniexBaseURL = "https://api.poloniex.com"

type Poloniex struct {
	client  Options
	breaker *gobreaker.CircuitBreaker
}

func NewPoloniex(options ...Option) *Poloniex {
	return &Poloniex{
		client:  parseOptions(poloniexBaseURL, options),
		breaker: newBreaker("poloniex"),
	}
}

func (p *Poloniex) Name() string {
	return "Poloniex"
}

func (p *Poloniex) GetPrice(ctx context.Context, base, quote string) (float64, error) {
	price, err := p.breaker.Execute(func() (interface{}, error) {
		var response struct {
			Price string `json:"price"`
		}

		market := strings.ToUpper(base) + "_" + strings.ToUpper(quote)
		url := p.client.baseURL + "/markets/" + market + "/price"
		if err := getJSON(ctx, p.client.client, url, &response); err != nil {
			return 0, err
		}

		return parsePrice(response.Price)
	})
	if err != nil {
		return 0, err
	}

	return price.(float64), nil
}
