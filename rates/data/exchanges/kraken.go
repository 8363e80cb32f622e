package exchanges

import (
	"context"
	"fmt"
	"strings"

	"github.com/sony/gobreaker"
)

const krakenBaseURL = "https://api.kraken.com"

type Kraken struct {
	client  Options
	breaker *gobreaker.CircuitBreaker
}

func NewKraken(options ...Option) *Kraken {
	return &Kraken{
		client:  parseOptions(krakenBaseURL, options),
		breaker: newBreaker("kraken"),
	}
}

func (k *Kraken) Name() string {
	return "Kraken"
}

// krakenSymbol maps a symbol to Kraken's asset naming, which calls
// Bitcoin XBT.
func krakenSymbol(symbol string) string {
	symbol = strings.ToUpper(symbol)
	if symbol == "BTC" {
		return "XBT"
	}

	return symbol
}

func (k *Kraken) GetPrice(ctx context.Context, base, quote string) (float64, error) {
	price, err := k.breaker.Execute(func() (interface{}, error) {
		var response struct {
			Error  []string `json:"error"`
			Result map[string]struct {
				Close []string `json:"c"`
			} `json:"result"`
		}

		pair := krakenSymbol(base) + krakenSymbol(quote)
		url := k.client.baseURL + "/0/public/Ticker?pair=" + pair
		if err := getJSON(ctx, k.client.client, url, &response); err != nil {
			return 0, err
		}

		if len(response.Error) > 0 {
			return 0, fmt.Errorf("kraken error: %s", strings.Join(response.Error, "; "))
		}

		for _, ticker := range response.Result {
			if len(ticker.Close) == 0 {
				break
			}

			return parsePrice(ticker.Close[0])
		}

		return 0, fmt.Errorf("no ticker for pair %s", pair)
	})
	if err != nil {
		return 0, err
	}

	return price.(float64), nil
}
