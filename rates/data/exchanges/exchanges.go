// Package exchanges contains the ticker clients for the exchanges whose
// prices are aggregated into pair rates. Each client answers a single
// question, the last traded price of base/quote, and sits behind a circuit
// breaker so that a flaky exchange stops being queried for a while instead
// of slowing down every refresh.
package exchanges

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sony/gobreaker"
)

var ErrUnexpectedStatus = fmt.Errorf("unexpected status code")

type Option func(*Options)

func WithURL(url string) func(*Options) {
	return func(o *Options) {
		o.baseURL = url
	}
}

func WithHTTPClient(client *http.Client) func(*Options) {
	return func(o *Options) {
		o.client = client
	}
}

type Options struct {
	baseURL string
	client  *http.Client
}

func parseOptions(baseURL string, options []Option) Options {
	opts := Options{
		baseURL: baseURL,
		client:  &http.Client{},
	}
	for _, option := range options {
		option(&opts)
	}

	return opts
}

const (
	breakerMinRequests = 5
	breakerFailRatio   = 0.6
)

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= breakerMinRequests && ratio >= breakerFailRatio
		},
	})
}

func getJSON(ctx context.Context, client *http.Client, url string, response any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("unexpected status code: %d: %w", res.StatusCode, ErrUnexpectedStatus)
	}

	return json.NewDecoder(res.Body).Decode(response)
}

func parsePrice(price string) (float64, error) {
	parsed, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price %q: %w", price, err)
	}

	return parsed, nil
}
