// Package config holds the daemon configuration. The file format is TOML;
// the CLI may override single values with flags.
package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// CurrencyConfig describes one supported chain currency. Amounts are in the
// base unit of the chain (satoshis, litoshis).
type CurrencyConfig struct {
	Symbol  string `toml:"symbol"`
	Network string `toml:"network"`

	// TimeoutBlockDelta is the number of blocks after which an unresolved
	// swap HTLC of this currency can be refunded.
	TimeoutBlockDelta uint32 `toml:"timeoutBlockDelta"`

	MaxSwapAmount uint64 `toml:"maxSwapAmount"`
	MinSwapAmount uint64 `toml:"minSwapAmount"`

	// MaxZeroConfAmount is the biggest expected amount for which an
	// unconfirmed lockup transaction is accepted.
	MaxZeroConfAmount uint64 `toml:"maxZeroConfAmount"`

	MinWalletBalance uint64 `toml:"minWalletBalance"`
	MinLocalBalance  uint64 `toml:"minLocalBalance"`
	MinRemoteBalance uint64 `toml:"minRemoteBalance"`
}

// PairConfig describes one tradeable pair. A nil Fee falls back to the
// default percentage fee, a non-nil Rate pins the pair to a fixed rate and
// skips live pricing.
type PairConfig struct {
	Base  string   `toml:"base"`
	Quote string   `toml:"quote"`
	Fee   *float64 `toml:"fee"`
	Rate  *float64 `toml:"rate"`
}

// BackendConfig points at the swap-execution backend. CertPath is required,
// MacaroonPath is optional.
type BackendConfig struct {
	Endpoint     string `toml:"endpoint"`
	CertPath     string `toml:"certPath"`
	MacaroonPath string `toml:"macaroonPath"`
}

type DatabaseConfig struct {
	Host     string `toml:"host"`
	Port     uint32 `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
}

type Config struct {
	// RateUpdateInterval is the pair refresh interval in minutes.
	RateUpdateInterval int `toml:"rateUpdateInterval"`

	Backend    BackendConfig    `toml:"backend"`
	Database   DatabaseConfig   `toml:"database"`
	Currencies []CurrencyConfig `toml:"currencies"`
	Pairs      []PairConfig     `toml:"pairs"`
}

// Load reads and parses the TOML configuration at path.
func Load(fs afero.Fs, path string) (*Config, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed reading config file: %w", err)
	}

	cfg := Config{
		RateUpdateInterval: 1,
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed parsing config file: %w", err)
	}

	return &cfg, nil
}

// Currency returns the config of a symbol, if present.
func (c *Config) Currency(symbol string) (CurrencyConfig, bool) {
	for _, currency := range c.Currencies {
		if currency.Symbol == symbol {
			return currency, true
		}
	}

	return CurrencyConfig{}, false
}
