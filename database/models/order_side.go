package models

import (
	"database/sql/driver"
	"fmt"
)

// OrderSide determines which asset of a pair is delivered on-chain and which
// over Lightning. It always refers to the base asset: buying the base asset
// of a pair means receiving it.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

func (s OrderSide) IsValid() bool {
	return s == OrderSideBuy || s == OrderSideSell
}

func (s OrderSide) String() string {
	return string(s)
}

func (s *OrderSide) Scan(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("failed to scan OrderSide: expected string, got %T", value)
	}
	*s = OrderSide(str)

	return nil
}

func (s OrderSide) Value() (driver.Value, error) {
	return string(s), nil
}
