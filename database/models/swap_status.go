package models

import (
	"database/sql/driver"
	"fmt"
)

// SwapStatus is the lifecycle state of a swap or reverse swap. The string
// values double as the event names sent to status feed subscribers.
type SwapStatus string

const (
	StatusTransactionMempool   SwapStatus = "transaction.mempool"
	StatusTransactionConfirmed SwapStatus = "transaction.confirmed"

	StatusInvoicePaid        SwapStatus = "invoice.paid"
	StatusInvoiceSettled     SwapStatus = "invoice.settled"
	StatusInvoiceFailedToPay SwapStatus = "invoice.failedToPay"

	StatusTransactionClaimed  SwapStatus = "transaction.claimed"
	StatusTransactionRefunded SwapStatus = "transaction.refunded"

	StatusSwapExpired SwapStatus = "swap.expired"
)

// rank orders the states of both state machines. A record only ever moves to
// a strictly higher rank; all terminal states share the highest one.
var rank = map[SwapStatus]int{
	StatusTransactionMempool:   1,
	StatusTransactionConfirmed: 2,
	StatusInvoicePaid:          3,
	StatusTransactionClaimed:   4,
	StatusInvoiceSettled:       4,
	StatusInvoiceFailedToPay:   4,
	StatusTransactionRefunded:  4,
	StatusSwapExpired:          4,
}

func (s SwapStatus) IsValid() bool {
	_, ok := rank[s]

	return ok
}

func (s SwapStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is possible.
func (s SwapStatus) IsTerminal() bool {
	switch s {
	case StatusTransactionClaimed, StatusInvoiceSettled, StatusInvoiceFailedToPay,
		StatusTransactionRefunded, StatusSwapExpired:
		return true
	default:
		return false
	}
}

// Supersedes reports whether moving from current (nil before the first
// event) to s is a forward transition. Replayed or out-of-order events must
// be dropped by the caller when this returns false.
func (s SwapStatus) Supersedes(current *SwapStatus) bool {
	if current == nil {
		return true
	}
	if current.IsTerminal() {
		return false
	}

	return rank[s] > rank[*current]
}

func (s *SwapStatus) Scan(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("failed to scan SwapStatus: expected string, got %T", value)
	}
	*s = SwapStatus(str)

	return nil
}

func (s SwapStatus) Value() (driver.Value, error) {
	return string(s), nil
}
