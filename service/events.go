package service

import (
	"sync"

	"github.com/hatchswap/hatchswapd/database/models"
)

// Failure reasons passed to Failed listeners.
const (
	ReasonInvoiceNotPaid = "invoice could not be paid"
	ReasonHTLCTimedOut   = "onchain HTLC timed out"
	ReasonRefunded       = "lockup transaction was refunded"
)

// SwapUpdate is the status feed entry of one swap, keyed by its id.
type SwapUpdate struct {
	ID        string
	Status    models.SwapStatus
	IsReverse bool
}

// SwapOutcome is attached to success and failure events. Exactly one of
// Swap and ReverseSwap is set.
type SwapOutcome struct {
	Swap        *models.Swap
	ReverseSwap *models.ReverseSwap
}

// Listener receives lifecycle events. Nil callbacks are skipped. Delivery
// is synchronous from the event loop and at-most-once; there is no replay
// for late subscribers, durable state lives in the repositories.
type Listener struct {
	Update        func(update SwapUpdate)
	Successful    func(outcome SwapOutcome)
	Failed        func(outcome SwapOutcome, reason string)
	ChannelBackup func(currency string, backup string)
}

type listenerRegistry struct {
	mu        sync.Mutex
	listeners []Listener
}

func (r *listenerRegistry) register(listener Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = append(r.listeners, listener)
}

func (r *listenerRegistry) snapshot() []Listener {
	r.mu.Lock()
	defer r.mu.Unlock()

	listeners := make([]Listener, len(r.listeners))
	copy(listeners, r.listeners)

	return listeners
}

func (r *listenerRegistry) emitUpdate(update SwapUpdate) {
	for _, listener := range r.snapshot() {
		if listener.Update != nil {
			listener.Update(update)
		}
	}
}

func (r *listenerRegistry) emitSuccessful(outcome SwapOutcome) {
	for _, listener := range r.snapshot() {
		if listener.Successful != nil {
			listener.Successful(outcome)
		}
	}
}

func (r *listenerRegistry) emitFailed(outcome SwapOutcome, reason string) {
	for _, listener := range r.snapshot() {
		if listener.Failed != nil {
			listener.Failed(outcome, reason)
		}
	}
}

func (r *listenerRegistry) emitChannelBackup(currency, backup string) {
	for _, listener := range r.snapshot() {
		if listener.ChannelBackup != nil {
			listener.ChannelBackup(currency, backup)
		}
	}
}
