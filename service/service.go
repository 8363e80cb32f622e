// Package service is the orchestration core: it owns the swap lifecycle
// state machine, verifies amounts and fees against the rate table and
// reconciles the backend's event streams with the persisted records.
package service

import (
	"context"
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/hatchswap/hatchswapd/backend"
	"github.com/hatchswap/hatchswapd/config"
	"github.com/hatchswap/hatchswapd/database"
	"github.com/hatchswap/hatchswapd/database/models"
	"github.com/hatchswap/hatchswapd/rates"
)

type Service struct {
	cfg *config.Config

	backend     backend.ClientInterface
	pairRepo    database.PairRepository
	swapRepo    database.SwapRepository
	reverseRepo database.ReverseSwapRepository

	rates *rates.Provider
	fees  *rates.FeeProvider

	// Runtime toggle, flipped by operator tooling.
	allowReverseSwaps atomic.Bool

	listeners listenerRegistry
}

func New(
	cfg *config.Config,
	backendClient backend.ClientInterface,
	pairRepo database.PairRepository,
	swapRepo database.SwapRepository,
	reverseRepo database.ReverseSwapRepository,
	rateProvider *rates.Provider,
	feeProvider *rates.FeeProvider,
) *Service {
	service := &Service{
		cfg:         cfg,
		backend:     backendClient,
		pairRepo:    pairRepo,
		swapRepo:    swapRepo,
		reverseRepo: reverseRepo,
		rates:       rateProvider,
		fees:        feeProvider,
	}
	service.allowReverseSwaps.Store(true)

	return service
}

// Init verifies the configured currencies against the backend, reconciles
// the configured pairs with the persisted ones, populates the rate table
// and starts consuming the backend's event streams.
func (s *Service) Init(ctx context.Context) error {
	info, err := s.backend.GetInfo(ctx)
	if err != nil {
		return fmt.Errorf("could not get backend info: %w", err)
	}

	supported := make(map[string]struct{}, len(info.Chains))
	for _, chain := range info.Chains {
		supported[chain.Symbol] = struct{}{}
	}
	for _, currency := range s.cfg.Currencies {
		if _, ok := supported[currency.Symbol]; !ok {
			return ErrCurrencyNotSupported(currency.Symbol)
		}
	}

	dbPairs, err := s.reconcilePairs(ctx)
	if err != nil {
		return err
	}

	s.fees.Init(s.cfg.Pairs)
	s.rates.Init(ctx, dbPairs)

	s.backend.RegisterStatusListener(func(status backend.Status) {
		log.Infof("Backend connection status changed to %s", status)
	})

	go s.eventLoop(ctx)

	return nil
}

// RegisterListener subscribes to the swap lifecycle event feed.
func (s *Service) RegisterListener(listener Listener) {
	s.listeners.register(listener)
}

// SetAllowReverseSwaps toggles reverse swap creation at runtime.
func (s *Service) SetAllowReverseSwaps(allow bool) {
	s.allowReverseSwaps.Store(allow)
}

// reconcilePairs adds configured pairs missing from the database and
// removes persisted pairs that are no longer configured.
func (s *Service) reconcilePairs(ctx context.Context) ([]models.Pair, error) {
	persisted, err := s.pairRepo.GetPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load pairs: %w", err)
	}

	persistedIDs := make(map[string]struct{}, len(persisted))
	for _, pair := range persisted {
		persistedIDs[pair.ID] = struct{}{}
	}

	configuredIDs := make(map[string]struct{}, len(s.cfg.Pairs))
	for _, pair := range s.cfg.Pairs {
		if _, ok := s.cfg.Currency(pair.Base); !ok {
			return nil, fmt.Errorf("pair %s/%s references unknown currency %s", pair.Base, pair.Quote, pair.Base)
		}
		if _, ok := s.cfg.Currency(pair.Quote); !ok {
			return nil, fmt.Errorf("pair %s/%s references unknown currency %s", pair.Base, pair.Quote, pair.Quote)
		}

		id := models.PairID(pair.Base, pair.Quote)
		configuredIDs[id] = struct{}{}

		if _, exists := persistedIDs[id]; !exists {
			log.Infof("Adding pair to database: %s", id)
			if err := s.pairRepo.AddPair(ctx, &models.Pair{
				ID:    id,
				Base:  pair.Base,
				Quote: pair.Quote,
				Rate:  pair.Rate,
			}); err != nil {
				return nil, fmt.Errorf("could not add pair %s: %w", id, err)
			}
		}
	}

	for _, pair := range persisted {
		if _, ok := configuredIDs[pair.ID]; !ok {
			log.Infof("Removing pair from database: %s", pair.ID)
			if err := s.pairRepo.RemovePair(ctx, pair.ID); err != nil {
				return nil, fmt.Errorf("could not remove pair %s: %w", pair.ID, err)
			}
		}
	}

	pairs, err := s.pairRepo.GetPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load pairs: %w", err)
	}

	return pairs, nil
}

// eventLoop serializes all record updates: every stream event is handled
// on this goroutine, so handlers never race on the same swap.
func (s *Service) eventLoop(ctx context.Context) {
	for {
		select {
		case event := <-s.backend.TransactionEvents():
			s.handleTransaction(ctx, event)
		case event := <-s.backend.InvoiceEvents():
			s.handleInvoice(ctx, event)
		case event := <-s.backend.ClaimEvents():
			s.handleClaim(ctx, event)
		case event := <-s.backend.RefundEvents():
			s.handleRefund(ctx, event)
		case event := <-s.backend.ChannelBackupEvents():
			log.Debugf("Got new channel backup for %s", event.Currency)
			s.listeners.emitChannelBackup(event.Currency, event.Backup)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Service) handleTransaction(ctx context.Context, event backend.TransactionEvent) {
	status := models.StatusTransactionMempool
	if event.Confirmed {
		status = models.StatusTransactionConfirmed
	}

	swap, err := s.swapRepo.GetSwapByLockupAddress(ctx, event.OutputAddress)
	if err != nil {
		log.Errorf("Could not look up swap for address %s: %v", event.OutputAddress, err)
		return
	}
	if swap != nil {
		if !status.Supersedes(swap.Status) {
			return
		}

		swap.Status = &status
		swap.LockupTransactionID = event.TransactionID
		swap.OnchainAmount = event.Amount
		if err := s.swapRepo.UpdateSwap(ctx, swap); err != nil {
			log.Errorf("Could not update swap %s: %v", swap.ID, err)
			return
		}

		log.Infof("Lockup transaction of swap %s: %s (%s)", swap.ID, event.TransactionID, status)

		// Unconfirmed lockups are only announced when zero conf was granted.
		if event.Confirmed || swap.AcceptZeroConf {
			s.listeners.emitUpdate(SwapUpdate{ID: swap.ID, Status: status})
		}

		return
	}

	reverseSwap, err := s.reverseRepo.GetReverseSwapByTransactionID(ctx, event.TransactionID)
	if err != nil {
		log.Errorf("Could not look up reverse swap for transaction %s: %v", event.TransactionID, err)
		return
	}
	if reverseSwap == nil || !status.Supersedes(reverseSwap.Status) {
		return
	}

	reverseSwap.Status = &status
	if err := s.reverseRepo.UpdateReverseSwap(ctx, reverseSwap); err != nil {
		log.Errorf("Could not update reverse swap %s: %v", reverseSwap.ID, err)
		return
	}

	log.Infof("Lockup transaction of reverse swap %s: %s (%s)", reverseSwap.ID, event.TransactionID, status)
	s.listeners.emitUpdate(SwapUpdate{ID: reverseSwap.ID, Status: status, IsReverse: true})
}

func (s *Service) handleInvoice(ctx context.Context, event backend.InvoiceEvent) {
	switch event.Type {
	case backend.InvoicePaid:
		s.handleInvoicePaid(ctx, event)
	case backend.InvoiceFailedToPay:
		s.handleInvoiceFailedToPay(ctx, event)
	case backend.InvoiceSettled:
		s.handleInvoiceSettled(ctx, event)
	case backend.InvoiceAborted:
		s.handleInvoiceAborted(ctx, event)
	default:
		log.Warnf("Got invoice event of unknown type: %s", event.Type)
	}
}

func (s *Service) handleInvoicePaid(ctx context.Context, event backend.InvoiceEvent) {
	swap, err := s.swapRepo.GetSwapByInvoice(ctx, event.Invoice)
	if err != nil || swap == nil {
		s.logUnmatchedInvoice("paid", event.Invoice, err)
		return
	}

	status := models.StatusInvoicePaid
	if !status.Supersedes(swap.Status) {
		return
	}

	swap.Status = &status
	swap.RoutingFee = event.RoutingFee
	if err := s.swapRepo.UpdateSwap(ctx, swap); err != nil {
		log.Errorf("Could not update swap %s: %v", swap.ID, err)
		return
	}

	log.Infof("Paid invoice of swap %s", swap.ID)
	s.listeners.emitUpdate(SwapUpdate{ID: swap.ID, Status: status})
	s.listeners.emitSuccessful(SwapOutcome{Swap: swap})
}

func (s *Service) handleInvoiceFailedToPay(ctx context.Context, event backend.InvoiceEvent) {
	swap, err := s.swapRepo.GetSwapByInvoice(ctx, event.Invoice)
	if err != nil || swap == nil {
		s.logUnmatchedInvoice("failed", event.Invoice, err)
		return
	}

	status := models.StatusInvoiceFailedToPay
	if !status.Supersedes(swap.Status) {
		return
	}

	swap.Status = &status
	if err := s.swapRepo.UpdateSwap(ctx, swap); err != nil {
		log.Errorf("Could not update swap %s: %v", swap.ID, err)
		return
	}

	log.Warnf("Could not pay invoice of swap %s", swap.ID)
	s.listeners.emitUpdate(SwapUpdate{ID: swap.ID, Status: status})
	s.listeners.emitFailed(SwapOutcome{Swap: swap}, ReasonInvoiceNotPaid)
}

func (s *Service) handleInvoiceSettled(ctx context.Context, event backend.InvoiceEvent) {
	reverseSwap, err := s.reverseRepo.GetReverseSwapByInvoice(ctx, event.Invoice)
	if err != nil || reverseSwap == nil {
		s.logUnmatchedInvoice("settled", event.Invoice, err)
		return
	}

	status := models.StatusInvoiceSettled
	if !status.Supersedes(reverseSwap.Status) {
		return
	}

	reverseSwap.Status = &status
	reverseSwap.Preimage = event.Preimage
	if err := s.reverseRepo.UpdateReverseSwap(ctx, reverseSwap); err != nil {
		log.Errorf("Could not update reverse swap %s: %v", reverseSwap.ID, err)
		return
	}

	log.Infof("Settled invoice of reverse swap %s", reverseSwap.ID)
	s.listeners.emitUpdate(SwapUpdate{ID: reverseSwap.ID, Status: status, IsReverse: true})
	s.listeners.emitSuccessful(SwapOutcome{ReverseSwap: reverseSwap})
}

func (s *Service) handleInvoiceAborted(ctx context.Context, event backend.InvoiceEvent) {
	swap, err := s.swapRepo.GetSwapByInvoice(ctx, event.Invoice)
	if err != nil || swap == nil {
		s.logUnmatchedInvoice("aborted", event.Invoice, err)
		return
	}

	status := models.StatusSwapExpired
	if !status.Supersedes(swap.Status) {
		return
	}

	swap.Status = &status
	if err := s.swapRepo.UpdateSwap(ctx, swap); err != nil {
		log.Errorf("Could not update swap %s: %v", swap.ID, err)
		return
	}

	log.Warnf("Onchain HTLC of swap %s timed out", swap.ID)
	s.listeners.emitUpdate(SwapUpdate{ID: swap.ID, Status: status})
	s.listeners.emitFailed(SwapOutcome{Swap: swap}, ReasonHTLCTimedOut)
}

func (s *Service) handleClaim(ctx context.Context, event backend.ClaimEvent) {
	swap, err := s.swapRepo.GetSwapByLockupTransactionID(ctx, event.LockupTransactionID)
	if err != nil {
		log.Errorf("Could not look up swap for claim of %s: %v", event.LockupTransactionID, err)
		return
	}
	if swap == nil {
		return
	}

	status := models.StatusTransactionClaimed
	if !status.Supersedes(swap.Status) {
		return
	}

	swap.Status = &status
	swap.MinerFee = event.MinerFee
	if err := s.swapRepo.UpdateSwap(ctx, swap); err != nil {
		log.Errorf("Could not update swap %s: %v", swap.ID, err)
		return
	}

	log.Infof("Claimed lockup transaction of swap %s", swap.ID)
	s.listeners.emitUpdate(SwapUpdate{ID: swap.ID, Status: status})
	s.listeners.emitSuccessful(SwapOutcome{Swap: swap})
}

func (s *Service) handleRefund(ctx context.Context, event backend.RefundEvent) {
	reverseSwap, err := s.reverseRepo.GetReverseSwapByTransactionID(ctx, event.LockupTransactionID)
	if err != nil {
		log.Errorf("Could not look up reverse swap for refund of %s: %v", event.LockupTransactionID, err)
		return
	}
	if reverseSwap == nil {
		return
	}

	status := models.StatusTransactionRefunded
	if !status.Supersedes(reverseSwap.Status) {
		return
	}

	reverseSwap.Status = &status
	reverseSwap.MinerFee += event.MinerFee
	if err := s.reverseRepo.UpdateReverseSwap(ctx, reverseSwap); err != nil {
		log.Errorf("Could not update reverse swap %s: %v", reverseSwap.ID, err)
		return
	}

	log.Warnf("Refunded lockup transaction of reverse swap %s", reverseSwap.ID)
	s.listeners.emitUpdate(SwapUpdate{ID: reverseSwap.ID, Status: status, IsReverse: true})
	s.listeners.emitFailed(SwapOutcome{ReverseSwap: reverseSwap}, ReasonRefunded)
}

func (s *Service) logUnmatchedInvoice(kind, invoice string, err error) {
	if err != nil {
		log.Errorf("Could not look up swap for %s invoice: %v", kind, err)
		return
	}

	log.Debugf("No swap for %s invoice %s", kind, invoice)
}
