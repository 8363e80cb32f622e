package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hatchswap/hatchswapd/backend"
	"github.com/hatchswap/hatchswapd/database/models"
	"github.com/hatchswap/hatchswapd/money"
)

// recordingListener captures every lifecycle callback for assertions.
type recordingListener struct {
	updates    []SwapUpdate
	successful []SwapOutcome
	failed     []SwapOutcome
	reasons    []string
	backups    []string
}

func (l *recordingListener) listener() Listener {
	return Listener{
		Update: func(update SwapUpdate) {
			l.updates = append(l.updates, update)
		},
		Successful: func(outcome SwapOutcome) {
			l.successful = append(l.successful, outcome)
		},
		Failed: func(outcome SwapOutcome, reason string) {
			l.failed = append(l.failed, outcome)
			l.reasons = append(l.reasons, reason)
		},
		ChannelBackup: func(currency, backup string) {
			l.backups = append(l.backups, currency+":"+backup)
		},
	}
}

func statusPtr(status models.SwapStatus) *models.SwapStatus {
	return &status
}

func TestService_Init(t *testing.T) {
	fixture := newServiceFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	fixture.backend.EXPECT().GetInfo(ctx).Return(&backend.GetInfoResponse{
		Version: "1.0.0",
		Chains: []backend.ChainInfo{
			{Symbol: "BTC", BlockHeight: 100},
			{Symbol: "LTC", BlockHeight: 400},
		},
	}, nil)

	// LTC/BTC is configured but not persisted yet, BTC/USDT is persisted
	// but no longer configured.
	fixture.pairs.EXPECT().GetPairs(ctx).Return([]models.Pair{
		{ID: "BTC/USDT", Base: "BTC", Quote: "USDT"},
	}, nil)
	fixture.pairs.EXPECT().AddPair(ctx, &models.Pair{
		ID:    "LTC/BTC",
		Base:  "LTC",
		Quote: "BTC",
	}).Return(nil)
	fixture.pairs.EXPECT().RemovePair(ctx, "BTC/USDT").Return(nil)
	fixture.pairs.EXPECT().GetPairs(ctx).Return([]models.Pair{
		{ID: "LTC/BTC", Base: "LTC", Quote: "BTC"},
	}, nil)

	fixture.backend.EXPECT().RegisterStatusListener(gomock.Any())

	fixture.backend.EXPECT().TransactionEvents().Return(make(chan backend.TransactionEvent)).AnyTimes()
	fixture.backend.EXPECT().InvoiceEvents().Return(make(chan backend.InvoiceEvent)).AnyTimes()
	fixture.backend.EXPECT().ClaimEvents().Return(make(chan backend.ClaimEvent)).AnyTimes()
	fixture.backend.EXPECT().RefundEvents().Return(make(chan backend.RefundEvent)).AnyTimes()
	fixture.backend.EXPECT().ChannelBackupEvents().Return(make(chan backend.ChannelBackupEvent)).AnyTimes()

	require.NoError(t, fixture.service.Init(ctx))

	pair, ok := fixture.service.rates.Get("LTC/BTC")
	require.True(t, ok)
	assert.Equal(t, 0.015, pair.Rate)
}

func TestService_InitCurrencyNotSupported(t *testing.T) {
	fixture := newServiceFixture(t)
	ctx := context.Background()

	fixture.backend.EXPECT().GetInfo(ctx).Return(&backend.GetInfoResponse{
		Chains: []backend.ChainInfo{
			{Symbol: "BTC", BlockHeight: 100},
		},
	}, nil)

	err := fixture.service.Init(ctx)
	requireSwapError(t, err, "2.0")
}

func TestService_HandleTransaction(t *testing.T) {
	t.Run("confirmed lockup of a swap", func(t *testing.T) {
		fixture := newServiceFixture(t)
		listener := &recordingListener{}
		fixture.service.RegisterListener(listener.listener())

		swap := &models.Swap{ID: "abc123", LockupAddress: "QLockup", AcceptZeroConf: false}
		fixture.swaps.EXPECT().GetSwapByLockupAddress(gomock.Any(), "QLockup").Return(swap, nil)
		fixture.swaps.EXPECT().UpdateSwap(gomock.Any(), swap).Return(nil)

		fixture.service.handleTransaction(context.Background(), backend.TransactionEvent{
			Currency:      "LTC",
			TransactionID: "lockuptx",
			OutputAddress: "QLockup",
			Amount:        338_068,
			Confirmed:     true,
		})

		require.Equal(t, statusPtr(models.StatusTransactionConfirmed), swap.Status)
		assert.Equal(t, "lockuptx", swap.LockupTransactionID)
		assert.Equal(t, money.Money(338_068), swap.OnchainAmount)
		require.Len(t, listener.updates, 1)
		assert.Equal(t, SwapUpdate{ID: "abc123", Status: models.StatusTransactionConfirmed}, listener.updates[0])
	})

	t.Run("unconfirmed lockup without zero conf is not announced", func(t *testing.T) {
		fixture := newServiceFixture(t)
		listener := &recordingListener{}
		fixture.service.RegisterListener(listener.listener())

		swap := &models.Swap{ID: "abc123", LockupAddress: "QLockup", AcceptZeroConf: false}
		fixture.swaps.EXPECT().GetSwapByLockupAddress(gomock.Any(), "QLockup").Return(swap, nil)
		fixture.swaps.EXPECT().UpdateSwap(gomock.Any(), swap).Return(nil)

		fixture.service.handleTransaction(context.Background(), backend.TransactionEvent{
			OutputAddress: "QLockup",
			Confirmed:     false,
		})

		require.Equal(t, statusPtr(models.StatusTransactionMempool), swap.Status)
		assert.Empty(t, listener.updates)
	})

	t.Run("unconfirmed lockup with zero conf is announced", func(t *testing.T) {
		fixture := newServiceFixture(t)
		listener := &recordingListener{}
		fixture.service.RegisterListener(listener.listener())

		swap := &models.Swap{ID: "abc123", LockupAddress: "QLockup", AcceptZeroConf: true}
		fixture.swaps.EXPECT().GetSwapByLockupAddress(gomock.Any(), "QLockup").Return(swap, nil)
		fixture.swaps.EXPECT().UpdateSwap(gomock.Any(), swap).Return(nil)

		fixture.service.handleTransaction(context.Background(), backend.TransactionEvent{
			OutputAddress: "QLockup",
			Confirmed:     false,
		})

		require.Len(t, listener.updates, 1)
		assert.Equal(t, models.StatusTransactionMempool, listener.updates[0].Status)
	})

	t.Run("mempool replay after confirmation is ignored", func(t *testing.T) {
		fixture := newServiceFixture(t)
		listener := &recordingListener{}
		fixture.service.RegisterListener(listener.listener())

		swap := &models.Swap{
			ID:            "abc123",
			LockupAddress: "QLockup",
			Status:        statusPtr(models.StatusTransactionConfirmed),
		}
		fixture.swaps.EXPECT().GetSwapByLockupAddress(gomock.Any(), "QLockup").Return(swap, nil)

		fixture.service.handleTransaction(context.Background(), backend.TransactionEvent{
			OutputAddress: "QLockup",
			Confirmed:     false,
		})

		assert.Equal(t, statusPtr(models.StatusTransactionConfirmed), swap.Status)
		assert.Empty(t, listener.updates)
	})

	t.Run("lockup of a reverse swap", func(t *testing.T) {
		fixture := newServiceFixture(t)
		listener := &recordingListener{}
		fixture.service.RegisterListener(listener.listener())

		reverseSwap := &models.ReverseSwap{ID: "rev123", TransactionID: "lockuptx"}
		fixture.swaps.EXPECT().GetSwapByLockupAddress(gomock.Any(), "QReverse").Return(nil, nil)
		fixture.reverse.EXPECT().GetReverseSwapByTransactionID(gomock.Any(), "lockuptx").Return(reverseSwap, nil)
		fixture.reverse.EXPECT().UpdateReverseSwap(gomock.Any(), reverseSwap).Return(nil)

		fixture.service.handleTransaction(context.Background(), backend.TransactionEvent{
			TransactionID: "lockuptx",
			OutputAddress: "QReverse",
			Confirmed:     false,
		})

		require.Len(t, listener.updates, 1)
		assert.True(t, listener.updates[0].IsReverse)
		assert.Equal(t, models.StatusTransactionMempool, listener.updates[0].Status)
	})
}

func TestService_HandleInvoice(t *testing.T) {
	t.Run("paid", func(t *testing.T) {
		fixture := newServiceFixture(t)
		listener := &recordingListener{}
		fixture.service.RegisterListener(listener.listener())

		swap := &models.Swap{ID: "abc123", Invoice: "lnbcrt1test"}
		fixture.swaps.EXPECT().GetSwapByInvoice(gomock.Any(), "lnbcrt1test").Return(swap, nil)
		fixture.swaps.EXPECT().UpdateSwap(gomock.Any(), swap).Return(nil)

		fixture.service.handleInvoice(context.Background(), backend.InvoiceEvent{
			Type:       backend.InvoicePaid,
			Invoice:    "lnbcrt1test",
			RoutingFee: 21,
		})

		require.Equal(t, statusPtr(models.StatusInvoicePaid), swap.Status)
		assert.Equal(t, money.Money(21), swap.RoutingFee)
		require.Len(t, listener.successful, 1)
		assert.Equal(t, swap, listener.successful[0].Swap)
	})

	t.Run("failed to pay", func(t *testing.T) {
		fixture := newServiceFixture(t)
		listener := &recordingListener{}
		fixture.service.RegisterListener(listener.listener())

		swap := &models.Swap{ID: "abc123", Invoice: "lnbcrt1test"}
		fixture.swaps.EXPECT().GetSwapByInvoice(gomock.Any(), "lnbcrt1test").Return(swap, nil)
		fixture.swaps.EXPECT().UpdateSwap(gomock.Any(), swap).Return(nil)

		fixture.service.handleInvoice(context.Background(), backend.InvoiceEvent{
			Type:    backend.InvoiceFailedToPay,
			Invoice: "lnbcrt1test",
		})

		require.Equal(t, statusPtr(models.StatusInvoiceFailedToPay), swap.Status)
		require.Len(t, listener.failed, 1)
		assert.Equal(t, []string{ReasonInvoiceNotPaid}, listener.reasons)
	})

	t.Run("settled", func(t *testing.T) {
		fixture := newServiceFixture(t)
		listener := &recordingListener{}
		fixture.service.RegisterListener(listener.listener())

		reverseSwap := &models.ReverseSwap{ID: "rev123", Invoice: "lnbcrt1reverse"}
		fixture.reverse.EXPECT().GetReverseSwapByInvoice(gomock.Any(), "lnbcrt1reverse").Return(reverseSwap, nil)
		fixture.reverse.EXPECT().UpdateReverseSwap(gomock.Any(), reverseSwap).Return(nil)

		fixture.service.handleInvoice(context.Background(), backend.InvoiceEvent{
			Type:     backend.InvoiceSettled,
			Invoice:  "lnbcrt1reverse",
			Preimage: "deadbeef",
		})

		require.Equal(t, statusPtr(models.StatusInvoiceSettled), reverseSwap.Status)
		assert.Equal(t, "deadbeef", reverseSwap.Preimage)
		require.Len(t, listener.successful, 1)
		assert.Equal(t, reverseSwap, listener.successful[0].ReverseSwap)
	})

	t.Run("aborted", func(t *testing.T) {
		fixture := newServiceFixture(t)
		listener := &recordingListener{}
		fixture.service.RegisterListener(listener.listener())

		swap := &models.Swap{ID: "abc123", Invoice: "lnbcrt1test"}
		fixture.swaps.EXPECT().GetSwapByInvoice(gomock.Any(), "lnbcrt1test").Return(swap, nil)
		fixture.swaps.EXPECT().UpdateSwap(gomock.Any(), swap).Return(nil)

		fixture.service.handleInvoice(context.Background(), backend.InvoiceEvent{
			Type:    backend.InvoiceAborted,
			Invoice: "lnbcrt1test",
		})

		require.Equal(t, statusPtr(models.StatusSwapExpired), swap.Status)
		assert.Equal(t, []string{ReasonHTLCTimedOut}, listener.reasons)
	})

	t.Run("unknown invoice is ignored", func(t *testing.T) {
		fixture := newServiceFixture(t)
		listener := &recordingListener{}
		fixture.service.RegisterListener(listener.listener())

		fixture.swaps.EXPECT().GetSwapByInvoice(gomock.Any(), "lnbcrt1unknown").Return(nil, nil)

		fixture.service.handleInvoice(context.Background(), backend.InvoiceEvent{
			Type:    backend.InvoicePaid,
			Invoice: "lnbcrt1unknown",
		})

		assert.Empty(t, listener.updates)
		assert.Empty(t, listener.successful)
	})
}

func TestService_HandleClaim(t *testing.T) {
	fixture := newServiceFixture(t)
	listener := &recordingListener{}
	fixture.service.RegisterListener(listener.listener())

	swap := &models.Swap{
		ID:                  "abc123",
		LockupTransactionID: "lockuptx",
		Status:              statusPtr(models.StatusInvoicePaid),
	}
	fixture.swaps.EXPECT().GetSwapByLockupTransactionID(gomock.Any(), "lockuptx").Return(swap, nil)
	fixture.swaps.EXPECT().UpdateSwap(gomock.Any(), swap).Return(nil)

	fixture.service.handleClaim(context.Background(), backend.ClaimEvent{
		LockupTransactionID: "lockuptx",
		MinerFee:            1380,
	})

	require.Equal(t, statusPtr(models.StatusTransactionClaimed), swap.Status)
	assert.Equal(t, money.Money(1380), swap.MinerFee)
	require.Len(t, listener.successful, 1)
}

func TestService_HandleClaimIsTerminal(t *testing.T) {
	fixture := newServiceFixture(t)
	listener := &recordingListener{}
	fixture.service.RegisterListener(listener.listener())

	swap := &models.Swap{
		ID:                  "abc123",
		LockupTransactionID: "lockuptx",
		Status:              statusPtr(models.StatusTransactionClaimed),
	}
	fixture.swaps.EXPECT().GetSwapByLockupTransactionID(gomock.Any(), "lockuptx").Return(swap, nil)

	fixture.service.handleClaim(context.Background(), backend.ClaimEvent{
		LockupTransactionID: "lockuptx",
		MinerFee:            1380,
	})

	assert.Equal(t, money.Money(0), swap.MinerFee)
	assert.Empty(t, listener.updates)
}

func TestService_HandleRefund(t *testing.T) {
	fixture := newServiceFixture(t)
	listener := &recordingListener{}
	fixture.service.RegisterListener(listener.listener())

	reverseSwap := &models.ReverseSwap{
		ID:            "rev123",
		TransactionID: "lockuptx",
		MinerFee:      1530,
	}
	fixture.reverse.EXPECT().GetReverseSwapByTransactionID(gomock.Any(), "lockuptx").Return(reverseSwap, nil)
	fixture.reverse.EXPECT().UpdateReverseSwap(gomock.Any(), reverseSwap).Return(nil)

	fixture.service.handleRefund(context.Background(), backend.RefundEvent{
		LockupTransactionID: "lockuptx",
		MinerFee:            1380,
	})

	require.Equal(t, statusPtr(models.StatusTransactionRefunded), reverseSwap.Status)
	assert.Equal(t, money.Money(2910), reverseSwap.MinerFee)
	assert.Equal(t, []string{ReasonRefunded}, listener.reasons)
}

func TestService_GetPairsWarnings(t *testing.T) {
	fixture := newServiceFixture(t)

	pairs := fixture.service.GetPairs()
	assert.Empty(t, pairs.Warnings)
	assert.Contains(t, pairs.Pairs, "LTC/BTC")

	fixture.service.SetAllowReverseSwaps(false)
	pairs = fixture.service.GetPairs()
	assert.Equal(t, []string{WarningReverseSwapsDisabled}, pairs.Warnings)
}

func TestService_GetLimits(t *testing.T) {
	fixture := newServiceFixture(t)

	limits := fixture.service.GetLimits()
	require.Contains(t, limits, "LTC/BTC")
	assert.Equal(t, money.Money(66_667), limits["LTC/BTC"].Minimal)
	assert.Equal(t, money.Money(1_000_000), limits["LTC/BTC"].Maximal)
}

func TestService_BroadcastTransaction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fixture := newServiceFixture(t)

		fixture.backend.EXPECT().
			BroadcastTransaction(gomock.Any(), "BTC", "rawtx").
			Return("txid", nil)

		transactionID, err := fixture.service.BroadcastTransaction(context.Background(), "BTC", "rawtx")
		require.NoError(t, err)
		assert.Equal(t, "txid", transactionID)
	})

	t.Run("non-final refund", func(t *testing.T) {
		fixture := newServiceFixture(t)

		fixture.backend.EXPECT().
			BroadcastTransaction(gomock.Any(), "BTC", "rawtx").
			Return("", &backend.CallError{
				StatusCode: 400,
				Message:    "mempool rejected transaction: non-final",
			})

		_, err := fixture.service.BroadcastTransaction(context.Background(), "BTC", "rawtx")
		requireSwapError(t, err, "2.7")
	})
}
