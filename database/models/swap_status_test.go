package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func statusPtr(s SwapStatus) *SwapStatus {
	return &s
}

func TestSwapStatus_Supersedes(t *testing.T) {
	tests := []struct {
		name    string
		current *SwapStatus
		next    SwapStatus
		want    bool
	}{
		{
			name:    "first event always supersedes",
			current: nil,
			next:    StatusTransactionMempool,
			want:    true,
		},
		{
			name:    "mempool to confirmed",
			current: statusPtr(StatusTransactionMempool),
			next:    StatusTransactionConfirmed,
			want:    true,
		},
		{
			name:    "replayed mempool after confirmed",
			current: statusPtr(StatusTransactionConfirmed),
			next:    StatusTransactionMempool,
			want:    false,
		},
		{
			name:    "same status replayed",
			current: statusPtr(StatusInvoicePaid),
			next:    StatusInvoicePaid,
			want:    false,
		},
		{
			name:    "terminal status never superseded",
			current: statusPtr(StatusTransactionClaimed),
			next:    StatusSwapExpired,
			want:    false,
		},
		{
			name:    "mempool after refund",
			current: statusPtr(StatusTransactionRefunded),
			next:    StatusTransactionMempool,
			want:    false,
		},
		{
			name:    "confirmed to settled",
			current: statusPtr(StatusTransactionConfirmed),
			next:    StatusInvoiceSettled,
			want:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.next.Supersedes(tt.current))
		})
	}
}

func TestSwapStatus_IsTerminal(t *testing.T) {
	terminal := []SwapStatus{
		StatusTransactionClaimed, StatusInvoiceSettled, StatusInvoiceFailedToPay,
		StatusTransactionRefunded, StatusSwapExpired,
	}
	for _, s := range terminal {
		require.True(t, s.IsTerminal(), s)
	}

	for _, s := range []SwapStatus{StatusTransactionMempool, StatusTransactionConfirmed, StatusInvoicePaid} {
		require.False(t, s.IsTerminal(), s)
	}
}
