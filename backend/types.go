package backend

import "github.com/hatchswap/hatchswapd/money"

// Status is the connection state of the client.
type Status int

const (
	StatusDisconnected Status = iota
	StatusConnected
)

func (s Status) String() string {
	if s == StatusConnected {
		return "connected"
	}

	return "disconnected"
}

type GetInfoResponse struct {
	Version string      `json:"version"`
	Chains  []ChainInfo `json:"chains"`
}

type ChainInfo struct {
	Symbol      string `json:"symbol"`
	BlockHeight uint32 `json:"blockHeight"`
}

type Balance struct {
	WalletBalance    money.Money `json:"walletBalance"`
	ConfirmedBalance money.Money `json:"confirmedBalance"`
	LocalBalance     money.Money `json:"localBalance"`
	RemoteBalance    money.Money `json:"remoteBalance"`
}

type getBalanceRequest struct {
	Currency string `json:"currency,omitempty"`
}

type GetBalanceResponse struct {
	Balances map[string]Balance `json:"balances"`
}

type newAddressRequest struct {
	Currency string `json:"currency"`
}

type newAddressResponse struct {
	Address string `json:"address"`
}

type getTransactionRequest struct {
	Currency      string `json:"currency"`
	TransactionID string `json:"transactionId"`
}

type getTransactionResponse struct {
	TransactionHex string `json:"transactionHex"`
}

type getFeeEstimationRequest struct {
	Currency string `json:"currency,omitempty"`
	Blocks   uint32 `json:"blocks,omitempty"`
}

type getFeeEstimationResponse struct {
	// Fees maps currency symbols to a fee rate in sat/vbyte.
	Fees map[string]int64 `json:"fees"`
}

type broadcastTransactionRequest struct {
	Currency       string `json:"currency"`
	TransactionHex string `json:"transactionHex"`
}

type broadcastTransactionResponse struct {
	TransactionID string `json:"transactionId"`
}

type listenOnAddressRequest struct {
	Currency string `json:"currency"`
	Address  string `json:"address"`
}

type CreateSwapRequest struct {
	PairID            string `json:"pairId"`
	OrderSide         string `json:"orderSide"`
	Invoice           string `json:"invoice"`
	RefundPublicKey   string `json:"refundPublicKey"`
	TimeoutBlockDelta uint32 `json:"timeoutBlockDelta"`
}

type CreateSwapResponse struct {
	Address            string `json:"address"`
	RedeemScript       string `json:"redeemScript"`
	TimeoutBlockHeight uint32 `json:"timeoutBlockHeight"`
}

type CreateReverseSwapRequest struct {
	PairID            string      `json:"pairId"`
	OrderSide         string      `json:"orderSide"`
	ClaimPublicKey    string      `json:"claimPublicKey"`
	InvoiceAmount     money.Money `json:"invoiceAmount"`
	OnchainAmount     money.Money `json:"onchainAmount"`
	TimeoutBlockDelta uint32      `json:"timeoutBlockDelta"`
}

type CreateReverseSwapResponse struct {
	Invoice             string `json:"invoice"`
	RedeemScript        string `json:"redeemScript"`
	LockupAddress       string `json:"lockupAddress"`
	LockupTransactionID string `json:"lockupTransactionId"`
	TimeoutBlockHeight  uint32 `json:"timeoutBlockHeight"`
}

// TransactionEvent is sent for transactions paying a watched address, once
// from the mempool and once on confirmation.
type TransactionEvent struct {
	Currency      string      `json:"currency"`
	TransactionID string      `json:"transactionId"`
	OutputAddress string      `json:"outputAddress"`
	Amount        money.Money `json:"amount"`
	Confirmed     bool        `json:"confirmed"`
}

type InvoiceEventType string

const (
	InvoicePaid        InvoiceEventType = "paid"
	InvoiceSettled     InvoiceEventType = "settled"
	InvoiceFailedToPay InvoiceEventType = "failedToPay"

	// InvoiceAborted signals that the on-chain HTLC of the swap paying
	// this invoice timed out.
	InvoiceAborted InvoiceEventType = "abort"
)

type InvoiceEvent struct {
	Type       InvoiceEventType `json:"type"`
	Invoice    string           `json:"invoice"`
	RoutingFee money.Money      `json:"routingFee"`
	Preimage   string           `json:"preimage"`
}

// ClaimEvent is sent when the backend claimed the lockup of a swap.
type ClaimEvent struct {
	LockupTransactionID string      `json:"lockupTransactionId"`
	MinerFee            money.Money `json:"minerFee"`
}

// RefundEvent is sent when the backend refunded the lockup of a reverse swap.
type RefundEvent struct {
	LockupTransactionID string      `json:"lockupTransactionId"`
	MinerFee            money.Money `json:"minerFee"`
}

type ChannelBackupEvent struct {
	Currency string `json:"currency"`
	Backup   string `json:"backup"`
}
