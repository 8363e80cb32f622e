// Package backend implements the client for the swap-execution backend: the
// service that owns the nodes, constructs the contracts and watches the
// chains. Unary calls are JSON over HTTPS, events come in over WebSocket
// streams that the client keeps alive across failures.
package backend

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/macaroon.v2"

	"github.com/hatchswap/hatchswapd/config"
)

const (
	macaroonHeader = "Macaroon"

	defaultReconnectInterval = 5 * time.Second
)

//go:generate go tool mockgen -destination=mock.go -package=backend . ClientInterface

// ClientInterface is the backend surface the service layer consumes.
type ClientInterface interface {
	Connect(ctx context.Context) error
	Disconnect()

	GetInfo(ctx context.Context) (*GetInfoResponse, error)
	GetBalance(ctx context.Context, currency string) (*GetBalanceResponse, error)
	NewAddress(ctx context.Context, currency string) (string, error)
	GetTransaction(ctx context.Context, currency, transactionID string) (string, error)
	GetFeeEstimation(ctx context.Context, currency string) (map[string]int64, error)
	BroadcastTransaction(ctx context.Context, currency, transactionHex string) (string, error)
	ListenOnAddress(ctx context.Context, currency, address string) error
	CreateSwap(ctx context.Context, req CreateSwapRequest) (*CreateSwapResponse, error)
	CreateReverseSwap(ctx context.Context, req CreateReverseSwapRequest) (*CreateReverseSwapResponse, error)

	RegisterStatusListener(listener func(Status))
	TransactionEvents() <-chan TransactionEvent
	InvoiceEvents() <-chan InvoiceEvent
	ClaimEvents() <-chan ClaimEvent
	RefundEvents() <-chan RefundEvent
	ChannelBackupEvents() <-chan ChannelBackupEvent
}

type Client struct {
	endpoint          string
	httpClient        *http.Client
	macaroon          string
	reconnectInterval time.Duration

	mu           sync.Mutex
	status       Status
	connecting   bool
	parentCtx    context.Context
	retryTimer   *time.Timer
	streamCancel context.CancelFunc

	statusListeners []func(Status)

	txEvents       chan TransactionEvent
	invoiceEvents  chan InvoiceEvent
	claimEvents    chan ClaimEvent
	refundEvents   chan RefundEvent
	channelBackups chan ChannelBackupEvent
}

// NewClient builds a backend client from the configured credential files.
// A missing or unreadable TLS certificate is fatal.
func NewClient(fs afero.Fs, cfg config.BackendConfig) (*Client, error) {
	certBytes, err := afero.ReadFile(fs, cfg.CertPath)
	if err != nil {
		return nil, ErrCouldNotFindFiles(cfg.CertPath)
	}

	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(certBytes) {
		return nil, fmt.Errorf("failed to parse TLS certificate: %s", cfg.CertPath)
	}

	macaroonHex := ""
	if cfg.MacaroonPath != "" {
		macaroonBytes, err := afero.ReadFile(fs, cfg.MacaroonPath)
		if err != nil {
			return nil, ErrCouldNotFindFiles(cfg.MacaroonPath)
		}

		mac := &macaroon.Macaroon{}
		if err := mac.UnmarshalBinary(macaroonBytes); err != nil {
			return nil, fmt.Errorf("failed unmarshalling macaroon: %w", err)
		}
		raw, err := mac.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("failed marshalling macaroon: %w", err)
		}
		macaroonHex = hex.EncodeToString(raw)
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				RootCAs:    certPool,
				MinVersion: tls.VersionTLS12,
			},
		},
	}

	return newClient(cfg.Endpoint, httpClient, macaroonHex, defaultReconnectInterval), nil
}

func newClient(endpoint string, httpClient *http.Client, macaroonHex string, reconnectInterval time.Duration) *Client {
	return &Client{
		endpoint:          endpoint,
		httpClient:        httpClient,
		macaroon:          macaroonHex,
		reconnectInterval: reconnectInterval,

		txEvents:       make(chan TransactionEvent),
		invoiceEvents:  make(chan InvoiceEvent),
		claimEvents:    make(chan ClaimEvent),
		refundEvents:   make(chan RefundEvent),
		channelBackups: make(chan ChannelBackupEvent),
	}
}

// Status returns the current connection state.
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

// RegisterStatusListener adds a callback invoked on every connection state
// transition. Delivery is at-most-once and transitions are not replayed to
// late subscribers.
func (c *Client) RegisterStatusListener(listener func(Status)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.statusListeners = append(c.statusListeners, listener)
}

func (c *Client) notifyStatus(status Status) {
	c.mu.Lock()
	listeners := make([]func(Status), len(c.statusListeners))
	copy(listeners, c.statusListeners)
	c.mu.Unlock()

	for _, listener := range listeners {
		listener(status)
	}
}

func (c *Client) TransactionEvents() <-chan TransactionEvent {
	return c.txEvents
}

func (c *Client) InvoiceEvents() <-chan InvoiceEvent {
	return c.invoiceEvents
}

func (c *Client) ClaimEvents() <-chan ClaimEvent {
	return c.claimEvents
}

func (c *Client) RefundEvents() <-chan RefundEvent {
	return c.refundEvents
}

func (c *Client) ChannelBackupEvents() <-chan ChannelBackupEvent {
	return c.channelBackups
}

// call is the generic unary wrapper: one request, one JSON response, no
// retries. Callers treat failures as hard errors for that operation.
func call[Req any, Resp any](ctx context.Context, c *Client, path string, request Req) (*Resp, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.macaroon != "" {
		httpReq.Header.Set(macaroonHeader, c.macaroon)
	}

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			body.Error = res.Status
		}

		return nil, &CallError{
			StatusCode: res.StatusCode,
			Message:    body.Error,
		}
	}

	var response Resp
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return &response, nil
}

// GetInfo returns general information about the backend. Doubles as the
// health check of the reconnect loop.
func (c *Client) GetInfo(ctx context.Context) (*GetInfoResponse, error) {
	return call[struct{}, GetInfoResponse](ctx, c, "/info", struct{}{})
}

func (c *Client) GetBalance(ctx context.Context, currency string) (*GetBalanceResponse, error) {
	return call[getBalanceRequest, GetBalanceResponse](ctx, c, "/balance", getBalanceRequest{
		Currency: currency,
	})
}

func (c *Client) NewAddress(ctx context.Context, currency string) (string, error) {
	response, err := call[newAddressRequest, newAddressResponse](ctx, c, "/address", newAddressRequest{
		Currency: currency,
	})
	if err != nil {
		return "", err
	}

	return response.Address, nil
}

func (c *Client) GetTransaction(ctx context.Context, currency, transactionID string) (string, error) {
	response, err := call[getTransactionRequest, getTransactionResponse](ctx, c, "/transaction", getTransactionRequest{
		Currency:      currency,
		TransactionID: transactionID,
	})
	if err != nil {
		return "", err
	}

	return response.TransactionHex, nil
}

// GetFeeEstimation returns fee rates in sat/vbyte, either for one currency
// or for all of them when currency is empty.
func (c *Client) GetFeeEstimation(ctx context.Context, currency string) (map[string]int64, error) {
	response, err := call[getFeeEstimationRequest, getFeeEstimationResponse](ctx, c, "/feeestimation", getFeeEstimationRequest{
		Currency: currency,
	})
	if err != nil {
		return nil, err
	}

	return response.Fees, nil
}

func (c *Client) BroadcastTransaction(ctx context.Context, currency, transactionHex string) (string, error) {
	response, err := call[broadcastTransactionRequest, broadcastTransactionResponse](ctx, c, "/broadcasttransaction", broadcastTransactionRequest{
		Currency:       currency,
		TransactionHex: transactionHex,
	})
	if err != nil {
		return "", err
	}

	return response.TransactionID, nil
}

// ListenOnAddress registers the address on the backend, so that
// transactions paying it show up on the transaction stream.
func (c *Client) ListenOnAddress(ctx context.Context, currency, address string) error {
	_, err := call[listenOnAddressRequest, struct{}](ctx, c, "/listenonaddress", listenOnAddressRequest{
		Currency: currency,
		Address:  address,
	})

	return err
}

func (c *Client) CreateSwap(ctx context.Context, req CreateSwapRequest) (*CreateSwapResponse, error) {
	return call[CreateSwapRequest, CreateSwapResponse](ctx, c, "/createswap", req)
}

func (c *Client) CreateReverseSwap(ctx context.Context, req CreateReverseSwapRequest) (*CreateReverseSwapResponse, error) {
	return call[CreateReverseSwapRequest, CreateReverseSwapResponse](ctx, c, "/createreverseswap", req)
}

var _ ClientInterface = (*Client)(nil)
