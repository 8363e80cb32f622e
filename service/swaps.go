package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lightningnetwork/lnd/zpay32"
	log "github.com/sirupsen/logrus"
	"github.com/thanhpk/randstr"

	"github.com/hatchswap/hatchswapd/backend"
	"github.com/hatchswap/hatchswapd/config"
	"github.com/hatchswap/hatchswapd/database"
	"github.com/hatchswap/hatchswapd/database/models"
	"github.com/hatchswap/hatchswapd/money"
	"github.com/hatchswap/hatchswapd/rates"
)

const swapIDLength = 6

// CreatedSwap is returned to the caller of CreateSwap: everything a wallet
// needs to fund the onchain HTLC.
type CreatedSwap struct {
	ID                 string
	Address            string
	RedeemScript       string
	AcceptZeroConf     bool
	ExpectedAmount     money.Money
	TimeoutBlockHeight uint32
	BIP21              string
}

// CreatedReverseSwap is returned to the caller of CreateReverseSwap.
type CreatedReverseSwap struct {
	ID                  string
	Invoice             string
	RedeemScript        string
	LockupAddress       string
	LockupTransactionID string
	OnchainAmount       money.Money
	TimeoutBlockHeight  uint32
}

// CreateSwap sets up a chain to Lightning swap: the caller funds an onchain
// HTLC, the backend pays the invoice and claims it.
func (s *Service) CreateSwap(ctx context.Context, pairID, side, invoice, refundPublicKey string) (*CreatedSwap, error) {
	existing, err := s.swapRepo.GetSwapByInvoice(ctx, invoice)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSwapWithInvoiceExists()
	}

	pair, orderSide, err := s.resolvePair(pairID, side)
	if err != nil {
		return nil, err
	}

	base, quote, err := models.SplitPairID(pairID)
	if err != nil {
		return nil, ErrPairNotSupported(pairID)
	}

	invoiceAmount, err := s.decodeInvoiceAmount(base, quote, orderSide, false, invoice)
	if err != nil {
		return nil, err
	}

	if err := s.verifyAmount(invoiceAmount, pair, base, quote, orderSide, false); err != nil {
		return nil, err
	}

	rate := swapRate(pair.Rate, orderSide, false)
	baseFee, percentageFee, err := s.fees.GetFees(ctx, pairID, rate, orderSide, invoiceAmount, false)
	if err != nil {
		return nil, err
	}

	expectedAmount := money.Money(math.Ceil(float64(invoiceAmount)*rate)) + baseFee + percentageFee

	chainCurrency, _ := s.cfg.Currency(models.ChainCurrency(base, quote, orderSide, false))
	acceptZeroConf := expectedAmount <= money.Money(chainCurrency.MaxZeroConfAmount)

	response, err := s.backend.CreateSwap(ctx, backend.CreateSwapRequest{
		PairID:            pairID,
		OrderSide:         orderSide.String(),
		Invoice:           invoice,
		RefundPublicKey:   refundPublicKey,
		TimeoutBlockDelta: chainCurrency.TimeoutBlockDelta,
	})
	if err != nil {
		return nil, err
	}

	if err := s.backend.ListenOnAddress(ctx, chainCurrency.Symbol, response.Address); err != nil {
		return nil, err
	}

	swap := &models.Swap{
		ID:                 randstr.String(swapIDLength),
		PairID:             pairID,
		OrderSide:          orderSide,
		Invoice:            invoice,
		LockupAddress:      response.Address,
		RedeemScript:       response.RedeemScript,
		TimeoutBlockHeight: response.TimeoutBlockHeight,
		AcceptZeroConf:     acceptZeroConf,
		ExpectedAmount:     expectedAmount,
		Fee:                percentageFee,
	}
	if err := s.swapRepo.AddSwap(ctx, swap); err != nil {
		if errors.Is(err, database.ErrDuplicateInvoice) {
			return nil, ErrSwapWithInvoiceExists()
		}

		return nil, err
	}

	log.WithFields(log.Fields{
		"id":   swap.ID,
		"pair": pairID,
		"side": orderSide,
	}).Info("Created new swap")

	return &CreatedSwap{
		ID:                 swap.ID,
		Address:            response.Address,
		RedeemScript:       response.RedeemScript,
		AcceptZeroConf:     acceptZeroConf,
		ExpectedAmount:     expectedAmount,
		TimeoutBlockHeight: response.TimeoutBlockHeight,
		BIP21:              paymentURI(chainCurrency.Symbol, response.Address, expectedAmount),
	}, nil
}

// CreateReverseSwap sets up a Lightning to chain swap: the backend locks up
// onchain coins the caller can claim once the returned invoice is paid.
func (s *Service) CreateReverseSwap(ctx context.Context, pairID, side, claimPublicKey string, invoiceAmount money.Money) (*CreatedReverseSwap, error) {
	if !s.allowReverseSwaps.Load() {
		return nil, ErrReverseSwapsDisabled()
	}

	pair, orderSide, err := s.resolvePair(pairID, side)
	if err != nil {
		return nil, err
	}

	base, quote, err := models.SplitPairID(pairID)
	if err != nil {
		return nil, ErrPairNotSupported(pairID)
	}

	if err := s.verifyAmount(invoiceAmount, pair, base, quote, orderSide, true); err != nil {
		return nil, err
	}

	rate := swapRate(pair.Rate, orderSide, true)
	baseFee, percentageFee, err := s.fees.GetFees(ctx, pairID, rate, orderSide, invoiceAmount, true)
	if err != nil {
		return nil, err
	}

	converted := money.Money(math.Floor(float64(invoiceAmount) * rate))
	fees := baseFee + percentageFee
	if converted <= fees {
		return nil, ErrBeneathMinimalAmount(invoiceAmount, 1)
	}
	onchainAmount := converted - fees

	chainCurrency, _ := s.cfg.Currency(models.ChainCurrency(base, quote, orderSide, true))

	response, err := s.backend.CreateReverseSwap(ctx, backend.CreateReverseSwapRequest{
		PairID:            pairID,
		OrderSide:         orderSide.String(),
		ClaimPublicKey:    claimPublicKey,
		InvoiceAmount:     invoiceAmount,
		OnchainAmount:     onchainAmount,
		TimeoutBlockDelta: chainCurrency.TimeoutBlockDelta,
	})
	if err != nil {
		return nil, err
	}

	reverseSwap := &models.ReverseSwap{
		ID:            randstr.String(swapIDLength),
		PairID:        pairID,
		OrderSide:     orderSide,
		Invoice:       response.Invoice,
		OnchainAmount: onchainAmount,
		Fee:           percentageFee,
		TransactionID: response.LockupTransactionID,
	}
	if err := s.reverseRepo.AddReverseSwap(ctx, reverseSwap); err != nil {
		if errors.Is(err, database.ErrDuplicateInvoice) {
			return nil, ErrSwapWithInvoiceExists()
		}

		return nil, err
	}

	log.WithFields(log.Fields{
		"id":   reverseSwap.ID,
		"pair": pairID,
		"side": orderSide,
	}).Info("Created new reverse swap")

	return &CreatedReverseSwap{
		ID:                  reverseSwap.ID,
		Invoice:             response.Invoice,
		RedeemScript:        response.RedeemScript,
		LockupAddress:       response.LockupAddress,
		LockupTransactionID: response.LockupTransactionID,
		OnchainAmount:       onchainAmount,
		TimeoutBlockHeight:  response.TimeoutBlockHeight,
	}, nil
}

func (s *Service) resolvePair(pairID, side string) (rates.PairInfo, models.OrderSide, error) {
	pair, ok := s.rates.Get(pairID)
	if !ok {
		return rates.PairInfo{}, "", ErrPairNotSupported(pairID)
	}

	orderSide := models.OrderSide(strings.ToLower(side))
	if !orderSide.IsValid() {
		return rates.PairInfo{}, "", ErrOrderSideNotSupported(side)
	}

	return pair, orderSide, nil
}

// verifyAmount checks a Lightning-leg amount against the pair limits. The
// limits are denominated in the base asset, so amounts measured on the
// quote leg are normalized with 1/rate first.
func (s *Service) verifyAmount(amount money.Money, pair rates.PairInfo, base, quote string, side models.OrderSide, isReverse bool) error {
	normalized := amount
	if models.LightningCurrency(base, quote, side, isReverse) == quote {
		normalized = money.Money(math.Round(float64(amount) / pair.Rate))
	}

	if normalized > pair.Limits.Maximal {
		return ErrExceedMaximalAmount(normalized, pair.Limits.Maximal)
	}
	if normalized < pair.Limits.Minimal {
		return ErrBeneathMinimalAmount(normalized, pair.Limits.Minimal)
	}

	return nil
}

// decodeInvoiceAmount decodes the Lightning invoice with the network
// parameters of the Lightning leg's currency and returns its amount.
func (s *Service) decodeInvoiceAmount(base, quote string, side models.OrderSide, isReverse bool, invoice string) (money.Money, error) {
	lightningCurrency, ok := s.cfg.Currency(models.LightningCurrency(base, quote, side, isReverse))
	if !ok {
		return 0, ErrCurrencyNotSupported(models.LightningCurrency(base, quote, side, isReverse))
	}

	params, err := invoiceParams(lightningCurrency)
	if err != nil {
		return 0, err
	}

	decoded, err := zpay32.Decode(invoice, params)
	if err != nil {
		return 0, fmt.Errorf("could not decode invoice: %w", err)
	}
	if decoded.MilliSat == nil {
		return 0, fmt.Errorf("invoice has no amount")
	}

	return money.Money(decoded.MilliSat.ToSatoshis()), nil
}

// swapRate converts an amount on the Lightning leg of a swap into the
// on-chain leg's unit. The pair rate is quoted as quote units per base
// unit, so the conversion inverts exactly when the Lightning leg is the
// quote asset.
func swapRate(pairRate float64, side models.OrderSide, isReverse bool) float64 {
	buy := side == models.OrderSideBuy
	if isReverse == buy {
		return 1 / pairRate
	}

	return pairRate
}

// invoiceParams maps a currency to the chain parameters used for invoice
// decoding. Non-Bitcoin chains reuse the Bitcoin parameters with their own
// bech32 prefix decided by the symbol.
func invoiceParams(currency config.CurrencyConfig) (*chaincfg.Params, error) {
	var params chaincfg.Params

	switch currency.Network {
	case "mainnet", "bitcoin":
		params = chaincfg.MainNetParams
	case "testnet":
		params = chaincfg.TestNet3Params
	case "regtest":
		params = chaincfg.RegressionNetParams
	case "simnet":
		params = chaincfg.SimNetParams
	default:
		return nil, fmt.Errorf("unsupported network: %s", currency.Network)
	}

	if currency.Symbol != "BTC" {
		params.Bech32HRPSegwit = strings.ToLower(currency.Symbol)
	}

	return &params, nil
}

var bip21Schemes = map[string]string{
	"BTC": "bitcoin",
	"LTC": "litecoin",
}

// paymentURI encodes address and amount as a BIP-21 URI.
func paymentURI(symbol, address string, amount money.Money) string {
	scheme, ok := bip21Schemes[symbol]
	if !ok {
		scheme = strings.ToLower(symbol)
	}

	return fmt.Sprintf("%s:%s?amount=%s", scheme, address, amount.ToCoins().String())
}
