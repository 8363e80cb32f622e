package service

import (
	"fmt"

	"github.com/hatchswap/hatchswapd/money"
	"github.com/hatchswap/hatchswapd/swaperrors"
)

func ErrCurrencyNotSupported(currency string) swaperrors.Error {
	return swaperrors.New(
		swaperrors.PrefixService, 0,
		fmt.Sprintf("currency is not supported by backend: %s", currency),
	)
}

func ErrPairNotSupported(pairID string) swaperrors.Error {
	return swaperrors.New(
		swaperrors.PrefixService, 1,
		fmt.Sprintf("pair is not supported: %s", pairID),
	)
}

func ErrOrderSideNotSupported(side string) swaperrors.Error {
	return swaperrors.New(
		swaperrors.PrefixService, 2,
		fmt.Sprintf("order side not supported: %s", side),
	)
}

func ErrExceedMaximalAmount(amount, maximal money.Money) swaperrors.Error {
	return swaperrors.New(
		swaperrors.PrefixService, 3,
		fmt.Sprintf("%d exceeds maximal of %d", amount, maximal),
	)
}

func ErrBeneathMinimalAmount(amount, minimal money.Money) swaperrors.Error {
	return swaperrors.New(
		swaperrors.PrefixService, 4,
		fmt.Sprintf("%d is beneath minimal of %d", amount, minimal),
	)
}

func ErrSwapWithInvoiceExists() swaperrors.Error {
	return swaperrors.New(
		swaperrors.PrefixService, 5,
		"a swap with this invoice exists already",
	)
}

func ErrReverseSwapsDisabled() swaperrors.Error {
	return swaperrors.New(
		swaperrors.PrefixService, 6,
		"reverse swaps are disabled",
	)
}

func ErrTransactionNotFinal() swaperrors.Error {
	return swaperrors.New(
		swaperrors.PrefixService, 7,
		"transaction is not final yet",
	)
}
