package rates

import (
	"fmt"

	"github.com/hatchswap/hatchswapd/swaperrors"
)

func ErrCouldNotGetRate(pairID string) swaperrors.Error {
	return swaperrors.New(
		swaperrors.PrefixRates,
		0,
		fmt.Sprintf("could not get rate for pair: %s", pairID),
	)
}
