package backend

import (
	"fmt"

	"github.com/hatchswap/hatchswapd/swaperrors"
)

// ErrCouldNotFindFiles is fatal: without the credential files the daemon
// cannot start.
func ErrCouldNotFindFiles(file string) swaperrors.Error {
	return swaperrors.New(
		swaperrors.PrefixBackend, 0,
		fmt.Sprintf("could not find required files for backend: %s", file),
	)
}

// CallError is the failure of a single unary call. Message is the error
// string reported by the backend, which the service layer matches against
// for recognized conditions.
type CallError struct {
	StatusCode int
	Message    string
}

func (e *CallError) Error() string {
	return e.Message
}
