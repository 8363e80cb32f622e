// Package swaperrors defines the error type shared by all daemon components.
// Every domain failure carries a stable "prefix.number" code so that API
// consumers can match on codes instead of message strings.
package swaperrors

import "fmt"

// Prefix groups error codes by the component they originate from.
type Prefix int

const (
	PrefixGeneral Prefix = iota
	PrefixAPI
	PrefixService
	PrefixBackend
	PrefixRates
)

// Error is a domain error with a stable numeric code.
type Error struct {
	Code    string
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// New builds an Error with the code "prefix.number".
func New(prefix Prefix, number int, message string) Error {
	return Error{
		Code:    fmt.Sprintf("%d.%d", prefix, number),
		Message: message,
	}
}

// Is matches errors by code, so wrapped instances with formatted messages
// still compare equal to their prototype.
func (e Error) Is(target error) bool {
	other, ok := target.(Error)
	if !ok {
		return false
	}

	return e.Code == other.Code
}
