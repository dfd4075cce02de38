// Package baseconv defines the digit alphabet and sentinel errors used by
// the base-conversion routines of github.com/katalvlaran/strkit.
package baseconv

import "errors"

// Sentinel errors returned by Convert.
var (
	// ErrInvalidBase indicates a base below 2 or above the alphabet size.
	ErrInvalidBase = errors.New("baseconv: base must be in 2..len(alphabet)")

	// ErrInvalidDigit indicates a symbol of the input value that is absent
	// from the digit alphabet.
	ErrInvalidDigit = errors.New("baseconv: symbol is not valid in the given alphabet")

	// ErrEmptyValue indicates an input value that is empty after trimming
	// whitespace and removing an optional leading minus sign.
	ErrEmptyValue = errors.New("baseconv: value is empty")

	// ErrEmptyAlphabet indicates an explicitly supplied alphabet with no symbols.
	ErrEmptyAlphabet = errors.New("baseconv: alphabet must contain at least one symbol")
)

// defaultAlphabet holds the digits 0-9 followed by the upper-case letters,
// covering every base up to 36. It is never handed out directly; use
// DefaultAlphabet to obtain a private copy.
const defaultAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultAlphabet returns a fresh copy of the default digit alphabet
// (0-9, A-Z). Each call allocates a new slice, so callers may reorder or
// extend the result without affecting other users of the default.
func DefaultAlphabet() []byte {
	return []byte(defaultAlphabet)
}
