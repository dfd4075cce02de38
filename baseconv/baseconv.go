package baseconv

import (
	"math/big"
	"strings"
)

// Convert re-encodes the integer valueFrom, written in base baseFrom over the
// given digit alphabet, into its representation in base baseTo over the same
// alphabet.
//
// The alphabet's position defines each symbol's digit value: alphabet[0] is
// zero, alphabet[1] is one, and so on. Passing a nil alphabet selects
// DefaultAlphabet (0-9, A-Z). valueFrom is trimmed of surrounding whitespace;
// a single leading '-' marks the value negative and is re-applied to the
// result. The value is treated as big-endian (most significant symbol first).
//
// A zero magnitude always encodes as the single zero symbol alphabet[0],
// never as an empty string, and never carries a sign.
//
// Returns ErrEmptyAlphabet for an explicit empty alphabet, ErrInvalidBase if
// either base is below 2 or exceeds the alphabet size, ErrEmptyValue if
// nothing remains after trimming and sign removal, and ErrInvalidDigit if a
// symbol of valueFrom is absent from the alphabet.
//
// Complexity: O(n·m) time for n input and m output symbols (big-integer
// schoolbook arithmetic), O(n+m) memory. Pure function, no side effects.
func Convert(valueFrom string, baseFrom, baseTo int, alphabet []byte) (string, error) {
	if alphabet == nil {
		alphabet = DefaultAlphabet()
	}
	if len(alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}
	// Bases of 0 or 1 have no positional encoding; the divide loop below
	// would never terminate. Reject them together with oversized bases.
	if baseFrom < 2 || baseFrom > len(alphabet) || baseTo < 2 || baseTo > len(alphabet) {
		return "", ErrInvalidBase
	}

	valueFrom = strings.TrimSpace(valueFrom)
	negative := strings.HasPrefix(valueFrom, "-")
	if negative {
		valueFrom = valueFrom[1:]
	}
	if valueFrom == "" {
		return "", ErrEmptyValue
	}

	// Digit value per symbol; first occurrence wins on duplicates.
	digit := make(map[byte]int, len(alphabet))
	for i := len(alphabet) - 1; i >= 0; i-- {
		digit[alphabet[i]] = i
	}

	// Decode big-endian: acc = acc*baseFrom + digit for each symbol.
	acc := new(big.Int)
	from := big.NewInt(int64(baseFrom))
	for i := 0; i < len(valueFrom); i++ {
		d, ok := digit[valueFrom[i]]
		if !ok || d >= baseFrom {
			return "", ErrInvalidDigit
		}
		acc.Mul(acc, from)
		acc.Add(acc, big.NewInt(int64(d)))
	}

	// Zero has a single canonical spelling regardless of sign.
	if acc.Sign() == 0 {
		return string([]byte{alphabet[0]}), nil
	}

	// Encode by repeated division; remainders arrive little-endian and are
	// prepended to yield the big-endian result.
	to := big.NewInt(int64(baseTo))
	rem := new(big.Int)
	out := make([]byte, 0, 16)
	for acc.Sign() > 0 {
		acc.DivMod(acc, to, rem)
		out = append(out, alphabet[rem.Int64()])
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	if negative {
		return "-" + string(out), nil
	}

	return string(out), nil
}
