// Package keyspace defines the Space type, weight functions, and sentinel
// errors for bounded string-space sampling and navigation.
package keyspace

import (
	"errors"
	"sort"
)

// Sentinel errors returned by keyspace operations.
var (
	// ErrEmptyAlphabet indicates an alphabet with no symbols.
	ErrEmptyAlphabet = errors.New("keyspace: alphabet must contain at least one symbol")

	// ErrBadRange indicates length bounds violating 0 ≤ bytesMin ≤ bytesMax.
	ErrBadRange = errors.New("keyspace: bounds must satisfy 0 <= bytesMin <= bytesMax")

	// ErrNegativeLength indicates a negative requested string length.
	ErrNegativeLength = errors.New("keyspace: length must be non-negative")

	// ErrNegativeCount indicates a negative requested string count.
	ErrNegativeCount = errors.New("keyspace: count must be non-negative")

	// ErrBadWeight indicates a weight function whose inverse-CDF scan never
	// selected a length (negative weights or a zero total).
	ErrBadWeight = errors.New("keyspace: weight function selected no length; weights must be non-negative with a positive total")

	// ErrLengthOutOfRange indicates an input string whose length falls
	// outside [bytesMin, bytesMax].
	ErrLengthOutOfRange = errors.New("keyspace: string length outside [bytesMin, bytesMax]")

	// ErrSymbolNotInAlphabet indicates an input string containing a symbol
	// that the space's alphabet does not define an order for.
	ErrSymbolNotInAlphabet = errors.New("keyspace: string contains a symbol not in the alphabet")

	// ErrAtUpperBound indicates the maximum string of the space; no
	// successor exists within the bytesMax bound.
	ErrAtUpperBound = errors.New("keyspace: at the maximum string of the space")

	// ErrAtLowerBound indicates the minimum string of the space; no
	// predecessor exists within the bytesMin bound.
	ErrAtLowerBound = errors.New("keyspace: at the minimum string of the space")
)

// WeightFunc assigns a non-negative relative weight to a candidate string
// length. Weights need not be normalized; RandomStrings divides by their sum
// over [bytesMin, bytesMax].
type WeightFunc func(length int) float64

// Space describes the finite, totally ordered set of all strings with length
// in [bytesMin, bytesMax] over a fixed symbol alphabet. It is immutable once
// built and safe for concurrent use.
//
// Ordering: at fixed length, strings compare symbol-by-symbol in alphabet
// order; a string of non-maximal length is immediately followed by itself
// plus the minimum symbol appended (e.g. over {a,b} with bounds 1..2 the
// full order is a, aa, ab, b, ba, bb).
type Space struct {
	bytesMin int
	bytesMax int
	symbols  []byte       // sorted ascending; defines the total order
	rank     map[byte]int // symbol → position in symbols
}

// New constructs a Space over the given alphabet and length bounds.
// The alphabet need not be pre-sorted; a private copy is sorted ascending to
// establish the symbol order, and the caller's slice is never retained.
// Returns ErrEmptyAlphabet if the alphabet has no symbols, and ErrBadRange
// unless 0 ≤ bytesMin ≤ bytesMax.
// Complexity: O(k log k) for k alphabet symbols.
func New(bytesMin, bytesMax int, alphabet []byte) (*Space, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if bytesMin < 0 || bytesMax < bytesMin {
		return nil, ErrBadRange
	}
	// Copy to prevent external mutation, then sort to fix the order.
	symbols := make([]byte, len(alphabet))
	copy(symbols, alphabet)
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	// Collapse duplicates so each symbol has exactly one rank.
	uniq := symbols[:1]
	for _, c := range symbols[1:] {
		if c != uniq[len(uniq)-1] {
			uniq = append(uniq, c)
		}
	}
	symbols = uniq

	rank := make(map[byte]int, len(symbols))
	for i, c := range symbols {
		rank[c] = i
	}

	return &Space{
		bytesMin: bytesMin,
		bytesMax: bytesMax,
		symbols:  symbols,
		rank:     rank,
	}, nil
}

// BytesMin returns the minimum string length of the space.
func (sp *Space) BytesMin() int { return sp.bytesMin }

// BytesMax returns the maximum string length of the space.
func (sp *Space) BytesMax() int { return sp.bytesMax }

// Alphabet returns a copy of the space's alphabet in sorted order.
func (sp *Space) Alphabet() []byte {
	out := make([]byte, len(sp.symbols))
	copy(out, sp.symbols)

	return out
}

// minSym returns the smallest symbol of the alphabet.
func (sp *Space) minSym() byte { return sp.symbols[0] }

// maxSym returns the largest symbol of the alphabet.
func (sp *Space) maxSym() byte { return sp.symbols[len(sp.symbols)-1] }

// checkMember verifies that s has a length inside the space's bounds and
// contains only alphabet symbols.
func (sp *Space) checkMember(s string) error {
	if len(s) < sp.bytesMin || len(s) > sp.bytesMax {
		return ErrLengthOutOfRange
	}
	for i := 0; i < len(s); i++ {
		if _, ok := sp.rank[s[i]]; !ok {
			return ErrSymbolNotInAlphabet
		}
	}

	return nil
}
