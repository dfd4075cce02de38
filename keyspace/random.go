package keyspace

import (
	"math"
	"math/rand/v2"
)

// RandomString returns a string of exactly length symbols, each drawn
// independently and uniformly at random from the space's alphabet.
// The requested length is deliberately not clamped to [bytesMin, bytesMax]:
// the bounds constrain navigation and batch sampling, not a single draw.
// Returns ErrNegativeLength if length < 0.
// Complexity: O(length).
func (sp *Space) RandomString(length int) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = sp.symbols[rand.IntN(len(sp.symbols))]
	}

	return string(b), nil
}

// RandomStrings returns exactly count strings drawn with replacement from
// the space; duplicates are permitted.
//
// With a nil weight, each string's length is drawn uniformly from
// [bytesMin, bytesMax] inclusive. Otherwise weight assigns a relative
// non-negative weight to each candidate length; lengths are selected by
// inverse-CDF sampling over the normalized weights: draw r in [0,1) and pick
// the smallest L whose cumulative normalized weight reaches r. Symbols are
// then drawn uniformly as in RandomString.
//
// Returns ErrNegativeCount if count < 0, and ErrBadWeight if a malformed
// weight function (negative weights, zero total) leaves a draw with no
// selectable length.
// Complexity: O(count · bytesMax) symbol draws plus O(count · span) weight
// evaluations for span candidate lengths.
func (sp *Space) RandomStrings(count int, weight WeightFunc) ([]string, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	out := make([]string, 0, count)

	if weight == nil {
		span := sp.bytesMax - sp.bytesMin + 1
		for i := 0; i < count; i++ {
			s, err := sp.RandomString(sp.bytesMin + rand.IntN(span))
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}

		return out, nil
	}

	var total float64
	for l := sp.bytesMin; l <= sp.bytesMax; l++ {
		total += weight(l)
	}
	for i := 0; i < count; i++ {
		r := rand.Float64()
		cumulative := 0.0
		length, found := 0, false
		for l := sp.bytesMin; l <= sp.bytesMax; l++ {
			cumulative += weight(l) / total
			if r <= cumulative {
				length, found = l, true
				break
			}
		}
		if !found {
			return nil, ErrBadWeight
		}
		s, err := sp.RandomString(length)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// EqualWeight returns the weight function L ↦ |alphabet|^L. Because the
// space contains exactly |alphabet|^L strings of length L, weighting length
// selection by that count and then drawing symbols uniformly makes every
// string across the whole space equally probable under RandomStrings.
// Expect almost all draws at or near bytesMax: that is where almost all of
// the space lives.
func (sp *Space) EqualWeight() WeightFunc {
	size := float64(len(sp.symbols))

	return func(length int) float64 {
		return math.Pow(size, float64(length))
	}
}
