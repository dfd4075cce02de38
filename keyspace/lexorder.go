package keyspace

// nextSym returns the symbol one rank above c. Caller guarantees c is in the
// alphabet and below the maximum symbol.
func (sp *Space) nextSym(c byte) byte {
	return sp.symbols[sp.rank[c]+1]
}

// prevSym returns the symbol one rank below c. Caller guarantees c is in the
// alphabet and above the minimum symbol.
func (sp *Space) prevSym(c byte) byte {
	return sp.symbols[sp.rank[c]-1]
}

// Next returns the immediate successor of s in the space's order.
//
// A string below bytesMax is followed by itself with the minimum symbol
// appended (every longer extension of s sorts directly after s). A string at
// bytesMax rolls over like an odometer: scanning right to left, the first
// position below the maximum symbol is bumped one rank up and every cleared
// position to its right is dropped from the result, so the successor of a
// max-length string may be shorter — and, with bytesMin > 1, may even fall
// below bytesMin (e.g. abb → b over {a,b} with bounds 2..3; the cleared tail
// is removed, never wrapped to the minimum symbol).
//
// Returns ErrLengthOutOfRange or ErrSymbolNotInAlphabet for invalid input,
// and ErrAtUpperBound when s is the all-maximum string of length bytesMax.
// Complexity: O(len(s)).
func (sp *Space) Next(s string) (string, error) {
	if err := sp.checkMember(s); err != nil {
		return "", err
	}
	if len(s) < sp.bytesMax {
		out := make([]byte, len(s)+1)
		copy(out, s)
		out[len(s)] = sp.minSym()

		return string(out), nil
	}
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != sp.maxSym() {
			out := []byte(s[:i+1])
			out[i] = sp.nextSym(s[i])

			return string(out), nil
		}
		// Position holds the maximum symbol: drop it and carry left.
	}

	return "", ErrAtUpperBound
}

// Prev returns the immediate predecessor of s in the space's order.
//
// For a string below bytesMax ending above the minimum symbol, the last
// symbol is decremented and the result padded with the maximum symbol out to
// bytesMax — the largest element of the longer-string range that precedes s.
// For a string below bytesMax ending in the minimum symbol, the predecessor
// is the string that Next extended: the trailing minimum symbol is dropped
// when that leaves at least bytesMin symbols; otherwise the rightmost
// non-minimum symbol is decremented and everything to its right replaced and
// padded with the maximum symbol.
//
// For a string at bytesMax only the final position is ever touched:
// decremented when above the minimum symbol, removed otherwise. Unlike
// Next's cascading carry, the removal never propagates leftward, and at
// bytesMin == bytesMax it can return a string below bytesMin. That asymmetry
// is deliberate; see the package documentation.
//
// Returns ErrLengthOutOfRange or ErrSymbolNotInAlphabet for invalid input,
// and ErrAtLowerBound when s is the minimum symbol repeated bytesMin times.
// Complexity: O(bytesMax).
func (sp *Space) Prev(s string) (string, error) {
	if err := sp.checkMember(s); err != nil {
		return "", err
	}
	if len(s) == sp.bytesMin && sp.isAllMin(s) {
		return "", ErrAtLowerBound
	}

	if len(s) < sp.bytesMax {
		last := s[len(s)-1]
		if last != sp.minSym() {
			return sp.decrementAndPad(s, len(s)-1), nil
		}
		// Trailing minimum symbol: undo Next's append when possible.
		if len(s)-1 >= sp.bytesMin {
			return s[:len(s)-1], nil
		}
		// Cannot shorten below bytesMin; roll back at the rightmost
		// non-minimum position instead. One exists, or the all-minimum
		// check above would have fired.
		i := len(s) - 2
		for s[i] == sp.minSym() {
			i--
		}

		return sp.decrementAndPad(s, i), nil
	}

	last := s[len(s)-1]
	if last != sp.minSym() {
		out := []byte(s)
		out[len(out)-1] = sp.prevSym(last)

		return string(out), nil
	}

	return s[:len(s)-1], nil
}

// decrementAndPad decrements the symbol at position i and pads the result
// with the maximum symbol out to bytesMax, yielding the largest string of
// the space that is smaller than s[:i+1].
func (sp *Space) decrementAndPad(s string, i int) string {
	out := make([]byte, sp.bytesMax)
	copy(out, s[:i])
	out[i] = sp.prevSym(s[i])
	for j := i + 1; j < sp.bytesMax; j++ {
		out[j] = sp.maxSym()
	}

	return string(out)
}

// isAllMin reports whether every symbol of s is the minimum symbol.
func (sp *Space) isAllMin(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != sp.minSym() {
			return false
		}
	}

	return true
}
