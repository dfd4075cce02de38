// Package baseconv converts signed integers between arbitrary positional
// bases using a caller-supplied digit alphabet.
//
// Overview:
//
//   - Convert re-encodes a number written as a string of alphabet symbols
//     from one radix into another, e.g. "FF" base 16 → "255" base 10.
//   - The alphabet defines both the digit set and each symbol's numeric
//     value by position; any ordered set of distinct byte symbols works.
//   - Negative values carry a single leading '-'; the sign survives the
//     round trip untouched.
//   - Magnitudes are accumulated in a big.Int, so inputs of any length
//     convert without overflow.
//
// When to use:
//
//   - Compact identifiers: render database counters in base 36 or base 62.
//   - Parsing values from legacy systems that use custom digit sets.
//   - Any place strconv's fixed 2..36 digit set (0-9, a-z) is too rigid.
//
// Complexity:
//
//   - Time:  O(n·m) for n input and m output symbols (schoolbook big-integer
//     multiply/divide per symbol).
//   - Space: O(n + m).
//
// Errors (sentinel):
//
//   - ErrInvalidBase:     baseFrom or baseTo is below 2 or above len(alphabet).
//   - ErrInvalidDigit:    a symbol of the value is absent from the alphabet
//     or is not a valid digit in baseFrom.
//   - ErrEmptyValue:      the value is empty after trimming whitespace and
//     removing an optional leading minus sign.
//   - ErrEmptyAlphabet:   an explicitly supplied alphabet has no symbols.
//
// Example usage:
//
//	out, err := baseconv.Convert("FF", 16, 10, nil) // default 0-9A-Z alphabet
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // "255"
package baseconv
