// Package keyspace_test contains unit tests for Space construction and the
// Next/Prev navigation, including full enumeration walks of small spaces,
// local invertibility, and the deliberate carry/shrink asymmetries.
package keyspace_test

import (
	"testing"

	"github.com/katalvlaran/strkit/keyspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Construction and validation.
// ------------------------------------------------------------------------

func TestNew_EmptyAlphabet(t *testing.T) {
	_, err := keyspace.New(1, 2, nil)
	assert.ErrorIs(t, err, keyspace.ErrEmptyAlphabet)

	_, err = keyspace.New(1, 2, []byte{})
	assert.ErrorIs(t, err, keyspace.ErrEmptyAlphabet)
}

func TestNew_BadRange(t *testing.T) {
	_, err := keyspace.New(-1, 2, []byte("ab"))
	assert.ErrorIs(t, err, keyspace.ErrBadRange, "negative bytesMin")

	_, err = keyspace.New(3, 2, []byte("ab"))
	assert.ErrorIs(t, err, keyspace.ErrBadRange, "bytesMax below bytesMin")
}

func TestNew_SortsAndCopiesAlphabet(t *testing.T) {
	raw := []byte("cba")
	sp, err := keyspace.New(1, 2, raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), sp.Alphabet(), "alphabet must be sorted ascending")

	raw[0] = 'z' // mutating the caller's slice must not reach the Space
	assert.Equal(t, []byte("abc"), sp.Alphabet())

	got := sp.Alphabet()
	got[0] = 'z' // nor may mutating the accessor's result
	assert.Equal(t, []byte("abc"), sp.Alphabet())
}

func TestNew_CollapsesDuplicateSymbols(t *testing.T) {
	sp, err := keyspace.New(1, 1, []byte("aabba"))
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), sp.Alphabet())
}

// ------------------------------------------------------------------------
// 2. Next: append, carry, bounds.
// ------------------------------------------------------------------------

func TestNext_AppendsMinimumBelowMax(t *testing.T) {
	sp, err := keyspace.New(1, 2, []byte("abcdefghijklmnopqrstuvwxyz"))
	require.NoError(t, err)

	next, err := sp.Next("a")
	require.NoError(t, err)
	assert.Equal(t, "aa", next)

	next, err = sp.Next("q")
	require.NoError(t, err)
	assert.Equal(t, "qa", next)
}

func TestNext_CarryDropsClearedPositions(t *testing.T) {
	sp, err := keyspace.New(1, 2, []byte("abcdefghijklmnopqrstuvwxyz"))
	require.NoError(t, err)

	// az: position 1 is the maximum, cleared; position 0 bumps a → b.
	next, err := sp.Next("az")
	require.NoError(t, err)
	assert.Equal(t, "b", next, "cleared position is dropped, not wrapped")

	// A cascading carry clears several positions at once.
	sp3, err := keyspace.New(1, 3, []byte("abcdefghijklmnopqrstuvwxyz"))
	require.NoError(t, err)
	next, err = sp3.Next("azz")
	require.NoError(t, err)
	assert.Equal(t, "b", next)
}

func TestNext_AtUpperBound(t *testing.T) {
	sp, err := keyspace.New(1, 2, []byte("abcdefghijklmnopqrstuvwxyz"))
	require.NoError(t, err)

	_, err = sp.Next("zz")
	assert.ErrorIs(t, err, keyspace.ErrAtUpperBound)
}

func TestNext_InputValidation(t *testing.T) {
	sp, err := keyspace.New(2, 3, []byte("ab"))
	require.NoError(t, err)

	_, err = sp.Next("a")
	assert.ErrorIs(t, err, keyspace.ErrLengthOutOfRange, "below bytesMin")

	_, err = sp.Next("aaaa")
	assert.ErrorIs(t, err, keyspace.ErrLengthOutOfRange, "above bytesMax")

	_, err = sp.Next("ax")
	assert.ErrorIs(t, err, keyspace.ErrSymbolNotInAlphabet)
}

// ------------------------------------------------------------------------
// 3. Prev: decrement, pad, removal, bounds.
// ------------------------------------------------------------------------

func TestPrev_DecrementsAndPadsBelowMax(t *testing.T) {
	sp, err := keyspace.New(1, 3, []byte("abcdefghijklmnopqrstuvwxyz"))
	require.NoError(t, err)

	// b rolls back into the largest string of the a-subtree.
	prev, err := sp.Prev("b")
	require.NoError(t, err)
	assert.Equal(t, "azz", prev)
}

func TestPrev_DropsTrailingMinimum(t *testing.T) {
	sp, err := keyspace.New(1, 3, []byte("ab"))
	require.NoError(t, err)

	// ba is b with the minimum appended; its predecessor is b itself.
	prev, err := sp.Prev("ba")
	require.NoError(t, err)
	assert.Equal(t, "b", prev)
}

func TestPrev_RollsBackAtBytesMin(t *testing.T) {
	// ba sits at bytesMin and ends in the minimum symbol; dropping it would
	// leave too short a string, so the rollback decrements position 0 and
	// pads: the predecessor is the last string of the ab-subtree.
	sp, err := keyspace.New(2, 3, []byte("ab"))
	require.NoError(t, err)

	prev, err := sp.Prev("ba")
	require.NoError(t, err)
	assert.Equal(t, "abb", prev)
}

func TestPrev_MaxLengthTouchesOnlyLastPosition(t *testing.T) {
	sp, err := keyspace.New(1, 2, []byte("abcdefghijklmnopqrstuvwxyz"))
	require.NoError(t, err)

	prev, err := sp.Prev("bb")
	require.NoError(t, err)
	assert.Equal(t, "ba", prev, "last symbol decremented in place")

	prev, err = sp.Prev("ba")
	require.NoError(t, err)
	assert.Equal(t, "b", prev, "last symbol removed, no cascade")
}

func TestPrev_AtLowerBound(t *testing.T) {
	sp, err := keyspace.New(1, 2, []byte("ab"))
	require.NoError(t, err)
	_, err = sp.Prev("a")
	assert.ErrorIs(t, err, keyspace.ErrAtLowerBound)

	sp2, err := keyspace.New(2, 3, []byte("ab"))
	require.NoError(t, err)
	_, err = sp2.Prev("aa")
	assert.ErrorIs(t, err, keyspace.ErrAtLowerBound)
}

func TestPrev_InputValidation(t *testing.T) {
	sp, err := keyspace.New(1, 2, []byte("ab"))
	require.NoError(t, err)

	_, err = sp.Prev("aaa")
	assert.ErrorIs(t, err, keyspace.ErrLengthOutOfRange)

	_, err = sp.Prev("ax")
	assert.ErrorIs(t, err, keyspace.ErrSymbolNotInAlphabet)
}

// ------------------------------------------------------------------------
// 4. Full enumeration walks: the order is exactly as documented, and Prev
//    retraces Next step for step.
// ------------------------------------------------------------------------

// enumerate walks the whole space forward from its minimum string.
func enumerate(t *testing.T, sp *keyspace.Space, start string) []string {
	t.Helper()
	all := []string{start}
	for {
		next, err := sp.Next(all[len(all)-1])
		if err != nil {
			require.ErrorIs(t, err, keyspace.ErrAtUpperBound)

			return all
		}
		all = append(all, next)
	}
}

func TestWalk_TinySpaceExactOrder(t *testing.T) {
	sp, err := keyspace.New(1, 2, []byte("ab"))
	require.NoError(t, err)

	all := enumerate(t, sp, "a")
	assert.Equal(t, []string{"a", "aa", "ab", "b", "ba", "bb"}, all)
}

func TestWalk_ForwardThenBackward(t *testing.T) {
	sp, err := keyspace.New(1, 3, []byte("abc"))
	require.NoError(t, err)

	all := enumerate(t, sp, "a")
	assert.Len(t, all, 3+9+27, "3 + 3² + 3³ strings in the space")

	// Every adjacent pair must be linked both ways.
	for i := 1; i < len(all); i++ {
		prev, err := sp.Prev(all[i])
		require.NoError(t, err, "Prev(%q)", all[i])
		assert.Equal(t, all[i-1], prev, "Prev(%q)", all[i])
	}
	_, err = sp.Prev(all[0])
	assert.ErrorIs(t, err, keyspace.ErrAtLowerBound)
}

func TestWalk_ZeroMinIncludesEmptyString(t *testing.T) {
	sp, err := keyspace.New(0, 1, []byte("ab"))
	require.NoError(t, err)

	all := enumerate(t, sp, "")
	assert.Equal(t, []string{"", "a", "b"}, all)

	prev, err := sp.Prev("a")
	require.NoError(t, err)
	assert.Equal(t, "", prev)

	_, err = sp.Prev("")
	assert.ErrorIs(t, err, keyspace.ErrAtLowerBound)
}

// ------------------------------------------------------------------------
// 5. Documented asymmetries: carry/shrink transitions that escape the
//    length bounds and are therefore not invertible. These pin observed
//    behavior; a change here is a semantic break, not a cleanup.
// ------------------------------------------------------------------------

func TestAsymmetry_CarryCanShrinkBelowBytesMin(t *testing.T) {
	sp, err := keyspace.New(2, 3, []byte("ab"))
	require.NoError(t, err)

	// The cascading carry clears both trailing positions and returns a
	// one-symbol string even though bytesMin is 2.
	next, err := sp.Next("abb")
	require.NoError(t, err)
	assert.Equal(t, "b", next)

	// The result is outside the space, so the step cannot be walked back.
	_, err = sp.Prev(next)
	assert.ErrorIs(t, err, keyspace.ErrLengthOutOfRange)
}

func TestAsymmetry_FixedLengthSpaceShrinks(t *testing.T) {
	sp, err := keyspace.New(2, 2, []byte("ab"))
	require.NoError(t, err)

	// Next's carry drops the cleared tail rather than wrapping it.
	next, err := sp.Next("ab")
	require.NoError(t, err)
	assert.Equal(t, "b", next)

	// Prev's single removal shrinks the same way.
	prev, err := sp.Prev("ba")
	require.NoError(t, err)
	assert.Equal(t, "b", prev)

	_, err = sp.Next(next)
	assert.ErrorIs(t, err, keyspace.ErrLengthOutOfRange)
}
