package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggt-tools/traintrack/alphabet"
	"github.com/ggt-tools/traintrack/word"
)

func abcAlphabet(t *testing.T) alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New(alphabet.Symbols{"a", "b", "c"})
	require.NoError(t, err)
	return a
}

// Scenario 1 of spec.md §8: reduction.
func TestReduction(t *testing.T) {
	a := abcAlphabet(t)
	w, err := word.Parse(a, "abcAab")
	require.NoError(t, err)
	assert.Equal(t, "abcb", w.String())
}

// Scenario 2: free reduction of product.
func TestProduct(t *testing.T) {
	a := abcAlphabet(t)
	u, err := word.Parse(a, "abAc")
	require.NoError(t, err)
	v, err := word.Parse(a, "Caa")
	require.NoError(t, err)

	p, err := u.Product(v)
	require.NoError(t, err)
	assert.Equal(t, "aba", p.String())
}

// Scenario 3: inverse.
func TestInverse(t *testing.T) {
	a := abcAlphabet(t)
	u, err := word.Parse(a, "abAc")
	require.NoError(t, err)
	assert.Equal(t, "CaBA", u.Inverse().String())
}

func TestProductInverseIsIdentity(t *testing.T) {
	a := abcAlphabet(t)
	for _, s := range []string{"abcAab", "aBcbA", "", "a", "ccc"} {
		w, err := word.Parse(a, s)
		require.NoError(t, err)
		inv := w.Inverse()

		p1, err := w.Product(inv)
		require.NoError(t, err)
		assert.True(t, p1.IsEmpty(), "w * inv(w) should be identity for %q", s)

		p2, err := inv.Product(w)
		require.NoError(t, err)
		assert.True(t, p2.IsEmpty(), "inv(w) * w should be identity for %q", s)
	}
}

func TestConstructAlreadyReducedIsUnchanged(t *testing.T) {
	a := abcAlphabet(t)
	w, err := word.Parse(a, "abcb")
	require.NoError(t, err)
	assert.Equal(t, "abcb", w.String())
	assert.Equal(t, 4, w.Len())
}

func TestUnknownLetter(t *testing.T) {
	a := abcAlphabet(t)
	_, err := word.Parse(a, "abz")
	assert.ErrorIs(t, err, word.ErrUnknownLetter)
}

func TestCommonPrefixLen(t *testing.T) {
	a := abcAlphabet(t)
	u, err := word.Parse(a, "aBaa")
	require.NoError(t, err)
	v, err := word.Parse(a, "aBcb")
	require.NoError(t, err)
	assert.Equal(t, 2, u.CommonPrefixLen(v))

	// invariant: common_prefix_length(u,v) <= min(len(u),len(v))
	assert.LessOrEqual(t, u.CommonPrefixLen(v), min(u.Len(), v.Len()))
}

func TestIsPrefixHasPrefix(t *testing.T) {
	a := abcAlphabet(t)
	u, _ := word.Parse(a, "aBaa")
	v, _ := word.Parse(a, "aBcb")
	w, _ := word.Parse(a, "aBa")

	assert.False(t, u.IsPrefix(v))
	assert.False(t, u.IsPrefix(w))
	assert.True(t, w.IsPrefix(u))
	assert.True(t, u.IsPrefix(u))

	assert.False(t, v.HasPrefix(u))
	assert.False(t, w.HasPrefix(u))
	assert.True(t, u.HasPrefix(w))
	assert.True(t, u.HasPrefix(u))
}

func TestSliceForwardAndReverse(t *testing.T) {
	// "abAAbaaBBBabA" is already reduced and uses only {a,b,A,B}; build that two-letter alphabet.
	big, err := alphabet.New(alphabet.Symbols{"a", "b"})
	require.NoError(t, err)
	w, err := word.Parse(big, "abAAbaaBBBabA")
	require.NoError(t, err)

	sub, err := w.Slice(1, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "bAAb", sub.String())

	rev, err := w.Slice(word.NoIndex, word.NoIndex, -1)
	require.NoError(t, err)
	assert.Equal(t, w.Len(), rev.Len())

	_, err = w.Slice(0, 3, 2)
	assert.ErrorIs(t, err, word.ErrUnsupportedStep)
}

func TestSliceEmptyReverse(t *testing.T) {
	a := abcAlphabet(t)
	w, err := word.Parse(a, "")
	require.NoError(t, err)
	rev, err := w.Slice(word.NoIndex, word.NoIndex, -1)
	require.NoError(t, err)
	assert.True(t, rev.IsEmpty())
}

func TestLess(t *testing.T) {
	a := abcAlphabet(t)
	short, _ := word.Parse(a, "a")
	long, _ := word.Parse(a, "ab")
	assert.True(t, short.Less(long))
	assert.False(t, long.Less(short))
}

func TestAlphabetMismatch(t *testing.T) {
	a := abcAlphabet(t)
	b, err := alphabet.New(alphabet.Symbols{"x", "y"})
	require.NoError(t, err)

	wa, _ := word.Parse(a, "a")
	wb, _ := word.Parse(b, "x")

	_, err = wa.Product(wb)
	assert.ErrorIs(t, err, word.ErrAlphabetMismatch)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
