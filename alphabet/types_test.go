package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggt-tools/traintrack/alphabet"
)

func TestNewFromSymbols_DefaultInverse(t *testing.T) {
	a, err := alphabet.New(alphabet.Symbols{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 3, a.Len())

	lb, err := a.Letter("b")
	require.NoError(t, err)
	assert.True(t, a.IsPositive(lb))

	inv, err := a.Inverse(lb)
	require.NoError(t, err)
	name, err := a.Name(inv)
	require.NoError(t, err)
	assert.Equal(t, "B", name)
	assert.True(t, a.IsNegative(inv))

	back, err := a.Inverse(inv)
	require.NoError(t, err)
	assert.Equal(t, lb, back)
}

func TestNewFromSymbols_UpperCaseDefault(t *testing.T) {
	a, err := alphabet.New(alphabet.Symbols{"A", "B"})
	require.NoError(t, err)
	lA, err := a.Letter("A")
	require.NoError(t, err)
	inv, err := a.Inverse(lA)
	require.NoError(t, err)
	name, err := a.Name(inv)
	require.NoError(t, err)
	assert.Equal(t, "a", name)
}

func TestNewFromSymbols_AmbiguousInverse(t *testing.T) {
	_, err := alphabet.New(alphabet.Symbols{"a", "B"})
	assert.ErrorIs(t, err, alphabet.ErrAmbiguousInverse)
}

func TestNewFromSymbols_ExplicitNeg(t *testing.T) {
	a, err := alphabet.New(alphabet.Symbols{"x", "y"}, alphabet.WithNeg([]string{"X", "Y"}))
	require.NoError(t, err)
	ly, err := a.Letter("y")
	require.NoError(t, err)
	inv, err := a.Inverse(ly)
	require.NoError(t, err)
	name, _ := a.Name(inv)
	assert.Equal(t, "Y", name)
}

func TestNewFromSymbols_ConflictingNeg(t *testing.T) {
	_, err := alphabet.New(alphabet.Symbols{"x", "y"}, alphabet.WithNeg([]string{"x", "Y"}))
	assert.ErrorIs(t, err, alphabet.ErrAlphabetConflict)

	_, err = alphabet.New(alphabet.Symbols{"x", "y"}, alphabet.WithNeg([]string{"X"}))
	assert.ErrorIs(t, err, alphabet.ErrAlphabetConflict)
}

func TestNewFromCount(t *testing.T) {
	a, err := alphabet.New(alphabet.Count(3), alphabet.WithName("g"))
	require.NoError(t, err)
	assert.Equal(t, 3, a.Len())
	l1, err := a.Letter("g1")
	require.NoError(t, err)
	inv, err := a.Inverse(l1)
	require.NoError(t, err)
	name, _ := a.Name(inv)
	assert.Equal(t, "G1", name)
}

func TestUnknownLetter(t *testing.T) {
	a, err := alphabet.New(alphabet.Symbols{"a", "b"})
	require.NoError(t, err)
	_, err = a.Letter("z")
	assert.ErrorIs(t, err, alphabet.ErrUnknownLetter)
}

func TestRankPositiveAndLess(t *testing.T) {
	a, err := alphabet.New(alphabet.Symbols{"a", "b", "c"})
	require.NoError(t, err)
	la := a.MustLetter("a")
	lB := a.MustLetter("B")

	rp, err := a.RankPositive(lB)
	require.NoError(t, err)
	assert.Equal(t, 1, rp)

	assert.True(t, a.Less(la, lB))
	assert.False(t, a.Less(lB, la))
}

func TestSub(t *testing.T) {
	a, err := alphabet.New(alphabet.Symbols{"a", "b", "c"})
	require.NoError(t, err)
	sub, err := a.Sub(2)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Len())
	assert.True(t, sub.Contains("a"))
	assert.True(t, sub.Contains("B"))
	assert.False(t, sub.Contains("c"))

	_, err = a.Sub(5)
	assert.ErrorIs(t, err, alphabet.ErrWrongLength)
}
