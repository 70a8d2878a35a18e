package traintrack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggt-tools/traintrack/alphabet"
	"github.com/ggt-tools/traintrack/ggraph"
	"github.com/ggt-tools/traintrack/traintrack"
)

// tribonacci builds the rose with edge map a->ab, b->ac, c->a
// (spec.md §8 scenario 4).
func tribonacci(t *testing.T) *traintrack.Map {
	t.Helper()
	a, err := alphabet.New(alphabet.Symbols{"a", "b", "c"})
	require.NoError(t, err)
	g, err := ggraph.NewRose(a)
	require.NoError(t, err)
	m, err := traintrack.NewMap(g, map[string]string{
		"a": "ab",
		"b": "ac",
		"c": "a",
	})
	require.NoError(t, err)
	return m
}

// reducible builds a->a, b->b (spec.md §8 scenario 5): every edge is fixed,
// so the map is not expanding at all.
func reducible(t *testing.T) *traintrack.Map {
	t.Helper()
	a, err := alphabet.New(alphabet.Symbols{"a", "b"})
	require.NoError(t, err)
	g, err := ggraph.NewRose(a)
	require.NoError(t, err)
	m, err := traintrack.NewMap(g, map[string]string{
		"a": "a",
		"b": "b",
	})
	require.NoError(t, err)
	return m
}

func TestTribonacciIsExpanding(t *testing.T) {
	m := tribonacci(t)
	expanding, err := m.IsExpanding()
	require.NoError(t, err)
	assert.True(t, expanding)
}

func TestReducibleIsNotExpanding(t *testing.T) {
	m := reducible(t)
	expanding, err := m.IsExpanding()
	require.NoError(t, err)
	assert.False(t, expanding)
}

func TestTribonacciIsPerronFrobenius(t *testing.T) {
	m := tribonacci(t)
	pf, err := m.IsPerronFrobenius()
	require.NoError(t, err)
	assert.True(t, pf)
}

func TestReducibleIsNotPerronFrobenius(t *testing.T) {
	m := reducible(t)
	pf, err := m.IsPerronFrobenius()
	require.NoError(t, err)
	assert.False(t, pf)
}

func TestTribonacciTransitionMatrix(t *testing.T) {
	m := tribonacci(t)
	mat, err := m.TransitionMatrix()
	require.NoError(t, err)
	assert.Equal(t, 3, mat.Size())
	// column a (index 0) = image "ab" -> a:1,b:1
	assert.Equal(t, 1.0, mat.At(0, 0))
	assert.Equal(t, 1.0, mat.At(1, 0))
	assert.Equal(t, 0.0, mat.At(2, 0))
}

func TestReducibleStratifiesIntoTwo(t *testing.T) {
	m := reducible(t)
	strata, err := m.Stratify()
	require.NoError(t, err)
	assert.Equal(t, 2, strata)
}

func TestTribonacciSingleStratum(t *testing.T) {
	m := tribonacci(t)
	strata, err := m.Stratify()
	require.NoError(t, err)
	assert.Equal(t, 1, strata)
}

func TestTribonacciGatesAtTheOnlyVertex(t *testing.T) {
	m := tribonacci(t)
	gates, err := m.Gates(0)
	require.NoError(t, err)
	assert.NotEmpty(t, gates)
}

func TestTribonacciIndivisibleNielsenPaths(t *testing.T) {
	m := tribonacci(t)
	// Must not error and must terminate (the real property under test --
	// the tribonacci map is train-track so this should run to completion
	// quickly either way).
	_, err := m.IndivisibleNielsenPaths()
	require.NoError(t, err)
}

func TestMapClonePreservesAlphabet(t *testing.T) {
	m := tribonacci(t)
	clone := m.Clone()
	assert.Equal(t, m.Alphabet().Len(), clone.Alphabet().Len())
}

func TestNewMapRejectsEmptyImage(t *testing.T) {
	a, err := alphabet.New(alphabet.Symbols{"a"})
	require.NoError(t, err)
	g, err := ggraph.NewRose(a)
	require.NoError(t, err)
	_, err = traintrack.NewMap(g, map[string]string{"a": ""})
	assert.ErrorIs(t, err, traintrack.ErrEmptyImage)
}
