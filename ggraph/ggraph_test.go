package ggraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggt-tools/traintrack/alphabet"
	"github.com/ggt-tools/traintrack/ggraph"
)

func roseABC(t *testing.T) (alphabet.Alphabet, *ggraph.Graph) {
	t.Helper()
	a, err := alphabet.New(alphabet.Symbols{"a", "b", "c"})
	require.NoError(t, err)
	g, err := ggraph.NewRose(a)
	require.NoError(t, err)
	return a, g
}

func TestNewRoseSingleVertex(t *testing.T) {
	_, g := roseABC(t)
	assert.Equal(t, 1, g.NumVertices())
}

func TestTurnsAtRoseVertex(t *testing.T) {
	a, g := roseABC(t)
	turns, err := g.Turns(0)
	require.NoError(t, err)
	// 6 outgoing germs (3 letters + 3 inverses) at the single vertex -> C(6,2)=15 turns.
	assert.Len(t, turns, 15)

	la := a.MustLetter("a")
	lA := a.MustLetter("A")
	found := false
	for _, tn := range turns {
		if tn.Equal(ggraph.Turn{A: la, B: lA}) {
			found = true
		}
	}
	assert.True(t, found, "the degenerate turn {a,A} must be enumerated")
}

func TestNewPathContinuityAndReduction(t *testing.T) {
	a, g := roseABC(t)
	la := a.MustLetter("a")
	lb := a.MustLetter("b")
	lA := a.MustLetter("A")

	p, err := g.NewPath([]alphabet.Letter{la, lb, lA})
	require.NoError(t, err)
	// a b A on the rose: no cancellation (a,b not inverse; b,A not inverse).
	assert.Equal(t, 3, p.Len())

	p2, err := g.NewPath([]alphabet.Letter{la, lA, lb})
	require.NoError(t, err)
	assert.Equal(t, 1, p2.Len())
	first, err := p2.First()
	require.NoError(t, err)
	assert.Equal(t, lb, first)
}

func TestReversePath(t *testing.T) {
	a, g := roseABC(t)
	la := a.MustLetter("a")
	lb := a.MustLetter("b")

	p, err := g.NewPath([]alphabet.Letter{la, lb})
	require.NoError(t, err)
	rev, err := g.ReversePath(p)
	require.NoError(t, err)

	lB := a.MustLetter("B")
	lA := a.MustLetter("A")
	assert.Equal(t, []alphabet.Letter{lB, lA}, rev.Letters())
}

func TestCommonPrefixLen(t *testing.T) {
	a, g := roseABC(t)
	la, lb, lc := a.MustLetter("a"), a.MustLetter("b"), a.MustLetter("c")
	p, err := g.NewPath([]alphabet.Letter{la, lb, lc})
	require.NoError(t, err)
	q, err := g.NewPath([]alphabet.Letter{la, lb})
	require.NoError(t, err)
	assert.Equal(t, 2, ggraph.CommonPrefixLen(p, q))
}

func TestLiesInAFreeFactorFalseOnRose(t *testing.T) {
	a, g := roseABC(t)
	la := a.MustLetter("a")
	loop, err := g.NewPath([]alphabet.Letter{la})
	require.NoError(t, err)

	lies, err := g.LiesInAFreeFactor(loop)
	require.NoError(t, err)
	// On a 3-petal rose, cutting one petal still leaves the other two
	// petals reachable from the single vertex -- the loop does NOT lie in
	// a proper free factor by this reduction because no vertex becomes
	// unreachable (there is only one vertex).
	assert.False(t, lies)
}

func TestBadTurnMismatchedInitialVertex(t *testing.T) {
	a, err := alphabet.New(alphabet.Symbols{"a", "b"})
	require.NoError(t, err)
	g, err := ggraph.New(a, map[string]ggraph.Endpoints{
		"a": {Initial: 0, Terminal: 1},
		"b": {Initial: 1, Terminal: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumVertices())

	la := a.MustLetter("a")
	lb := a.MustLetter("b")
	_, err = g.Fold([]alphabet.Letter{la, lb}, ggraph.EmptyPath())
	assert.ErrorIs(t, err, ggraph.ErrBadTurn)
}
