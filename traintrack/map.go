package traintrack

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ggt-tools/traintrack/alphabet"
	"github.com/ggt-tools/traintrack/ggraph"
	"github.com/ggt-tools/traintrack/matrixoracle"
	"github.com/ggt-tools/traintrack/word"
)

// Map is a self-map of a graph with involutive edges, given as an edge map
// E_+ -> reduced-paths(E) and extended to negative letters by
// f(inv(e)) = reverse(inv(f(e))) (spec.md §3).
type Map struct {
	mu     sync.RWMutex
	alpha  alphabet.Alphabet
	graph  *ggraph.Graph
	images map[alphabet.Letter]word.Word
	logger *slog.Logger
}

// NewMap builds a Map over graph's alphabet from images, a table of
// positive-letter names to image strings (parsed with word.Parse). Negative
// letters' images are derived automatically.
func NewMap(graph *ggraph.Graph, images map[string]string) (*Map, error) {
	alpha := graph.Alphabet()
	m := &Map{
		alpha:  alpha,
		graph:  graph,
		images: make(map[alphabet.Letter]word.Word, 2*alpha.Len()),
		logger: slog.New(discardHandler{}),
	}

	for _, l := range alpha.Positive() {
		name, err := alpha.Name(l)
		if err != nil {
			return nil, err
		}
		s, ok := images[name]
		if !ok {
			return nil, ErrUnknownLetter
		}
		w, err := word.Parse(alpha, s)
		if err != nil {
			return nil, err
		}
		if w.IsEmpty() {
			return nil, ErrEmptyImage
		}
		m.images[l] = w
	}

	for _, l := range alpha.Positive() {
		inv, err := alpha.Inverse(l)
		if err != nil {
			return nil, err
		}
		m.images[inv] = m.images[l].Inverse()
	}

	return m, nil
}

// SetLogger attaches a structured logger used at Debug level during
// Stabilize, FoldINP, and IsIwip. A nil logger restores the
// default discard logger.
func (m *Map) SetLogger(l *slog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l == nil {
		l = slog.New(discardHandler{})
	}
	m.logger = l
}

// Alphabet returns the map's alphabet.
func (m *Map) Alphabet() alphabet.Alphabet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.alpha
}

// Graph returns the graph m acts on.
func (m *Map) Graph() *ggraph.Graph {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.graph
}

// Image returns f(l) for any letter (positive or negative).
func (m *Map) Image(l alphabet.Letter) (word.Word, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.images[l]
	if !ok {
		return word.Word{}, ErrUnknownLetter
	}
	return w, nil
}

// Clone returns a deep copy of m, so Stabilize can mutate the copy without
// aliasing the caller's Map (spec.md §9 ownership note).
func (m *Map) Clone() *Map {
	m.mu.RLock()
	defer m.mu.RUnlock()
	images := make(map[alphabet.Letter]word.Word, len(m.images))
	for k, v := range m.images {
		images[k] = v
	}
	return &Map{
		alpha:  m.alpha,
		graph:  m.graph,
		images: images,
		logger: m.logger,
	}
}

// TransitionMatrix builds the r×r matrix M[a,b] = #occurrences of ±a in
// f(b), over positive letters a, b (spec.md §3).
func (m *Map) TransitionMatrix() (*matrixoracle.Dense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := m.alpha.Len()
	mat := matrixoracle.NewDense(n)
	for _, b := range m.alpha.Positive() {
		col, err := m.alpha.RankPositive(b)
		if err != nil {
			return nil, err
		}
		img := m.images[b]
		for _, l := range img.Letters() {
			row, err := m.alpha.RankPositive(l)
			if err != nil {
				return nil, err
			}
			mat.Add(row, col, 1)
		}
	}
	return mat, nil
}

// IsExpanding reports whether every edge's image grows without bound under
// iteration (spec.md §4.3.1): iteratively prune positive letters whose
// image has length > 1, then prune letters whose single-letter image
// points (possibly after following a chain of single-letter images) to an
// already-pruned letter; m is expanding iff every letter is eventually
// pruned.
func (m *Map) IsExpanding() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pruned := make(map[alphabet.Letter]bool, m.alpha.Len())
	for _, l := range m.alpha.Positive() {
		if m.images[l].Len() > 1 {
			pruned[l] = true
		}
	}

	for {
		changed := false
		for _, l := range m.alpha.Positive() {
			if pruned[l] {
				continue
			}
			img := m.images[l]
			if img.Len() != 1 {
				continue
			}
			single, err := img.At(0)
			if err != nil {
				return false, err
			}
			pos, err := m.alpha.ToPositive(single)
			if err != nil {
				return false, err
			}
			if pruned[pos] {
				pruned[l] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return len(pruned) == m.alpha.Len(), nil
}

// IsPerronFrobenius reports whether the transition matrix has a power with
// all strictly positive entries, decided by reachability closure on the
// support digraph (spec.md §4.3.2): fix letter a, grow its forward
// reachable set until closed and require it covers the alphabet, then
// require backward reachability from a also covers the alphabet.
func (m *Map) IsPerronFrobenius() (bool, error) {
	mat, err := m.TransitionMatrix()
	if err != nil {
		return false, err
	}
	n := mat.Size()
	if n == 0 {
		return false, nil
	}

	fwd := make([][]int, n)
	bwd := make([][]int, n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if mat.At(a, b) != 0 {
				// M[a,b] != 0: b's image contains a, so iterating from b
				// can reach a.
				fwd[b] = append(fwd[b], a)
				bwd[a] = append(bwd[a], b)
			}
		}
	}

	forward := bfsClosure(fwd, 0, n)
	backward := bfsClosure(bwd, 0, n)

	return forward == n && backward == n, nil
}

func bfsClosure(adj [][]int, start, n int) int {
	visited := make([]bool, n)
	visited[start] = true
	count := 1
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range adj[v] {
			if !visited[w] {
				visited[w] = true
				count++
				stack = append(stack, w)
			}
		}
	}
	return count
}

// discardHandler is a slog.Handler that drops every record, used as the
// default logger so Map is silent unless SetLogger is called.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
