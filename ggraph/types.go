package ggraph

import (
	"sync"

	"github.com/ggt-tools/traintrack/alphabet"
)

// Endpoints records the initial and terminal vertex of a positive letter's
// edge. The paired negative letter's endpoints are derived automatically:
// initial(inv(e)) = terminal(e), terminal(inv(e)) = initial(e) (spec.md §3
// invariant).
type Endpoints struct {
	Initial  int
	Terminal int
}

// config accumulates Option values before New resolves the graph.
type config struct {
	vertexCount int
	name        string
}

// Option configures Graph construction, mirroring core.GraphOption.
type Option func(*config)

// WithVertexCount fixes the vertex count explicitly rather than inferring it
// from the maximum endpoint seen in the Endpoints map.
func WithVertexCount(n int) Option {
	return func(c *config) { c.vertexCount = n }
}

// WithName attaches a debug name to the graph.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// Graph is a finite graph whose edge set -- the positive and negative
// letters of an alphabet.Alphabet -- is closed under the alphabet's
// involution. It is the object a traintrack.Map acts on.
//
// Graph guards its mutable endpoint table with a single RWMutex: unlike the
// teacher's split vertex/edge locks, a train-track graph's vertex and edge
// tables are always touched together (folds rewrite both), so
// one lock is simpler and sufficient at this size.
type Graph struct {
	mu        sync.RWMutex
	alpha     alphabet.Alphabet
	initial   map[alphabet.Letter]int
	terminal  map[alphabet.Letter]int
	vertices  int
	name      string
}

// NewRose builds the single-vertex graph (a "rose") over alpha: every
// letter is a loop at vertex 0. This is the graph underlying every worked
// example of spec.md §8 and the common starting point for a train-track
// map of a free group.
func NewRose(alpha alphabet.Alphabet, opts ...Option) (*Graph, error) {
	endpoints := make(map[string]Endpoints, alpha.Len())
	for _, l := range alpha.Positive() {
		name, err := alpha.Name(l)
		if err != nil {
			return nil, err
		}
		endpoints[name] = Endpoints{Initial: 0, Terminal: 0}
	}
	return New(alpha, endpoints, append([]Option{WithVertexCount(1)}, opts...)...)
}

// New builds a Graph over alpha from a table of positive-letter endpoints.
// endpoints must have exactly one entry per positive letter of alpha.
func New(alpha alphabet.Alphabet, endpoints map[string]Endpoints, opts ...Option) (*Graph, error) {
	c := config{vertexCount: -1}
	for _, opt := range opts {
		opt(&c)
	}

	initial := make(map[alphabet.Letter]int, 2*alpha.Len())
	terminal := make(map[alphabet.Letter]int, 2*alpha.Len())
	maxVertex := -1

	for _, l := range alpha.Positive() {
		name, err := alpha.Name(l)
		if err != nil {
			return nil, err
		}
		ep, ok := endpoints[name]
		if !ok {
			return nil, ErrInconsistentInvolution
		}
		inv, err := alpha.Inverse(l)
		if err != nil {
			return nil, err
		}
		initial[l], terminal[l] = ep.Initial, ep.Terminal
		initial[inv], terminal[inv] = ep.Terminal, ep.Initial
		if ep.Initial > maxVertex {
			maxVertex = ep.Initial
		}
		if ep.Terminal > maxVertex {
			maxVertex = ep.Terminal
		}
	}

	vertices := c.vertexCount
	if vertices < 0 {
		vertices = maxVertex + 1
	}
	if vertices < maxVertex+1 {
		return nil, ErrInconsistentInvolution
	}

	return &Graph{
		alpha:    alpha,
		initial:  initial,
		terminal: terminal,
		vertices: vertices,
		name:     c.name,
	}, nil
}

// Alphabet returns the edge alphabet of g.
func (g *Graph) Alphabet() alphabet.Alphabet {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.alpha
}

// NumVertices returns the number of vertices of g.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.vertices
}

// Initial returns the initial vertex of edge l.
func (g *Graph) Initial(l alphabet.Letter) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.initial[l]
	if !ok {
		return -1, ErrUnknownEdge
	}
	return v, nil
}

// Terminal returns the terminal vertex of edge l.
func (g *Graph) Terminal(l alphabet.Letter) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.terminal[l]
	if !ok {
		return -1, ErrUnknownEdge
	}
	return v, nil
}

// EdgesAt returns the outgoing letters (germs) at vertex v, in alphabet
// order.
func (g *Graph) EdgesAt(v int) ([]alphabet.Letter, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= g.vertices {
		return nil, ErrUnknownVertex
	}
	var out []alphabet.Letter
	for _, l := range g.alpha.All() {
		iv, ok := g.initial[l]
		if ok && iv == v {
			out = append(out, l)
		}
	}
	return out, nil
}

// Turn is an unordered pair of germs (outgoing edges) sharing an initial
// vertex.
type Turn struct {
	A, B alphabet.Letter
}

// Equal reports whether t and other are the same unordered pair.
func (t Turn) Equal(other Turn) bool {
	return (t.A == other.A && t.B == other.B) || (t.A == other.B && t.B == other.A)
}

// Path is a reduced sequence of edges with matching endpoints: for every
// consecutive pair, terminal(letters[i]) == initial(letters[i+1]), and no
// letter is immediately followed by its inverse.
type Path struct {
	letters []alphabet.Letter
}

// EmptyPath returns the zero-length path.
func EmptyPath() Path { return Path{} }

// Len returns the number of edges in p.
func (p Path) Len() int { return len(p.letters) }

// IsEmpty reports whether p has no edges.
func (p Path) IsEmpty() bool { return len(p.letters) == 0 }

// Letters returns a defensive copy of p's edge sequence.
func (p Path) Letters() []alphabet.Letter {
	out := make([]alphabet.Letter, len(p.letters))
	copy(out, p.letters)
	return out
}

// First returns the first edge of p.
func (p Path) First() (alphabet.Letter, error) {
	if len(p.letters) == 0 {
		return alphabet.Letter{}, ErrEmptyPath
	}
	return p.letters[0], nil
}

// Substitution records a rewrite from edges of an old alphabet to paths in
// a (possibly different) graph, produced by Fold.
type Substitution struct {
	Graph  *Graph
	Images map[alphabet.Letter]Path
}

// Apply rewrites every letter of ls by its substituted path and
// concatenates the results.
func (s Substitution) Apply(ls []alphabet.Letter) (Path, error) {
	var out []alphabet.Letter
	for _, l := range ls {
		img, ok := s.Images[l]
		if !ok {
			return Path{}, ErrUnknownEdge
		}
		out = append(out, img.letters...)
	}
	return s.Graph.ReducePath(Path{letters: out})
}
