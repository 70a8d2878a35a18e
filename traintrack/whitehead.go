package traintrack

import (
	"github.com/ggt-tools/traintrack/alphabet"
	"github.com/ggt-tools/traintrack/ggraph"
)

// germAction returns Df(g): the germ f(g) maps g to, namely the first
// letter of f(g)'s image.
func (m *Map) germAction(g alphabet.Letter) (alphabet.Letter, error) {
	img, err := m.Image(g)
	if err != nil {
		return alphabet.Letter{}, err
	}
	return img.At(0)
}

// illegalTurn decides, by iterating the leading letter of f^k on each side,
// whether the turn {a,b} is illegal (spec.md §3): a turn is illegal iff
// f^n(a) and f^n(b) eventually share a prefix, which -- since images are
// always non-empty reduced words -- is equivalent to their leading letters
// eventually coinciding. The leading-letter sequence of any letter is
// eventually periodic (finitely many letters), so a bound of
// 4*alphabet size + 8 iterations is always enough to detect coincidence or
// rule it out.
func (m *Map) illegalTurn(a, b alphabet.Letter) (bool, error) {
	if a == b {
		return false, ErrUnknownLetter
	}
	bound := 4*m.alpha.Len() + 8
	la, lb := a, b
	for i := 0; i < bound; i++ {
		if la == lb {
			return true, nil
		}
		var err error
		la, err = m.germAction(la)
		if err != nil {
			return false, err
		}
		lb, err = m.germAction(lb)
		if err != nil {
			return false, err
		}
	}
	return la == lb, nil
}

// germPeriod returns the smallest p >= 1 such that iterating germAction p
// times on g returns g, or 0 if no such p exists within the search bound
// (g is not periodic under the germ action).
func (m *Map) germPeriod(g alphabet.Letter) (int, error) {
	bound := 4*m.alpha.Len() + 8
	cur := g
	for p := 1; p <= bound; p++ {
		next, err := m.germAction(cur)
		if err != nil {
			return 0, err
		}
		cur = next
		if cur == g {
			return p, nil
		}
	}
	return 0, nil
}

// unionFind is a minimal disjoint-set structure over alphabet.Letter keys,
// used by Gates and WhiteheadConnectedComponents.
type unionFind struct {
	parent map[alphabet.Letter]alphabet.Letter
}

func newUnionFind(elems []alphabet.Letter) *unionFind {
	uf := &unionFind{parent: make(map[alphabet.Letter]alphabet.Letter, len(elems))}
	for _, e := range elems {
		uf.parent[e] = e
	}
	return uf
}

func (uf *unionFind) find(x alphabet.Letter) alphabet.Letter {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(x, y alphabet.Letter) {
	rx, ry := uf.find(x), uf.find(y)
	if rx != ry {
		uf.parent[rx] = ry
	}
}

func (uf *unionFind) groups() [][]alphabet.Letter {
	byRoot := make(map[alphabet.Letter][]alphabet.Letter)
	for x := range uf.parent {
		r := uf.find(x)
		byRoot[r] = append(byRoot[r], x)
	}
	out := make([][]alphabet.Letter, 0, len(byRoot))
	for _, g := range byRoot {
		out = append(out, g)
	}
	return out
}

// Gates returns the gate partition at vertex v: equivalence classes of
// outgoing germs under the transitive closure of the illegal-turn relation
// (train_track_map.py:226-331, credited in the original to Brian Mann).
func (m *Map) Gates(v int) ([][]alphabet.Letter, error) {
	germs, err := m.graph.EdgesAt(v)
	if err != nil {
		return nil, err
	}
	uf := newUnionFind(germs)
	for i := 0; i < len(germs); i++ {
		for j := i + 1; j < len(germs); j++ {
			illegal, err := m.illegalTurn(germs[i], germs[j])
			if err != nil {
				return nil, err
			}
			if illegal {
				uf.union(germs[i], germs[j])
			}
		}
	}
	return uf.groups(), nil
}

// NumberOfGates returns len(Gates(v)).
func (m *Map) NumberOfGates(v int) (int, error) {
	g, err := m.Gates(v)
	if err != nil {
		return 0, err
	}
	return len(g), nil
}

// WhiteheadGraph is the graph of germs at a vertex with an edge between two
// germs whenever they form a legal turn (the local Whitehead graph of f at
// that vertex).
type WhiteheadGraph struct {
	Vertex int
	Germs  []alphabet.Letter
	Edges  []ggraph.Turn
}

// LocalWhiteheadGraph returns the full local Whitehead graph at v: one
// vertex per germ, one edge per legal turn (train_track_map.py:226-331).
func (m *Map) LocalWhiteheadGraph(v int) (WhiteheadGraph, error) {
	germs, err := m.graph.EdgesAt(v)
	if err != nil {
		return WhiteheadGraph{}, err
	}
	wg := WhiteheadGraph{Vertex: v, Germs: germs}
	for i := 0; i < len(germs); i++ {
		for j := i + 1; j < len(germs); j++ {
			illegal, err := m.illegalTurn(germs[i], germs[j])
			if err != nil {
				return WhiteheadGraph{}, err
			}
			if !illegal {
				wg.Edges = append(wg.Edges, ggraph.Turn{A: germs[i], B: germs[j]})
			}
		}
	}
	return wg, nil
}

// StableLocalWhiteheadGraph restricts LocalWhiteheadGraph(v) to germs that
// are periodic under the germ action of f: the subgraph IdealWhiteheadGraph
// starts from (spec.md §4.3.6).
func (m *Map) StableLocalWhiteheadGraph(v int) (WhiteheadGraph, error) {
	full, err := m.LocalWhiteheadGraph(v)
	if err != nil {
		return WhiteheadGraph{}, err
	}

	periodic := make(map[alphabet.Letter]bool, len(full.Germs))
	var germs []alphabet.Letter
	for _, g := range full.Germs {
		p, err := m.germPeriod(g)
		if err != nil {
			return WhiteheadGraph{}, err
		}
		if p > 0 {
			periodic[g] = true
			germs = append(germs, g)
		}
	}

	out := WhiteheadGraph{Vertex: v, Germs: germs}
	for _, t := range full.Edges {
		if periodic[t.A] && periodic[t.B] {
			out.Edges = append(out.Edges, t)
		}
	}
	return out, nil
}

// HasConnectedLocalWhiteheadGraphs reports whether every vertex's local
// Whitehead graph is connected (spec.md §4.3.9 step 3).
func (m *Map) HasConnectedLocalWhiteheadGraphs() (bool, error) {
	for v := 0; v < m.graph.NumVertices(); v++ {
		wg, err := m.LocalWhiteheadGraph(v)
		if err != nil {
			return false, err
		}
		if len(wg.Germs) == 0 {
			continue
		}
		if !whiteheadConnected(wg) {
			return false, nil
		}
	}
	return true, nil
}

// WhiteheadConnectedComponents returns the connected components of wg's
// germ set under its edge relation (train_track_map.py:1312-1363).
func WhiteheadConnectedComponents(wg WhiteheadGraph) [][]alphabet.Letter {
	uf := newUnionFind(wg.Germs)
	for _, t := range wg.Edges {
		uf.union(t.A, t.B)
	}
	return uf.groups()
}

func whiteheadConnected(wg WhiteheadGraph) bool {
	return len(WhiteheadConnectedComponents(wg)) <= 1
}
