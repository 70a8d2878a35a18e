package traintrack

import "github.com/ggt-tools/traintrack/alphabet"

// IdealWhiteheadGraph builds the disjoint union of stable local Whitehead
// graphs at every vertex, quotients it by germ-equivalence induced by
// periodic Nielsen path endpoints, and returns the resulting connected
// components together with a decoration count per component for each
// Nielsen loop based there (spec.md §4.3.6).
type IdealComponent struct {
	Germs      []alphabet.Letter
	Decoration int // number of Nielsen loops based at this component
}

func (m *Map) IdealWhiteheadGraph() ([]IdealComponent, error) {
	uf := newUnionFind(nil)
	uf.parent = make(map[alphabet.Letter]alphabet.Letter)

	var allEdges []struct{ A, B alphabet.Letter }
	for v := 0; v < m.graph.NumVertices(); v++ {
		wg, err := m.StableLocalWhiteheadGraph(v)
		if err != nil {
			return nil, err
		}
		for _, g := range wg.Germs {
			if _, ok := uf.parent[g]; !ok {
				uf.parent[g] = g
			}
		}
		for _, t := range wg.Edges {
			allEdges = append(allEdges, struct{ A, B alphabet.Letter }{t.A, t.B})
		}
	}
	for _, e := range allEdges {
		uf.union(e.A, e.B)
	}

	pnps, err := m.PeriodicNielsenPaths()
	if err != nil {
		return nil, err
	}
	for _, p := range pnps {
		g0, err := p.T0.At(0)
		if err != nil {
			continue
		}
		g1, err := p.T1.At(0)
		if err != nil {
			continue
		}
		if _, ok := uf.parent[g0]; !ok {
			uf.parent[g0] = g0
		}
		if _, ok := uf.parent[g1]; !ok {
			uf.parent[g1] = g1
		}
		uf.union(g0, g1)
	}

	loops, err := m.PeriodicNielsenLoops()
	if err != nil {
		return nil, err
	}

	groups := uf.groups()
	components := make([]IdealComponent, 0, len(groups))
	for _, grp := range groups {
		comp := IdealComponent{Germs: grp}
		root := uf.find(grp[0])
		for _, loop := range loops {
			ls := loop.Path.Letters()
			if len(ls) == 0 {
				continue
			}
			if rootFor(uf, ls[0]) == root {
				comp.Decoration++
			}
		}
		components = append(components, comp)
	}
	return components, nil
}

func rootFor(uf *unionFind, g alphabet.Letter) alphabet.Letter {
	if _, ok := uf.parent[g]; !ok {
		return g
	}
	return uf.find(g)
}

// IndexList returns (vertices(C) - 2) for each component C of
// IdealWhiteheadGraph with vertex count > 2, where "vertices(C)" counts
// germs plus 2 per Nielsen loop based there (spec.md §4.3.6).
func (m *Map) IndexList() ([]int, error) {
	comps, err := m.IdealWhiteheadGraph()
	if err != nil {
		return nil, err
	}
	var out []int
	for _, c := range comps {
		vertices := len(c.Germs) + 2*c.Decoration
		if vertices > 2 {
			out = append(out, vertices-2)
		}
	}
	return out, nil
}

// Index returns the sum of IndexList.
func (m *Map) Index() (int, error) {
	list, err := m.IndexList()
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, v := range list {
		sum += v
	}
	return sum, nil
}
