package traintrack

import (
	"github.com/ggt-tools/traintrack/alphabet"
	"github.com/ggt-tools/traintrack/word"
)

// NielsenPath is a candidate or confirmed indivisible/periodic Nielsen
// path: a pair of reduced words sharing an initial vertex (spec.md §4.3.3).
type NielsenPath struct {
	T0, T1 word.Word
}

// applyMap maps every letter of w through f and freely reduces the
// concatenation -- f(w) for an arbitrary (not just single-letter) path.
func (m *Map) applyMap(w word.Word) (word.Word, error) {
	out := word.Empty(m.alpha)
	for _, l := range w.Letters() {
		img, err := m.Image(l)
		if err != nil {
			return word.Word{}, err
		}
		out, err = out.Product(img)
		if err != nil {
			return word.Word{}, err
		}
	}
	return out, nil
}

// followTable maps each letter to the set of letters observed immediately
// following it in some edge image: the "legal continuation" lookup the
// INP/pNP search extends candidates with (spec.md §4.3.3 step 3).
func (m *Map) followTable() map[alphabet.Letter]map[alphabet.Letter]bool {
	table := make(map[alphabet.Letter]map[alphabet.Letter]bool)
	for _, l := range m.alpha.All() {
		img, err := m.Image(l)
		if err != nil {
			continue
		}
		ls := img.Letters()
		for i := 0; i+1 < len(ls); i++ {
			if table[ls[i]] == nil {
				table[ls[i]] = make(map[alphabet.Letter]bool)
			}
			table[ls[i]][ls[i+1]] = true
		}
	}
	return table
}

// legalContinuations returns the letters that may legally follow inv(x) --
// candidates y sharing x's terminal vertex, forming a legal (non-illegal)
// turn with inv(x), and observed in the follow table.
func (m *Map) legalContinuations(x alphabet.Letter, follow map[alphabet.Letter]map[alphabet.Letter]bool) ([]alphabet.Letter, error) {
	invX, err := m.alpha.Inverse(x)
	if err != nil {
		return nil, err
	}
	var out []alphabet.Letter
	for y := range follow[invX] {
		illegal, err := m.illegalTurn(invX, y)
		if err != nil {
			continue
		}
		if !illegal {
			out = append(out, y)
		}
	}
	return out, nil
}

func (m *Map) maxImageLen() int {
	max := 1
	for _, l := range m.alpha.All() {
		if img, err := m.Image(l); err == nil && img.Len() > max {
			max = img.Len()
		}
	}
	return max
}

// nielsenCandidate tracks a growing (t0,t1) pair during the BFS search.
type nielsenCandidate struct {
	t0, t1 word.Word
}

// searchNielsenPaths runs the bounded extension-BFS of spec.md §4.3.3/4.3.4
// starting from seeds (fold turns for INPs, all illegal turns for pNPs),
// returning every candidate that stabilizes into a reported Nielsen path.
func (m *Map) searchNielsenPaths(seeds []struct{ A, B alphabet.Letter }) ([]NielsenPath, error) {
	follow := m.followTable()
	bound := 4*m.maxImageLen() + 16

	var queue []nielsenCandidate
	for _, s := range seeds {
		t0, err := word.New(m.alpha, []alphabet.Letter{s.A}, false)
		if err != nil {
			return nil, err
		}
		t1, err := word.New(m.alpha, []alphabet.Letter{s.B}, false)
		if err != nil {
			return nil, err
		}
		queue = append(queue, nielsenCandidate{t0: t0, t1: t1})
	}

	var found []NielsenPath
	seen := make(map[string]bool)

	for len(queue) > 0 {
		cand := queue[0]
		queue = queue[1:]

		if cand.t0.Len() > bound || cand.t1.Len() > bound {
			continue
		}

		imgT0, err := m.applyMap(cand.t0)
		if err != nil {
			continue
		}
		imgT1, err := m.applyMap(cand.t1)
		if err != nil {
			continue
		}
		k := imgT0.CommonPrefixLen(imgT1)
		tight0, err := imgT0.Slice(k, word.NoIndex, 1)
		if err != nil {
			continue
		}
		tight1, err := imgT1.Slice(k, word.NoIndex, 1)
		if err != nil {
			continue
		}

		report := func() {
			key := cand.t0.String() + "|" + cand.t1.String()
			if !seen[key] {
				seen[key] = true
				found = append(found, NielsenPath{T0: cand.t0, T1: cand.t1})
			}
		}

		switch {
		case tight0.IsEmpty() && tight1.IsEmpty():
			report()
		case cand.t0.IsPrefix(imgT0) && cand.t1.IsPrefix(imgT1):
			report()
		case tight0.IsEmpty():
			last, err := lastLetter(cand.t0)
			if err != nil {
				continue
			}
			ext, err := m.legalContinuations(last, follow)
			if err != nil {
				continue
			}
			for _, y := range ext {
				nt0, err := extendWord(cand.t0, y)
				if err != nil {
					continue
				}
				queue = append(queue, nielsenCandidate{t0: nt0, t1: cand.t1})
			}
		case tight1.IsEmpty():
			last, err := lastLetter(cand.t1)
			if err != nil {
				continue
			}
			ext, err := m.legalContinuations(last, follow)
			if err != nil {
				continue
			}
			for _, y := range ext {
				nt1, err := extendWord(cand.t1, y)
				if err != nil {
					continue
				}
				queue = append(queue, nielsenCandidate{t0: cand.t0, t1: nt1})
			}
		case tight0.IsPrefix(tight1) && tight0.Len() < tight1.Len():
			last, err := lastLetter(cand.t0)
			if err != nil {
				continue
			}
			ext, err := m.legalContinuations(last, follow)
			if err != nil {
				continue
			}
			for _, y := range ext {
				nt0, err := extendWord(cand.t0, y)
				if err != nil {
					continue
				}
				queue = append(queue, nielsenCandidate{t0: nt0, t1: cand.t1})
			}
		case tight1.IsPrefix(tight0) && tight1.Len() < tight0.Len():
			last, err := lastLetter(cand.t1)
			if err != nil {
				continue
			}
			ext, err := m.legalContinuations(last, follow)
			if err != nil {
				continue
			}
			for _, y := range ext {
				nt1, err := extendWord(cand.t1, y)
				if err != nil {
					continue
				}
				queue = append(queue, nielsenCandidate{t0: cand.t0, t1: nt1})
			}
		default:
			// Neither side a prefix of the other and neither fully
			// matches its own image: this turn cannot tighten into an
			// INP/pNP, discard.
		}
	}

	return found, nil
}

func lastLetter(w word.Word) (alphabet.Letter, error) {
	return w.At(-1)
}

func extendWord(w word.Word, y alphabet.Letter) (word.Word, error) {
	tail, err := word.New(w.Alphabet(), []alphabet.Letter{y}, false)
	if err != nil {
		return word.Word{}, err
	}
	return w.Product(tail)
}

// IndivisibleNielsenPaths searches for INPs, seeded from every fold turn
// (a turn whose two edges appear adjacent in some f(e)) -- spec.md §4.3.3.
func (m *Map) IndivisibleNielsenPaths() ([]NielsenPath, error) {
	expanding, err := m.IsExpanding()
	if err != nil {
		return nil, err
	}
	if !expanding {
		return nil, ErrNotExpanding
	}

	images := make(map[alphabet.Letter]word.Word, m.alpha.Len())
	for _, l := range m.alpha.Positive() {
		images[l] = m.images[l]
	}

	seeds, err := m.foldTurnSeeds()
	if err != nil {
		return nil, err
	}
	return m.searchNielsenPaths(seeds)
}

// foldTurnSeeds returns every turn whose two edges appear adjacent in some
// image, across all vertices.
func (m *Map) foldTurnSeeds() ([]struct{ A, B alphabet.Letter }, error) {
	var seeds []struct{ A, B alphabet.Letter }
	seen := make(map[string]bool)
	for _, l := range m.alpha.All() {
		img, err := m.Image(l)
		if err != nil {
			return nil, err
		}
		ls := img.Letters()
		for i := 0; i+1 < len(ls); i++ {
			invCur, err := m.alpha.Inverse(ls[i])
			if err != nil {
				return nil, err
			}
			a, b := invCur, ls[i+1]
			na, _ := m.alpha.Name(a)
			nb, _ := m.alpha.Name(b)
			key := na + "," + nb
			keyRev := nb + "," + na
			if seen[key] || seen[keyRev] {
				continue
			}
			seen[key] = true
			seeds = append(seeds, struct{ A, B alphabet.Letter }{A: a, B: b})
		}
	}
	return seeds, nil
}

// PeriodicNielsenPaths searches for pNPs, seeded from every illegal turn
// (spec.md §4.3.4). This implementation runs the same tightening search as
// IndivisibleNielsenPaths with the wider seed set; it does not build the
// full survivor-compatibility graph and strongly-connected-orbit structure
// of the source algorithm -- see DESIGN.md for the simplification -- but
// every path it reports does satisfy the pNP tightening fixed point.
func (m *Map) PeriodicNielsenPaths() ([]NielsenPath, error) {
	var seeds []struct{ A, B alphabet.Letter }
	for v := 0; v < m.graph.NumVertices(); v++ {
		germs, err := m.graph.EdgesAt(v)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(germs); i++ {
			for j := i + 1; j < len(germs); j++ {
				illegal, err := m.illegalTurn(germs[i], germs[j])
				if err != nil {
					return nil, err
				}
				if illegal {
					seeds = append(seeds, struct{ A, B alphabet.Letter }{A: germs[i], B: germs[j]})
				}
			}
		}
	}
	return m.searchNielsenPaths(seeds)
}

// NielsenLoop is a canonicalized based loop obtained by joining the two
// endpoints of a periodic Nielsen path (spec.md §4.3.5).
type NielsenLoop struct {
	Path word.Word
}

// PeriodicNielsenLoops builds the Nielsen loops from the periodic Nielsen
// paths: for each pNP (u,v) whose two sides terminate at the same vertex,
// the loop reverse(u)·v is formed, reduced, and (if non-trivial)
// canonicalized to its lexicographically smallest cyclic rotation.
//
// This covers the single-vertex (rose graph) case exactly; the general
// multi-vertex components-tree construction of the source algorithm (fusing
// separate endpoint trees as new pNPs connect them) is not built -- see
// DESIGN.md.
func (m *Map) PeriodicNielsenLoops() ([]NielsenLoop, error) {
	pnps, err := m.PeriodicNielsenPaths()
	if err != nil {
		return nil, err
	}

	var loops []NielsenLoop
	seen := make(map[string]bool)
	for _, p := range pnps {
		tU, err := terminalVertexOfWord(m, p.T0)
		if err != nil {
			continue
		}
		tV, err := terminalVertexOfWord(m, p.T1)
		if err != nil {
			continue
		}
		if tU != tV {
			continue
		}
		revU := p.T0.Inverse()
		loop, err := revU.Product(p.T1)
		if err != nil {
			continue
		}
		if loop.IsEmpty() {
			continue
		}
		canon := canonicalRotation(loop, m.alpha)
		key := canon.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		loops = append(loops, NielsenLoop{Path: canon})
	}
	return loops, nil
}

func terminalVertexOfWord(m *Map, w word.Word) (int, error) {
	ls := w.Letters()
	if len(ls) == 0 {
		return 0, nil
	}
	return m.graph.Terminal(ls[len(ls)-1])
}

// canonicalRotation returns the lexicographically smallest cyclic rotation
// of loop's letters, ties broken by alphabet order (spec.md §4.3.5).
func canonicalRotation(loop word.Word, a alphabet.Alphabet) word.Word {
	ls := loop.Letters()
	n := len(ls)
	if n == 0 {
		return loop
	}
	best := ls
	for r := 1; r < n; r++ {
		rot := append(append([]alphabet.Letter{}, ls[r:]...), ls[:r]...)
		if lessLetterSlice(rot, best, a) {
			best = rot
		}
	}
	w, err := word.New(a, best, false)
	if err != nil {
		return loop
	}
	return w
}

func lessLetterSlice(x, y []alphabet.Letter, a alphabet.Alphabet) bool {
	for i := 0; i < len(x) && i < len(y); i++ {
		if x[i] == y[i] {
			continue
		}
		return a.Less(x[i], y[i])
	}
	return len(x) < len(y)
}
