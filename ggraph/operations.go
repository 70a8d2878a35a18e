package ggraph

import "github.com/ggt-tools/traintrack/alphabet"

// NewPath validates that letters form a continuous walk in g (consecutive
// edges share endpoints) and returns its free reduction.
func (g *Graph) NewPath(letters []alphabet.Letter) (Path, error) {
	if len(letters) == 0 {
		return Path{}, nil
	}
	buf := make([]alphabet.Letter, len(letters))
	copy(buf, letters)
	for i := 0; i+1 < len(buf); i++ {
		t1, err := g.Terminal(buf[i])
		if err != nil {
			return Path{}, err
		}
		i2, err := g.Initial(buf[i+1])
		if err != nil {
			return Path{}, err
		}
		if t1 != i2 {
			return Path{}, ErrNotAPath
		}
	}
	return g.ReducePath(Path{letters: buf})
}

// ReducePath removes adjacent inverse pairs from p, the same two-pointer
// algorithm as word.reduce applied to a graph edge-path rather than a group
// word (continuity of the survivors is preserved automatically: cancelling
// e, inv(e) never changes the endpoints on either side of the cancelled
// pair).
func (g *Graph) ReducePath(p Path) (Path, error) {
	a := g.Alphabet()
	buf := make([]alphabet.Letter, len(p.letters))
	copy(buf, p.letters)

	n := len(buf)
	if n == 0 {
		return Path{}, nil
	}
	i, j := 0, 1
	for j < n {
		k := 0
		for i-k >= 0 && j+k < n && isInverseIn(a, buf[i-k], buf[j+k]) {
			k++
		}
		i = i - k + 1
		j = j + k + 1
		if j-1 < n {
			buf[i] = buf[j-1]
		} else {
			i--
		}
	}
	return Path{letters: buf[:i+1]}, nil
}

func isInverseIn(a alphabet.Alphabet, x, y alphabet.Letter) bool {
	inv, err := a.Inverse(x)
	if err != nil {
		return false
	}
	return inv == y
}

// ReversePath returns the reverse of p: inv applied to every letter,
// traversed in reverse order. Walking ReversePath(p) from terminal(p) leads
// back to initial(p).
func (g *Graph) ReversePath(p Path) (Path, error) {
	a := g.Alphabet()
	out := make([]alphabet.Letter, len(p.letters))
	for i, l := range p.letters {
		inv, err := a.Inverse(l)
		if err != nil {
			return Path{}, err
		}
		out[len(p.letters)-1-i] = inv
	}
	return Path{letters: out}, nil
}

// CommonPrefixLen returns the length of the longest common prefix of p and
// q's edge sequences.
func CommonPrefixLen(p, q Path) int {
	k := 0
	for k < len(p.letters) && k < len(q.letters) && p.letters[k] == q.letters[k] {
		k++
	}
	return k
}

// ConcatPaths concatenates p and q and freely reduces the result.
func (g *Graph) ConcatPaths(p, q Path) (Path, error) {
	out := make([]alphabet.Letter, 0, len(p.letters)+len(q.letters))
	out = append(out, p.letters...)
	out = append(out, q.letters...)
	return g.ReducePath(Path{letters: out})
}

// Turns returns every turn at vertex v: every unordered pair of distinct
// outgoing edges.
func (g *Graph) Turns(v int) ([]Turn, error) {
	edges, err := g.EdgesAt(v)
	if err != nil {
		return nil, err
	}
	var out []Turn
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			out = append(out, Turn{A: edges[i], B: edges[j]})
		}
	}
	return out, nil
}

// EdgeTurns returns the set of turns crossed by any of the given edge
// images: for an image e0 e1 ... ek, the turns {inv(e0),e1},
// {inv(e1),e2}, ... at the interior vertices of the image.
func (g *Graph) EdgeTurns(images map[alphabet.Letter]Path) ([]Turn, error) {
	seen := make(map[Turn]struct{})
	var out []Turn
	for _, img := range images {
		ls := img.letters
		a := g.Alphabet()
		for i := 0; i+1 < len(ls); i++ {
			invCur, err := a.Inverse(ls[i])
			if err != nil {
				return nil, err
			}
			t := Turn{A: invCur, B: ls[i+1]}
			key := t
			if !a.Less(key.A, key.B) {
				key.A, key.B = key.B, key.A
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, t)
		}
	}
	return out, nil
}

// Fold identifies the given edges -- which must share an initial vertex
// (ErrBadTurn otherwise) -- by a full fold: every edge after edges[0] is
// identified with edges[0] (and its inverse with edges[0]'s inverse), its
// terminal vertex is merged into edges[0]'s terminal vertex, and it is
// removed from the graph's endpoint tables. It returns the Substitution
// from the old alphabet to paths in g: each folded edge maps to edges[0],
// every other letter maps to itself.
//
// prefix must be non-empty (ErrEmptyPath otherwise); beyond that check its
// letters are not used. Fold never performs a partial fold: no edge is
// subdivided and no vertex or edge is added.
func (g *Graph) Fold(edges []alphabet.Letter, prefix Path) (Substitution, error) {
	if len(edges) < 2 {
		return Substitution{}, ErrBadTurn
	}
	v0, err := g.Initial(edges[0])
	if err != nil {
		return Substitution{}, err
	}
	for _, e := range edges[1:] {
		v, err := g.Initial(e)
		if err != nil {
			return Substitution{}, err
		}
		if v != v0 {
			return Substitution{}, ErrBadTurn
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	a := g.alpha
	images := make(map[alphabet.Letter]Path, 2*len(edges))

	if prefix.Len() >= 1 {
		// Every letter not identified below is its own image.
		for _, l := range a.All() {
			images[l] = Path{letters: []alphabet.Letter{l}}
		}
		// Full fold: identify every edge with the first one. The first
		// edge's own image is unchanged; every other edge substitutes to
		// the first edge (and its inverse, symmetrically).
		anchor := edges[0]
		anchorInv, err := a.Inverse(anchor)
		if err != nil {
			return Substitution{}, err
		}
		images[anchor] = Path{letters: []alphabet.Letter{anchor}}
		images[anchorInv] = Path{letters: []alphabet.Letter{anchorInv}}

		for _, e := range edges[1:] {
			eInv, err := a.Inverse(e)
			if err != nil {
				return Substitution{}, err
			}
			// Merge e's terminal vertex into anchor's terminal vertex by
			// identifying them: repoint anything ending at terminal(e) to
			// terminal(anchor).
			tAnchor, err := g.terminalLocked(anchor)
			if err != nil {
				return Substitution{}, err
			}
			tE, err := g.terminalLocked(e)
			if err != nil {
				return Substitution{}, err
			}
			g.mergeVerticesLocked(tE, tAnchor)

			images[e] = Path{letters: []alphabet.Letter{anchor}}
			images[eInv] = Path{letters: []alphabet.Letter{anchorInv}}

			delete(g.initial, e)
			delete(g.terminal, e)
			delete(g.initial, eInv)
			delete(g.terminal, eInv)
		}

		return Substitution{Graph: g, Images: images}, nil
	}

	return Substitution{}, ErrEmptyPath
}

// terminalLocked is Terminal without acquiring g.mu (caller already holds it).
func (g *Graph) terminalLocked(l alphabet.Letter) (int, error) {
	v, ok := g.terminal[l]
	if !ok {
		return -1, ErrUnknownEdge
	}
	return v, nil
}

// mergeVerticesLocked identifies vertex from into vertex into, repointing
// every edge endpoint; from is left unused (vertex indices are never
// compacted, matching the teacher's append-only ID convention).
func (g *Graph) mergeVerticesLocked(from, into int) {
	if from == into {
		return
	}
	for l, v := range g.initial {
		if v == from {
			g.initial[l] = into
		}
	}
	for l, v := range g.terminal {
		if v == from {
			g.terminal[l] = into
		}
	}
}


// LiesInAFreeFactor is a reachability check grounded on a plain scan (the
// teacher's core.dfs): it removes the first edge of loop (and its inverse)
// from g and reports true iff some vertex of g is then unreachable from
// vertex 0 using the remaining live edges. It does not decide in general
// whether loop is conjugate into a proper free factor of the fundamental
// group of g; on a single-vertex graph it always reports false.
func (g *Graph) LiesInAFreeFactor(loop Path) (bool, error) {
	if loop.IsEmpty() {
		return false, ErrEmptyPath
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	cut := loop.letters[0]
	cutInv, err := g.alpha.Inverse(cut)
	if err != nil {
		return false, err
	}

	// Letters folded away by a prior Fold remain in g.alpha (the alphabet
	// never shrinks, see DESIGN.md) but are removed from g.initial/g.terminal;
	// skip anything no longer a live edge rather than let the zero-value
	// vertex lookup fabricate a phantom edge at vertex 0.
	adj := make(map[int][]alphabet.Letter)
	for _, l := range g.alpha.All() {
		if l == cut || l == cutInv {
			continue
		}
		v0, ok := g.initial[l]
		if !ok {
			continue
		}
		adj[v0] = append(adj[v0], l)
	}

	visited := make(map[int]bool)
	var stack []int
	stack = append(stack, 0)
	visited[0] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, l := range adj[v] {
			t, ok := g.terminal[l]
			if !ok {
				continue
			}
			if !visited[t] {
				visited[t] = true
				stack = append(stack, t)
			}
		}
	}

	for i := 0; i < g.vertices; i++ {
		if !visited[i] {
			return true, nil
		}
	}
	return false, nil
}
