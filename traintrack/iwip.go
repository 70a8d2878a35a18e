package traintrack

// IsIwip decides whether m is irreducible with irreducible powers
// (spec.md §4.3.9):
//
//  1. Reduce; if stratified (more than one stratum), return false.
//  2. If not Perron-Frobenius, return false.
//  3. If local Whitehead graphs are disconnected, return false.
//  4. Compute pNPs and then Nielsen loops.
//  5. Zero Nielsen loops -> atoroidal iwip = true.
//  6. More than one loop -> false.
//  7. Exactly one loop -> true iff that loop is not contained in a proper
//     free factor (delegated to ggraph.LiesInAFreeFactor).
func (m *Map) IsIwip() (bool, error) {
	if _, err := m.Reduce(); err != nil {
		return false, err
	}
	strata, err := m.Stratify()
	if err != nil {
		return false, err
	}
	if strata > 1 {
		m.logger.Debug("is_iwip: stratified, false")
		return false, nil
	}

	pf, err := m.IsPerronFrobenius()
	if err != nil {
		return false, err
	}
	if !pf {
		m.logger.Debug("is_iwip: not Perron-Frobenius, false")
		return false, nil
	}

	connected, err := m.HasConnectedLocalWhiteheadGraphs()
	if err != nil {
		return false, err
	}
	if !connected {
		m.logger.Debug("is_iwip: disconnected local Whitehead graph, false")
		return false, nil
	}

	loops, err := m.PeriodicNielsenLoops()
	if err != nil {
		return false, err
	}

	switch {
	case len(loops) == 0:
		m.logger.Debug("is_iwip: atoroidal, true")
		return true, nil
	case len(loops) > 1:
		m.logger.Debug("is_iwip: more than one Nielsen loop, false")
		return false, nil
	default:
		loopPath, err := m.graph.NewPath(loops[0].Path.Letters())
		if err != nil {
			return false, err
		}
		lies, err := m.graph.LiesInAFreeFactor(loopPath)
		if err != nil {
			return false, err
		}
		m.logger.Debug("is_iwip: single Nielsen loop, checking free factor", "lies", lies)
		return !lies, nil
	}
}
