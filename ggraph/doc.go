// Package ggraph implements a graph whose edge set is closed under a
// fixed-point-free involution inv: every edge e has a reverse inv(e), and
// walking a path backwards means walking the inv of its edges in reverse
// order. This is the combinatorial object a train-track map acts on --
// vertices, oriented edges paired by inv, turns (unordered pairs of
// same-initial-vertex edges), and reduced edge-paths.
//
// Graph is a mutex-guarded value type in the teacher's style (see
// core.Graph in the retrieval pack): safe for concurrent reads, and built
// through a small functional-options constructor. Unlike the teacher's
// Directed/Weighted/MultiEdge flags, the only structural knob here is the
// involution itself -- every edge is added together with its reverse.
package ggraph
