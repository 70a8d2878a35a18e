// Package ggraph: sentinel error set.

package ggraph

import "errors"

var (
	// ErrUnknownVertex is returned for operations referencing a vertex not
	// in the graph.
	ErrUnknownVertex = errors.New("ggraph: unknown vertex")

	// ErrUnknownEdge is returned for operations referencing a letter with
	// no edge in the graph.
	ErrUnknownEdge = errors.New("ggraph: unknown edge")

	// ErrBadTurn is returned when a turn's two edges do not share an
	// initial vertex, or are equal.
	ErrBadTurn = errors.New("ggraph: not a turn")

	// ErrEmptyPath is returned by operations that require a non-empty path.
	ErrEmptyPath = errors.New("ggraph: empty path")

	// ErrInconsistentInvolution is returned when constructing a graph whose
	// edges are not closed under the involution, or whose initial/terminal
	// vertices disagree with inv's definition.
	ErrInconsistentInvolution = errors.New("ggraph: inconsistent involution")

	// ErrNotAPath is returned when a claimed edge sequence has a break in
	// endpoint continuity.
	ErrNotAPath = errors.New("ggraph: edges do not form a path")
)
