// Package traintrack: sentinel error set.

package traintrack

import "errors"

var (
	// ErrNotExpanding is returned by operations that require an expanding
	// map (IndivisibleNielsenPaths, and Stabilize through it) when
	// IsExpanding is false.
	ErrNotExpanding = errors.New("traintrack: map is not expanding")

	// ErrNotIrreducible is returned when an operation that assumes a
	// Perron-Frobenius transition matrix is called on a reducible map.
	ErrNotIrreducible = errors.New("traintrack: transition matrix is not irreducible")

	// ErrEssentialINPLoop is returned by Stabilize if it exhausts its fold
	// budget without resolving every INP as essential or foldable -- a
	// defect in the input map, not a normal control-flow outcome.
	ErrEssentialINPLoop = errors.New("traintrack: stabilization did not terminate")

	// ErrEmptyImage is returned when constructing a Map whose edge map
	// sends some edge to the empty word, forbidden by the f(e) != empty
	// invariant.
	ErrEmptyImage = errors.New("traintrack: edge image is empty")

	// ErrInconsistentInvolution is returned when a supplied edge map is not
	// antisymmetric under the alphabet's involution.
	ErrInconsistentInvolution = errors.New("traintrack: edge map inconsistent under involution")

	// ErrUnknownLetter is returned when an edge map has no image for some
	// positive letter of the map's alphabet, when Image is asked for a letter
	// with no image, or when a turn is given as the same letter twice.
	ErrUnknownLetter = errors.New("traintrack: unknown letter")

	// ErrCannotFold is returned by FoldINP when the given pair's images
	// share no common prefix, so there is nothing to fold, or when the
	// common prefix is shorter than both images, which would need a
	// partial fold.
	ErrCannotFold = errors.New("traintrack: INP has no common image prefix to fold")
)
