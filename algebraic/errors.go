// Package algebraic: sentinel error set.

package algebraic

import "errors"

var (
	// ErrIndeterminate is returned by Cmp when two Values' intervals
	// overlap without being identical or the same exact point (Equal then
	// reports false).
	ErrIndeterminate = errors.New("algebraic: comparison indeterminate at current precision")
)
