// SPDX-License-Identifier: MIT
// Package word: sentinel error set.

package word

import "errors"

var (
	// ErrUnknownLetter is returned when constructing a Word with check=true
	// over data containing a letter outside the given alphabet.
	ErrUnknownLetter = errors.New("word: unknown letter")

	// ErrUnsupportedStep is returned by Slice when step is not 1 or -1.
	ErrUnsupportedStep = errors.New("word: unsupported slice step")

	// ErrAlphabetMismatch is returned when combining two Words built over
	// different alphabets (Product, common-prefix comparisons, etc).
	ErrAlphabetMismatch = errors.New("word: alphabet mismatch")

	// ErrIndexOutOfRange is returned by At for an out-of-bounds index.
	ErrIndexOutOfRange = errors.New("word: index out of range")
)
