// SPDX-License-Identifier: MIT
// Package alphabet: sentinel error set.
//
// All constructors and lookups return these sentinels directly (never
// wrapped at the definition site); callers branch with errors.Is.

package alphabet

import "errors"

var (
	// ErrUnknownLetter is returned when a symbol is not a member of the alphabet.
	ErrUnknownLetter = errors.New("alphabet: unknown letter")

	// ErrAlphabetConflict is returned when the positive and negative sets
	// overlap, or differ in cardinality.
	ErrAlphabetConflict = errors.New("alphabet: positive/negative conflict")

	// ErrAmbiguousInverse is returned when neg is omitted and the default
	// case-flip rule cannot determine the negative letters.
	ErrAmbiguousInverse = errors.New("alphabet: ambiguous inverse")

	// ErrWrongLength is returned when a fixed-length subset constructor
	// receives data of the wrong length.
	ErrWrongLength = errors.New("alphabet: wrong length")

	// ErrEmptyAlphabet is returned when a rank-requiring alphabet has zero letters.
	ErrEmptyAlphabet = errors.New("alphabet: empty alphabet")
)
