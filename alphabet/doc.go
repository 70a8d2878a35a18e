// Package alphabet builds finite alphabets equipped with a fixed-point-free
// involution pairing "positive" letters with "negative" letters.
//
// An Alphabet is an immutable value: once built it never changes, so it can
// be shared freely across words and graphs without locking. Letters are
// opaque, comparable values; construction normalizes them into a dense,
// ordered table so that inversion, sign tests, and ranking of a Letter are
// O(1). Resolving a name to a Letter (Letter, Contains) is a linear scan.
//
// Construction mirrors the option pattern used throughout this module
// (see ggraph.GraphOption): New accepts a required Data source plus a small
// set of functional Options (WithNeg, WithName, WithNegName).
package alphabet
