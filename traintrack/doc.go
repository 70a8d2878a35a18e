// Package traintrack implements the train-track map analyzer and the
// is_iwip driver: expansion and Perron-Frobenius tests, indivisible and
// periodic Nielsen path search, periodic Nielsen loops, the ideal
// Whitehead graph and its index, INP folding, stabilization, and the
// top-level irreducible-with-irreducible-powers decision.
//
// A Map owns a ggraph.Graph value and an edge map from alphabet.Letter to
// word.Word -- never a pointer alias shared with the caller (spec.md §9):
// Clone copies both before a caller hands a Map to Stabilize, which
// mutates in place.
//
// Logging replaces the original implementation's threaded verbose integer
// parameter: Map carries an optional *slog.Logger (nil-safe, defaulting to
// a discard logger) and logs at Debug level the same decision points the
// original printed under verbose output.
package traintrack
