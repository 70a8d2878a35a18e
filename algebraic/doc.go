// Package algebraic provides Value, a certified-rational-bound
// approximation of a real algebraic number: a closed interval
// [lo, hi] of big.Rat taken to contain the true value. Intervals are never
// refined after construction. It exists for the comparisons on Perron
// eigenvalues and ν-weighted sums that a plain float64 cannot make exactly:
// two Values compare equal only when both are the same exact point or their
// intervals coincide, and unequal only when their intervals are disjoint,
// never by float tolerance.
//
// matrixoracle produces Values by pairing PerronEigen's floating estimate
// with its convergence tolerance as the half-width; algebraic itself has
// no notion of matrices or eigenvectors.
package algebraic
