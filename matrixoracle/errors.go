// Package matrixoracle: sentinel error set.

package matrixoracle

import "errors"

var (
	// ErrMatrixEigenFailed indicates PerronEigen failed to converge within
	// maxIter iterations at the requested tolerance. Named to match the
	// teacher's matrix.ErrMatrixEigenFailed convention.
	ErrMatrixEigenFailed = errors.New("matrixoracle: eigen computation failed to converge")

	// ErrNegativeEntry indicates a negative entry in a matrix the contract
	// requires to be non-negative.
	ErrNegativeEntry = errors.New("matrixoracle: negative entry in non-negative matrix")

	// ErrZeroMatrix indicates every entry is zero, so there is no dominant
	// eigenvector to report.
	ErrZeroMatrix = errors.New("matrixoracle: zero matrix has no dominant eigenvector")
)
