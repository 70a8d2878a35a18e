package matrixoracle

import (
	"math"

	"github.com/ggt-tools/traintrack/algebraic"
)

// Result is the oracle's answer: the dominant eigenvalue, a matching
// non-negative left eigenvector (unique up to scale when M is primitive),
// and an algebraic.Value wrapping Eigenvalue with half-width tol, the
// convergence tolerance the power iteration was run with.
type Result struct {
	Eigenvalue  float64
	Eigenvector []float64
	Value       algebraic.Value
	Iterations  int
}

// PerronEigen computes the Perron-Frobenius eigenpair of the non-negative
// square matrix m by power iteration on Mᵀ (producing a *left* eigenvector
// of M, as spec.md §4.4 requires): v ← Mᵀv / ‖Mᵀv‖₁, taking ‖Mᵀv‖₁ (with
// ‖v‖₁ = 1) as the eigenvalue estimate, until successive estimates differ by
// less than tol or maxIter is exceeded.
//
// Convergence to the unique dominant eigenpair is guaranteed by
// Perron-Frobenius theory when m is primitive (some power strictly
// positive) -- exactly the condition traintrack.IsPerronFrobenius checks
// before calling this function.
func PerronEigen(m *Dense, tol float64, maxIter int) (Result, error) {
	n := m.Size()
	if n == 0 {
		return Result{}, ErrZeroMatrix
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.At(i, j) < 0 {
				return Result{}, ErrNegativeEntry
			}
		}
	}

	allZero := true
	for _, x := range m.data {
		if x != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return Result{}, ErrZeroMatrix
	}

	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	normalizeL1(v)

	lambda := 0.0
	iter := 0
	converged := false
	for ; iter < maxIter; iter++ {
		w := m.mulVecLeft(v)
		norm := l1Norm(w)
		if norm == 0 {
			return Result{}, ErrMatrixEigenFailed
		}
		newLambda := norm
		for i := range w {
			w[i] /= norm
		}

		if math.Abs(newLambda-lambda) < tol && iter > 0 {
			lambda = newLambda
			v = w
			iter++
			converged = true
			break
		}
		lambda = newLambda
		v = w
	}
	if !converged {
		return Result{}, ErrMatrixEigenFailed
	}

	for i := range v {
		if v[i] < 0 {
			v[i] = 0
		}
	}

	return Result{
		Eigenvalue:  lambda,
		Eigenvector: v,
		Value:       algebraic.NewFromFloat(lambda, tol),
		Iterations:  iter,
	}, nil
}

func l1Norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += math.Abs(x)
	}
	return s
}

func normalizeL1(v []float64) {
	n := l1Norm(v)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}
