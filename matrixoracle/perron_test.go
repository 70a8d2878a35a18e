package matrixoracle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggt-tools/traintrack/matrixoracle"
)

// Tribonacci transition matrix (spec.md §8 scenario 4: a↦ab, b↦ac, c↦a):
// column b has letters {a,c}; its Perron root is the tribonacci constant,
// the real root of x^3 = x^2 + x + 1 ≈ 1.8393.
func tribonacciMatrix() *matrixoracle.Dense {
	m := matrixoracle.NewDense(3)
	// a -> a b : column 0 (a) has a:1, b:1
	m.Set(0, 0, 1)
	m.Set(1, 0, 1)
	// b -> a c : column 1 (b) has a:1, c:1
	m.Set(0, 1, 1)
	m.Set(2, 1, 1)
	// c -> a : column 2 (c) has a:1
	m.Set(0, 2, 1)
	return m
}

func TestPerronEigenTribonacci(t *testing.T) {
	m := tribonacciMatrix()
	res, err := matrixoracle.PerronEigen(m, 1e-10, 10000)
	require.NoError(t, err)
	assert.InDelta(t, 1.839286755, res.Eigenvalue, 1e-6)
	for _, x := range res.Eigenvector {
		assert.GreaterOrEqual(t, x, 0.0)
	}
}

func TestPerronEigenZeroMatrixErrors(t *testing.T) {
	m := matrixoracle.NewDense(2)
	_, err := matrixoracle.PerronEigen(m, 1e-9, 100)
	assert.ErrorIs(t, err, matrixoracle.ErrZeroMatrix)
}

func TestPerronEigenNegativeEntryErrors(t *testing.T) {
	m := matrixoracle.NewDense(2)
	m.Set(0, 0, -1)
	_, err := matrixoracle.PerronEigen(m, 1e-9, 100)
	assert.ErrorIs(t, err, matrixoracle.ErrNegativeEntry)
}

func TestPerronEigenIdentitySized1(t *testing.T) {
	m := matrixoracle.NewDense(1)
	m.Set(0, 0, 5)
	res, err := matrixoracle.PerronEigen(m, 1e-9, 100)
	require.NoError(t, err)
	assert.True(t, math.Abs(res.Eigenvalue-5) < 1e-6)
}
