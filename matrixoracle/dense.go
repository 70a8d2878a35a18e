package matrixoracle

// Dense is a row-major square matrix of non-negative integer entries --
// the transition matrix `M[a,b] = #occurrences of ±a in f(b)` spec.md §3
// defines on positive letters.
type Dense struct {
	n    int
	data []float64
}

// NewDense builds an n×n Dense matrix, all entries zero.
func NewDense(n int) *Dense {
	return &Dense{n: n, data: make([]float64, n*n)}
}

// Size returns the matrix dimension.
func (m *Dense) Size() int { return m.n }

// At returns M[i,j].
func (m *Dense) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set assigns M[i,j] = v.
func (m *Dense) Set(i, j int, v float64) { m.data[i*m.n+j] = v }

// Add increments M[i,j] by delta, the usual way a transition matrix is
// built: one Add call per letter occurrence found scanning an edge image.
func (m *Dense) Add(i, j int, delta float64) { m.data[i*m.n+j] += delta }

// mulVecLeft returns vᵀ·M (i.e. Mᵀ·v), used to compute a left eigenvector.
func (m *Dense) mulVecLeft(v []float64) []float64 {
	out := make([]float64, m.n)
	for j := 0; j < m.n; j++ {
		var s float64
		for i := 0; i < m.n; i++ {
			s += v[i] * m.At(i, j)
		}
		out[j] = s
	}
	return out
}
