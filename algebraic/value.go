package algebraic

import "math/big"

// Value is a certified rational interval [lo, hi] known to contain a single
// real algebraic number. The zero Value is not meaningful; use NewExact or
// NewFromFloat.
type Value struct {
	lo, hi big.Rat
}

// NewExact returns the Value representing the exact rational n/d.
func NewExact(n, d int64) Value {
	r := big.NewRat(n, d)
	return Value{lo: *r, hi: *r}
}

// NewFromFloat returns the Value for center ± halfWidth, the representation
// matrixoracle uses for a Perron eigenvalue/eigenvector entry: center is the
// float64 estimate, halfWidth the error bound (the oracle's convergence
// tolerance); a negative halfWidth is taken by absolute value.
func NewFromFloat(center, halfWidth float64) Value {
	if halfWidth < 0 {
		halfWidth = -halfWidth
	}
	c := new(big.Rat).SetFloat64(center)
	w := new(big.Rat).SetFloat64(halfWidth)
	lo := new(big.Rat).Sub(c, w)
	hi := new(big.Rat).Add(c, w)
	return Value{lo: *lo, hi: *hi}
}

// Width returns hi - lo, the current uncertainty of v.
func (v Value) Width() *big.Rat {
	return new(big.Rat).Sub(&v.hi, &v.lo)
}

// Float64 returns the interval midpoint as a float64, for display only.
func (v Value) Float64() float64 {
	mid := new(big.Rat).Add(&v.lo, &v.hi)
	mid.Quo(mid, big.NewRat(2, 1))
	f, _ := mid.Float64()
	return f
}

// Add returns v + w, an interval containing the true sum.
func (v Value) Add(w Value) Value {
	return Value{
		lo: *new(big.Rat).Add(&v.lo, &w.lo),
		hi: *new(big.Rat).Add(&v.hi, &w.hi),
	}
}

// Sub returns v - w.
func (v Value) Sub(w Value) Value {
	return Value{
		lo: *new(big.Rat).Sub(&v.lo, &w.hi),
		hi: *new(big.Rat).Sub(&v.hi, &w.lo),
	}
}

// Mul returns v * w, an interval containing the true product. The product
// of two intervals is the span of all four corner products, not just
// lo*lo/hi*hi, since either operand's bound may be negative.
func (v Value) Mul(w Value) Value {
	corners := [4]*big.Rat{
		new(big.Rat).Mul(&v.lo, &w.lo),
		new(big.Rat).Mul(&v.lo, &w.hi),
		new(big.Rat).Mul(&v.hi, &w.lo),
		new(big.Rat).Mul(&v.hi, &w.hi),
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c.Cmp(lo) < 0 {
			lo = c
		}
		if c.Cmp(hi) > 0 {
			hi = c
		}
	}
	return Value{lo: *lo, hi: *hi}
}

// ScaleInt returns n * v for an integer n >= 0 (the ν-weighted sum never
// scales by a negative count).
func (v Value) ScaleInt(n int) Value {
	r := big.NewRat(int64(n), 1)
	return Value{
		lo: *new(big.Rat).Mul(&v.lo, r),
		hi: *new(big.Rat).Mul(&v.hi, r),
	}
}

// Sum adds a sequence of Values, accumulating interval width additively.
func Sum(vs ...Value) Value {
	if len(vs) == 0 {
		return NewExact(0, 1)
	}
	out := vs[0]
	for _, v := range vs[1:] {
		out = out.Add(v)
	}
	return out
}

// Cmp compares v and w. It returns -1, 0, or 1 when the intervals certify
// the relation (disjoint, or both collapsed to the same exact point), and
// ErrIndeterminate when the intervals overlap without being point-equal --
// the caller (matrixoracle/traintrack) is expected to have supplied
// intervals tight enough that this does not happen for the comparisons
// spec.md §9 requires to be exact; Stabilize's critic comparison always
// calls Cmp on values built from the same PerronEigen result and the same
// eigenvector intervals.
func (v Value) Cmp(w Value) (int, error) {
	if v.hi.Cmp(&w.lo) < 0 {
		return -1, nil
	}
	if w.hi.Cmp(&v.lo) < 0 {
		return 1, nil
	}
	if v.lo.Cmp(&v.hi) == 0 && w.lo.Cmp(&w.hi) == 0 && v.lo.Cmp(&w.lo) == 0 {
		return 0, nil
	}
	// Overlapping but not both exact points: indeterminate at this
	// precision unless the intervals are identical, which we treat as
	// equality since both bound the same unique algebraic number when
	// produced by the same oracle call.
	if v.lo.Cmp(&w.lo) == 0 && v.hi.Cmp(&w.hi) == 0 {
		return 0, nil
	}
	return 0, ErrIndeterminate
}

// Equal reports whether v and w are certified equal, treating any
// indeterminate comparison as not-equal. Callers that need another
// treatment of an unresolved comparison call Cmp directly: Stabilize's
// essential-INP test counts an indeterminate result as equal (essential).
func (v Value) Equal(w Value) bool {
	c, err := v.Cmp(w)
	return err == nil && c == 0
}
