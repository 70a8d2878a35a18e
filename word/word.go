package word

import (
	"math"
	"strings"

	"github.com/ggt-tools/traintrack/alphabet"
)

// Word is a reduced sequence of letters over an alphabet.Alphabet: the
// group element of a free group of finite rank. The empty Word is the
// identity.
type Word struct {
	alpha alphabet.Alphabet
	data  []alphabet.Letter
}

// Alphabet returns the alphabet w is built over.
func (w Word) Alphabet() alphabet.Alphabet { return w.alpha }

// Empty returns the identity word over a.
func Empty(a alphabet.Alphabet) Word {
	return Word{alpha: a}
}

// New builds a Word from data over alphabet a.
//
// If check is true, every letter is validated against a (failing with
// ErrUnknownLetter otherwise) and the sequence is freely reduced in place.
// If check is false, the caller vouches that data is already a member of a
// and already reduced -- this is the fast, trusted path for callers that
// only ever pass letters taken from already-reduced Words or paths.
func New(a alphabet.Alphabet, data []alphabet.Letter, check bool) (Word, error) {
	if !check {
		return Word{alpha: a, data: data}, nil
	}

	buf := make([]alphabet.Letter, len(data))
	copy(buf, data)
	for _, l := range buf {
		if _, err := a.Name(l); err != nil {
			return Word{}, ErrUnknownLetter
		}
	}

	return Word{alpha: a, data: reduce(a, buf)}, nil
}

// Parse builds a Word from s, treating each rune of s as the name of a
// single-character letter of a (the convention used throughout spec.md's
// worked examples, e.g. "abcAab").
func Parse(a alphabet.Alphabet, s string) (Word, error) {
	data := make([]alphabet.Letter, 0, len(s))
	for _, r := range s {
		l, err := a.Letter(string(r))
		if err != nil {
			return Word{}, ErrUnknownLetter
		}
		data = append(data, l)
	}

	return New(a, data, true)
}

// reduce performs the classical two-pointer free reduction: it removes
// adjacent inverse pairs, propagating cancellation inward, in one O(n)
// pass over buf (mutated and returned, possibly shortened).
func reduce(a alphabet.Alphabet, buf []alphabet.Letter) []alphabet.Letter {
	n := len(buf)
	if n == 0 {
		return buf
	}

	i, j := 0, 1
	for j < n {
		k := 0
		for i-k >= 0 && j+k < n && isInverse(a, buf[i-k], buf[j+k]) {
			k++
		}
		i = i - k + 1
		j = j + k + 1
		if j-1 < n {
			buf[i] = buf[j-1]
		} else {
			i--
		}
	}

	return buf[:i+1]
}

func isInverse(a alphabet.Alphabet, x, y alphabet.Letter) bool {
	inv, err := a.Inverse(x)
	if err != nil {
		return false
	}
	return inv == y
}

// Len returns the number of letters in w.
func (w Word) Len() int { return len(w.data) }

// IsEmpty reports whether w is the identity word.
func (w Word) IsEmpty() bool { return len(w.data) == 0 }

// At returns the letter at index i (supports negative indices, Python
// style: -1 is the last letter).
func (w Word) At(i int) (alphabet.Letter, error) {
	if i < 0 {
		i += len(w.data)
	}
	if i < 0 || i >= len(w.data) {
		return alphabet.Letter{}, ErrIndexOutOfRange
	}
	return w.data[i], nil
}

// NoIndex denotes an omitted slice bound, the equivalent of Python's None
// in w[start:stop:step].
const NoIndex = math.MinInt64

// Slice returns the sub-word selected by [start:stop:step]. Only
// step == 1 or step == -1 are supported (ErrUnsupportedStep otherwise);
// start/stop follow Python slice semantics (negative values count from the
// end, out-of-range values clamp, NoIndex means "omitted").
func (w Word) Slice(start, stop, step int) (Word, error) {
	if step != 1 && step != -1 {
		return Word{}, ErrUnsupportedStep
	}

	n := len(w.data)
	start, stop = sliceIndices(n, start, stop, step)

	var out []alphabet.Letter
	if step == 1 {
		if start < stop {
			out = append(out, w.data[start:stop]...)
		}
	} else {
		for i := start; i > stop; i-- {
			out = append(out, w.data[i])
		}
	}

	return Word{alpha: w.alpha, data: out}, nil
}

// sliceIndices normalizes start/stop the way CPython's slice.indices does.
func sliceIndices(n, start, stop, step int) (int, int) {
	var defStart, defStop int
	if step > 0 {
		defStart, defStop = 0, n
	} else {
		defStart, defStop = n-1, -1
	}

	if start == NoIndex {
		start = defStart
	} else {
		start = clampIndex(n, start, step)
	}
	if stop == NoIndex {
		stop = defStop
	} else {
		stop = clampIndex(n, stop, step)
	}

	return start, stop
}

func clampIndex(n, i, step int) int {
	if i < 0 {
		i += n
		if i < 0 {
			if step > 0 {
				return 0
			}
			return -1
		}
	}
	if i >= n {
		if step > 0 {
			return n
		}
		return n - 1
	}
	return i
}

// Equal reports whether w and other have the same alphabet and letters.
func (w Word) Equal(other Word) bool {
	if !sameAlphabet(w.alpha, other.alpha) {
		return false
	}
	if len(w.data) != len(other.data) {
		return false
	}
	for i := range w.data {
		if w.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Less orders Words shortlex: shorter words first, then lexicographically
// by the alphabet's fixed letter order. This is the "documented order" of
// spec.md §9's Open Questions resolution -- a plain, total, non-buggy
// order -- not the source's self-comparison-bugged nielsen_lesser_than,
// which is not relied upon by the analyzer and is intentionally omitted.
func (w Word) Less(other Word) bool {
	if len(w.data) != len(other.data) {
		return len(w.data) < len(other.data)
	}
	for i := range w.data {
		if w.data[i] == other.data[i] {
			continue
		}
		return w.alpha.Less(w.data[i], other.data[i])
	}
	return false
}

// Product returns the unique reduced word equal to w·other in the free
// group: the group operation. w and other must share an alphabet and must
// already be reduced (always true for values returned by this package).
func (w Word) Product(other Word) (Word, error) {
	if !sameAlphabet(w.alpha, other.alpha) {
		return Word{}, ErrAlphabetMismatch
	}

	k := 0
	for k < len(w.data) && k < len(other.data) {
		inv, err := w.alpha.Inverse(w.data[len(w.data)-1-k])
		if err != nil || inv != other.data[k] {
			break
		}
		k++
	}

	out := make([]alphabet.Letter, 0, len(w.data)-k+len(other.data)-k)
	out = append(out, w.data[:len(w.data)-k]...)
	out = append(out, other.data[k:]...)

	return Word{alpha: w.alpha, data: out}, nil
}

// Inverse returns the group inverse of w: the reversed sequence with every
// letter replaced by its paired letter.
func (w Word) Inverse() Word {
	out := make([]alphabet.Letter, len(w.data))
	for i, l := range w.data {
		inv, _ := w.alpha.Inverse(l) // data is already alphabet-validated
		out[len(w.data)-1-i] = inv
	}
	return Word{alpha: w.alpha, data: out}
}

// CommonPrefixLen returns the length of the longest common prefix of w and
// other.
func (w Word) CommonPrefixLen(other Word) int {
	k := 0
	for k < len(w.data) && k < len(other.data) && w.data[k] == other.data[k] {
		k++
	}
	return k
}

// IsPrefix reports whether w is a prefix of other.
func (w Word) IsPrefix(other Word) bool {
	if len(other.data) < len(w.data) {
		return false
	}
	return w.CommonPrefixLen(other) == len(w.data)
}

// HasPrefix reports whether w has other as a prefix.
func (w Word) HasPrefix(other Word) bool {
	if len(w.data) < len(other.data) {
		return false
	}
	return w.CommonPrefixLen(other) == len(other.data)
}

// Letters returns a defensive copy of the underlying letter sequence.
func (w Word) Letters() []alphabet.Letter {
	out := make([]alphabet.Letter, len(w.data))
	copy(out, w.data)
	return out
}

// String renders w using the alphabet's letter names, or "1" for the
// identity (matching the "THE_EMPTY_WORD" placeholder's intent without
// carrying over the original's verbose spelling).
func (w Word) String() string {
	if len(w.data) == 0 {
		return "1"
	}
	var sb strings.Builder
	for _, l := range w.data {
		name, err := w.alpha.Name(l)
		if err != nil {
			sb.WriteByte('?')
			continue
		}
		sb.WriteString(name)
	}
	return sb.String()
}

func sameAlphabet(a, b alphabet.Alphabet) bool {
	if a.Len() != b.Len() {
		return false
	}
	// Alphabet is a small value type backed by a names slice; compare the
	// positive letters' names as a cheap, sufficient identity check.
	for _, l := range a.Positive() {
		name, err := a.Name(l)
		if err != nil {
			return false
		}
		bl, err := b.Letter(name)
		if err != nil {
			return false
		}
		if !b.IsPositive(bl) {
			return false
		}
	}
	return true
}
