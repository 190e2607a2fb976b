package gobig

// UBig is an arbitrary-precision unsigned integer.
//
// The zero value is not a valid UBig; always obtain one through NewUBig,
// a parser, or an arithmetic operation. UBig values are immutable: no
// method mutates its receiver, so a UBig is safe to share across
// goroutines once constructed.
//
// Representation follows spec.md §3: a value that fits in one Word is
// stored inline (large == nil); every larger value is stored as an owned,
// normalized little-endian word slice with large[len(large)-1] != 0.
// Canonical zero is always the inline form holding 0.
type UBig struct {
	small Word
	large []Word // nil iff the value is stored inline in small
}

// NewUBig constructs a UBig from a machine word.
func NewUBig(w uint64) *UBig {
	return &UBig{small: Word(w)}
}

// zeroUBig and oneUBig avoid repeated allocation in hot paths; they must
// never be mutated or returned to a caller that could observe aliasing.
var (
	zeroUBig = NewUBig(0)
	oneUBig  = NewUBig(1)
)

// isSmall reports whether u is stored in the inline (single-word) form.
func (u *UBig) isSmall() bool { return u.large == nil }

// IsZero reports whether u == 0.
func (u *UBig) IsZero() bool { return u.isSmall() && u.small == 0 }

// words returns the normalized little-endian word slice for u, materializing
// the inline form into a private one-word slice when needed. Callers must
// not retain or mutate the result.
func (u *UBig) words() []Word {
	if !u.isSmall() {
		return u.large
	}
	if u.small == 0 {
		return nil
	}
	return []Word{u.small}
}

// fromWords finalizes a (possibly denormalized) word slice into a canonical
// UBig, collapsing to the inline form when at most one nonzero word
// remains. It takes ownership of w: callers must not retain or mutate it
// afterwards.
func fromWords(w []Word) *UBig {
	n := len(w)
	for n > 0 && w[n-1] == 0 {
		n--
	}
	w = w[:n]
	switch len(w) {
	case 0:
		return NewUBig(0)
	case 1:
		return NewUBig(uint64(w[0]))
	default:
		return &UBig{large: w}
	}
}

// BitLen returns the number of bits required to represent u, i.e. 0 for u
// == 0 and floor(log2(u))+1 otherwise.
func (u *UBig) BitLen() int {
	w := u.words()
	if len(w) == 0 {
		return 0
	}
	top := w[len(w)-1]
	return (len(w)-1)*wordBits + int(wordBits-nlz(top))
}

// Cmp returns -1, 0 or +1 as u is less than, equal to, or greater than v.
func (u *UBig) Cmp(v *UBig) int {
	return cmpWords(u.words(), v.words())
}

// Equal reports whether u and v represent the same value.
func (u *UBig) Equal(v *UBig) bool {
	return u.Cmp(v) == 0
}

// cmpWords compares two normalized little-endian word slices.
func cmpWords(x, y []Word) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// cloneWords returns an independent copy of a word slice, for kernels that need
// an owned scratch buffer seeded with an operand's current value.
func cloneWords(x []Word) []Word {
	if len(x) == 0 {
		return nil
	}
	c := make([]Word, len(x))
	copy(c, x)
	return c
}
