package gobig

import "math/bits"

// addWords returns x+y as a freshly allocated, normalized word slice. x and
// y need not have equal length. Follows nat.cadd.
func addWords(x, y []Word) []Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	switch {
	case m == 0:
		return nil
	case n == 0:
		return cloneWords(x)
	}
	z := make([]Word, m+1)
	c := addVV(z[:n], x[:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z
}

// subWords returns x-y as a freshly allocated, normalized word slice. The
// caller must guarantee x >= y (the UBig/IBig wrappers enforce this with a
// magnitude compare before calling down into subWords).
func subWords(x, y []Word) []Word {
	m, n := len(x), len(y)
	if m < n {
		panic("gobig: subWords underflow")
	}
	switch {
	case m == 0:
		return nil
	case n == 0:
		return cloneWords(x)
	}
	z := make([]Word, m)
	c := subVV(z[:n], x[:n], y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("gobig: subWords underflow")
	}
	return z
}

// Add returns u+v.
func (u *UBig) Add(v *UBig) *UBig {
	if u.isSmall() && v.isSmall() {
		sum, carry := bits.Add(u.small, v.small, 0)
		if carry == 0 {
			return NewUBig(uint64(sum))
		}
	}
	return fromWords(addWords(u.words(), v.words()))
}

// Sub returns u-v. It panics with an identifying message if v > u: UBig is
// unsigned, so use IBig if a possibly-negative result is wanted.
func (u *UBig) Sub(v *UBig) *UBig {
	if u.Cmp(v) < 0 {
		panic("gobig: UBig.Sub: negative result")
	}
	if u.isSmall() && v.isSmall() {
		return NewUBig(uint64(u.small - v.small))
	}
	return fromWords(subWords(u.words(), v.words()))
}
