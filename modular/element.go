package modular

import "github.com/tczajka/gobig"

// Element is a value reduced modulo its Ring. Internally it holds the
// value already shifted into the ring's normalized form (value<<s reduced
// mod m<<s, per spec.md §4.9); Residue undoes the shift to recover the
// plain representative in [0, modulus). The zero value is not valid;
// obtain one through Ring.Element.
type Element struct {
	ring  *Ring
	value *gobig.UBig
}

// Element returns u mod r as an Element of r.
func (r *Ring) Element(u *gobig.UBig) *Element {
	return &Element{ring: r, value: r.fd.Normalize(u)}
}

// Ring returns the Ring e belongs to.
func (e *Element) Ring() *Ring { return e.ring }

// Residue returns e's representative in [0, modulus).
func (e *Element) Residue() *gobig.UBig { return e.ring.fd.Residue(e.value) }

// checkSameRing panics if e and f do not belong to the same Ring (compared
// by pointer identity, not by equal modulus), per spec.md §4.9/§7: mixing
// rings is a programmer error, not a recoverable one.
func (e *Element) checkSameRing(f *Element) {
	if e.ring != f.ring {
		panic("gobig/modular: arithmetic requires operands from the same ring")
	}
}

// Add returns e+f mod the ring's modulus.
func (e *Element) Add(f *Element) *Element {
	e.checkSameRing(f)
	return &Element{ring: e.ring, value: e.ring.fd.Add(e.value, f.value)}
}

// Sub returns e-f mod the ring's modulus.
func (e *Element) Sub(f *Element) *Element {
	e.checkSameRing(f)
	return &Element{ring: e.ring, value: e.ring.fd.Sub(e.value, f.value)}
}

// Neg returns -e mod the ring's modulus.
func (e *Element) Neg() *Element {
	return &Element{ring: e.ring, value: e.ring.fd.Neg(e.value)}
}

// Equal reports whether e and f hold the same residue in the same ring.
func (e *Element) Equal(f *Element) bool {
	e.checkSameRing(f)
	return e.value.Equal(f.value)
}
