package modular

// Mul returns e*f mod the ring's modulus. Grounded on the distilled-from
// source's ModuloLarge.mul_in_place: multiply the full-width values, then
// reduce the (up to double-width) product back into the ring via the
// cached FastDivisor, per spec.md §4.9.
func (e *Element) Mul(f *Element) *Element {
	e.checkSameRing(f)
	return &Element{ring: e.ring, value: e.ring.fd.Mul(e.value, f.value)}
}

// Square returns e*e mod the ring's modulus, grounded on the distilled-from
// source's ModuloLarge.square_in_place.
func (e *Element) Square() *Element {
	return &Element{ring: e.ring, value: e.ring.fd.Mul(e.value, e.value)}
}
