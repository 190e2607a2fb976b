package modular

import "github.com/tczajka/gobig"

// Pow returns e**exp mod the ring's modulus, by right-to-left
// square-and-multiply. exp is a UBig, so it is non-negative by
// construction: a modular inverse-based path for negative exponents is out
// of scope here (spec.md §4.9/§9 Open Question), matching the plain
// UBig/IBig Pow's own restriction to non-negative exponents.
func (e *Element) Pow(exp *gobig.UBig) *Element {
	result := e.ring.Element(gobig.NewUBig(1))
	base := e
	n := exp.BitLen()
	for i := 0; i < n; i++ {
		if exp.Bit(uint(i)) == 1 {
			result = result.Mul(base)
		}
		if i+1 < n {
			base = base.Square()
		}
	}
	return result
}
