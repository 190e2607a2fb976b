package gobig

// Pow returns u**e. Follows nat.expNN non-modular path:
// a left-to-right, most-significant-bit-first square-and-multiply walk
// over e's bits.
func (u *UBig) Pow(e *UBig) *UBig {
	if e.IsZero() {
		return NewUBig(1)
	}
	n := e.BitLen()
	result := NewUBig(1)
	for i := n - 1; i >= 0; i-- {
		result = result.Square()
		if e.Bit(uint(i)) == 1 {
			result = result.Mul(u)
		}
	}
	return result
}

// Pow returns x**e for a non-negative exponent e (spec.md §4.7: "power of
// non-negative exponent"; a UBig exponent enforces that at the type level).
// The result is negative exactly when x is negative and e is odd.
func (x *IBig) Pow(e *UBig) *IBig {
	mag := x.mag.Pow(e)
	sign := Positive
	if x.sign == Negative && e.Bit(0) == 1 {
		sign = Negative
	}
	return normalizeSign(sign, mag)
}
