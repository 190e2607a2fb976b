package gobig

// IBig is an arbitrary-precision signed integer: a Sign paired with a
// UBig magnitude (spec.md §3/§4.7). There is no negative zero — whenever
// the magnitude is zero the sign is always Positive. IBig values are
// immutable, like UBig.
type IBig struct {
	sign Sign
	mag  *UBig
}

// NewIBig constructs an IBig from a machine integer.
func NewIBig(v int64) *IBig {
	if v >= 0 {
		return &IBig{sign: Positive, mag: NewUBig(uint64(v))}
	}
	// v == math.MinInt64 would overflow -v as int64; uint64 negation
	// handles every case uniformly.
	return &IBig{sign: Negative, mag: NewUBig(-uint64(v))}
}

// FromUBig wraps a UBig magnitude as a non-negative IBig.
func FromUBig(u *UBig) *IBig {
	return &IBig{sign: Positive, mag: u}
}

// Sign returns x's sign. A zero IBig always reports Positive.
func (x *IBig) Sign() Sign { return x.sign }

// Abs returns |x| as a UBig.
func (x *IBig) Abs() *UBig { return x.mag }

// IsZero reports whether x == 0.
func (x *IBig) IsZero() bool { return x.mag.IsZero() }

// normalizeSign collapses a zero magnitude to Positive, enforcing the "no
// negative zero" invariant at every construction site.
func normalizeSign(sign Sign, mag *UBig) *IBig {
	if mag.IsZero() {
		return &IBig{sign: Positive, mag: mag}
	}
	return &IBig{sign: sign, mag: mag}
}

// Neg returns -x.
func (x *IBig) Neg() *IBig {
	return normalizeSign(x.sign.flip(), x.mag)
}

// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
func (x *IBig) Cmp(y *IBig) int {
	if x.sign != y.sign {
		if x.IsZero() && y.IsZero() {
			return 0
		}
		if x.sign == Negative {
			return -1
		}
		return 1
	}
	c := x.mag.Cmp(y.mag)
	if x.sign == Negative {
		return -c
	}
	return c
}

// Equal reports whether x and y represent the same value.
func (x *IBig) Equal(y *IBig) bool { return x.Cmp(y) == 0 }

// Add returns x+y. Grounded on spec.md §4.7: if signs match, magnitude-add
// and keep the sign; otherwise compare magnitudes, subtract the smaller
// from the larger, and take the sign of the larger (equal magnitudes give
// +0).
func (x *IBig) Add(y *IBig) *IBig {
	if x.sign == y.sign {
		return normalizeSign(x.sign, x.mag.Add(y.mag))
	}
	switch c := x.mag.Cmp(y.mag); {
	case c == 0:
		return normalizeSign(Positive, NewUBig(0))
	case c > 0:
		return normalizeSign(x.sign, x.mag.Sub(y.mag))
	default:
		return normalizeSign(y.sign, y.mag.Sub(x.mag))
	}
}

// Sub returns x-y.
func (x *IBig) Sub(y *IBig) *IBig {
	return x.Add(y.Neg())
}

// Mul returns x*y.
func (x *IBig) Mul(y *IBig) *IBig {
	sign := Positive
	if x.sign != y.sign {
		sign = Negative
	}
	return normalizeSign(sign, x.mag.Mul(y.mag))
}

// QuoRem returns (x/y, x%y), truncated toward zero. The quotient's sign is
// the XOR of the operand signs; the remainder's sign is the sign of the
// dividend x (spec.md §4.7), unless the remainder is zero.
func (x *IBig) QuoRem(y *IBig) (q, r *IBig) {
	qMag, rMag := x.mag.QuoRem(y.mag)
	qSign := Positive
	if x.sign != y.sign {
		qSign = Negative
	}
	return normalizeSign(qSign, qMag), normalizeSign(x.sign, rMag)
}

// Quo returns x/y, truncated toward zero.
func (x *IBig) Quo(y *IBig) *IBig {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns x%y, with the sign of x.
func (x *IBig) Rem(y *IBig) *IBig {
	_, r := x.QuoRem(y)
	return r
}

// Lsh returns x << k: the sign is unchanged and the magnitude is shifted.
func (x *IBig) Lsh(k uint) *IBig {
	return normalizeSign(x.sign, x.mag.Lsh(k))
}

// Rsh returns x >> k.
//
// This is a magnitude right shift, not a sign-extending arithmetic shift:
// the sign is left unchanged and only the magnitude is shifted right (and
// truncated, as UBig.Rsh always truncates toward zero). A negative IBig
// therefore does NOT behave like two's-complement arithmetic shift; e.g.
// NewIBig(-3).Rsh(1) is -1, not -2. This preserves the resolved reading of
// the distilled-from source's own IBig right shift (spec.md §4.6/§9 Open
// Question) and is documented here prominently so callers do not assume
// sign-extending behavior.
func (x *IBig) Rsh(k uint) *IBig {
	return normalizeSign(x.sign, x.mag.Rsh(k))
}
