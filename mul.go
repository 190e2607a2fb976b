package gobig

// karatsubaThreshold is the operand length (in words) above which
// multiplication switches from schoolbook to Karatsuba. It is a tuning
// constant, not a correctness contract (spec.md §9): a package-level var so
// benchmarks and the threshold=0 / threshold=large correctness tests in
// mul_test.go can override it.
var karatsubaThreshold = 40

// basicMul multiplies x and y by the schoolbook O(n*m) algorithm and
// leaves the (denormalized) result in z[0 : len(x)+len(y)]. z must already
// be that long. Follows nat.basicMul.
func basicMul(z, x, y []Word) {
	clear(z[:len(x)+len(y)])
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// karatsubaAdd performs z[0:n+n/2] += x[0:n] without bounds checks, used
// only inside karatsuba to recombine partial products.
func karatsubaAdd(z, x []Word, n int) {
	if c := addVV(z[0:n], z, x); c != 0 {
		addVW(z[n:n+n>>1], z[n:], c)
	}
}

// karatsubaSub is karatsubaAdd's subtracting counterpart.
func karatsubaSub(z, x []Word, n int) {
	if c := subVV(z[0:n], z, x); c != 0 {
		subVW(z[n:n+n>>1], z[n:], c)
	}
}

// karatsubaLen computes the largest k <= n such that k = p<<i for some
// p <= max(karatsubaThreshold, 1) and i >= 0: the largest
// power-of-two-aligned prefix length still worth recursing on. It is never
// 0 for n >= 1, even with a threshold of 0.
func karatsubaLen(n int) int {
	i := uint(0)
	for n > karatsubaThreshold && n > 1 {
		n >>= 1
		i++
	}
	return n << i
}

// karatsuba multiplies x and y (same length n, a power of two) and leaves
// the (denormalized) result in z[0:2*n]. z must have length >= 6*n:
// the extra room is recursion scratch. Follows nat.karatsuba, with the
// constant-time (zcap) machinery removed since this library makes no
// constant-time guarantee.
func karatsuba(z, x, y []Word) {
	n := len(y)
	if n&1 != 0 || n < karatsubaThreshold || n < 2 {
		basicMul(z, x, y)
		return
	}

	n2 := n >> 1
	x1, x0 := x[n2:], x[0:n2]
	y1, y0 := y[n2:], y[0:n2]

	karatsuba(z, x0, y0)     // z0 = x0*y0
	karatsuba(z[n:], x1, y1) // z2 = x1*y1

	neg := false
	xd := z[2*n : 2*n+n2]
	if c := subVV(xd, x1, x0); c != 0 {
		subVV(xd, x0, x1)
		neg = !neg
	}
	yd := z[2*n+n2 : 3*n]
	if c := subVV(yd, y0, y1); c != 0 {
		subVV(yd, y1, y0)
		neg = !neg
	}

	p := z[3*n:]
	karatsuba(p, xd, yd)

	r := z[4*n:]
	copy(r, z[:2*n])

	zn2 := z[n2 : 2*n]
	karatsubaAdd(zn2, r, n)
	karatsubaAdd(zn2, r[n:], n)
	if !neg {
		karatsubaAdd(zn2, p, n)
	} else {
		karatsubaSub(zn2, p, n)
	}
}

// addAt implements z[i:] += x (z must be long enough); used to add in the
// cross terms cmul's Karatsuba split leaves out when operand lengths
// differ or aren't an exact power of two.
func addAt(z, x []Word, i int) {
	if n := len(x); n > 0 {
		if c := addVV(z[i:i+n], z[i:], x); c != 0 {
			if j := i + n; j < len(z) {
				addVW(z[j:], z[j:], c)
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// mulWords returns the (denormalized, length len(x)+len(y)) product of x
// and y. Dispatches to schoolbook or Karatsuba per spec.md §4.4. Grounded
// directly on nat.cmul.
func mulWords(x, y []Word) []Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil
	}
	if n == 1 {
		z := make([]Word, m+1)
		z[m] = mulAddVWW(z[0:m], x, y[0], 0)
		return z
	}

	if n < karatsubaThreshold {
		z := make([]Word, m+n)
		basicMul(z, x, y)
		return z
	}

	k := karatsubaLen(n)
	x0, y0 := x[0:k], y[0:k]
	z := make([]Word, maxInt(6*k, m+n))
	karatsuba(z[:6*k], x0, y0)
	z = z[0 : m+n]
	clear(z[2*k:])

	if k < n || m != n {
		y1 := y[k:]
		t := mulWords(x0, y1)
		addAt(z, t, k)

		for i := k; i < len(x); i += k {
			xi := x[i:]
			if len(xi) > k {
				xi = xi[:k]
			}
			t = mulWords(xi, y0)
			addAt(z, t, i)
			t = mulWords(xi, y1)
			addAt(z, t, i+k)
		}
	}
	return z
}

// addSignedMulSameLen adds (positive) or subtracts (!positive) x*y into z,
// where x and y have equal length n and z has length 2*n, returning the
// carry/borrow out of the top word. It takes its 2*n-word product scratch
// from arena instead of allocating, per spec.md §4.4's explicit-arena
// discipline. This is the primitive the modular multiplier (reduce.go) uses
// to compute a product into an already-zeroed slot before dividing it down
// mod m, per spec.md §4.4/§4.9.
func addSignedMulSameLen(z []Word, positive bool, x, y []Word, arena *Arena) Word {
	if len(x) != len(y) || len(z) != 2*len(x) {
		panic("gobig: addSignedMulSameLen: mismatched lengths")
	}
	product := arena.alloc(2 * len(x))
	basicMul(product, x, y)
	if positive {
		return addVV(z, z, product)
	}
	return subVV(z, z, product)
}

// Mul returns u*v.
func (u *UBig) Mul(v *UBig) *UBig {
	if u.isSmall() && v.isSmall() {
		hi, lo := mulWW(u.small, v.small)
		if hi == 0 {
			return NewUBig(uint64(lo))
		}
	}
	return fromWords(mulWords(u.words(), v.words()))
}

// Square returns u*u. It is equivalent to u.Mul(u) but reads more clearly
// at call sites that square a value (e.g. modular exponentiation).
func (u *UBig) Square() *UBig {
	return u.Mul(u)
}

// MulRange returns the product of all integers in [a, b] inclusive (1 if
// the range is empty, i.e. a > b). It follows the same divide-and-conquer
// product pattern as nat.mulRange, and is a supplemented feature beyond
// the base arithmetic set.
func MulRange(a, b uint64) *UBig {
	switch {
	case a == 0:
		return NewUBig(0)
	case a > b:
		return NewUBig(1)
	case a == b:
		return NewUBig(a)
	case a+1 == b:
		return NewUBig(a).Mul(NewUBig(b))
	}
	m := a + (b-a)/2
	return MulRange(a, m).Mul(MulRange(m+1, b))
}
