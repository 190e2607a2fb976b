package gobig

// normalizeWords strips high-order zero words from a (possibly
// denormalized) word slice in place, returning the normalized suffix.
func normalizeWords(x []Word) []Word {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// divWord divides the multi-word dividend x by the single word y, returning
// the (normalized) quotient and the remainder. Follows nat.divW, adapted to
// use the fastDiv1 reciprocal divisor of §4.1/§4.5 instead of a bare
// hardware divide per digit.
func divWord(x []Word, y Word) (q []Word, r Word) {
	if y == 0 {
		panic(panicDivisionByZero)
	}
	if len(x) == 0 {
		return nil, 0
	}
	if y == 1 {
		return cloneWords(x), 0
	}

	shift := nlz(y)
	yn := y << shift
	fd := newFastDiv1(yn)

	xshift := make([]Word, len(x))
	carry := shlVU(xshift, x, shift)

	q = make([]Word, len(x))
	rem := carry
	for i := len(x) - 1; i >= 0; i-- {
		q[i], rem = fd.divRem(rem, xshift[i])
	}
	r = rem >> shift
	return normalizeWords(q), r
}

// algorithmD runs the quotient-digit loop of Knuth's Algorithm D (Volume 2,
// §4.3.1) against a dividend u and normalized divisor v (v's top word has
// its top bit set) that are already consistently shift-normalized, using
// the precomputed 3-by-2 fast divisor fd for v's top two words. u must have
// length len(q)-1+len(v)+1; it is overwritten in place and ends with the
// normalized remainder in u[:len(v)]. qhatv is len(v)+1 words of scratch for
// the per-step qhat*v product. Shared by divLarge, which derives shift and
// fd fresh every call, and FastDivisor's reduction path (reduce.go), which
// caches both across every element of a ring.
func algorithmD(u, v []Word, fd fastDiv2, q, qhatv []Word) {
	n := len(v)
	m := len(q) - 1

	for j := m; j >= 0; j-- {
		var qhat Word
		if u[j+n] == v[n-1] {
			qhat = maxWord
		} else {
			qhat = fd.estimate(u[j+n], u[j+n-1], u[j+n-2])
		}

		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		c := subVV(u[j:j+len(qhatv)], u[j:], qhatv)
		if c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}
}

// divLarge divides the dividend uIn by the multi-word (len(v) >= 2) divisor
// v using Knuth's Algorithm D via the 3-by-2 fastDiv2 estimate, returning
// normalized quotient and remainder. Follows nat.divLarge.
func divLarge(uIn, v []Word) (q, r []Word) {
	n := len(v)
	m := len(uIn) - n

	shift := nlz(v[n-1])
	if shift > 0 {
		vn := make([]Word, n)
		shlVU(vn, v, shift)
		v = vn
	}

	u := make([]Word, len(uIn)+1)
	u[len(uIn)] = shlVU(u[0:len(uIn)], uIn, shift)

	fd2 := newFastDiv2(v[n-1], v[n-2])
	q = make([]Word, m+1)
	qhatv := make([]Word, n+1)

	algorithmD(u, v, fd2, q, qhatv)

	q = normalizeWords(q)
	shrVU(u, u, shift)
	r = normalizeWords(u[:n])
	return q, r
}

// divWords divides x by y (y != 0), returning the normalized quotient and
// remainder. Dispatches between the short-division and Algorithm-D paths
// per spec.md §4.5.
func divWords(x, y []Word) (q, r []Word) {
	if len(y) == 0 {
		panic(panicDivisionByZero)
	}
	if cmpWords(x, y) < 0 {
		return nil, cloneWords(x)
	}
	if len(y) == 1 {
		qq, rr := divWord(x, y[0])
		if rr == 0 {
			return qq, nil
		}
		return qq, []Word{rr}
	}
	return divLarge(x, y)
}

// QuoRem returns (u/v, u%v). It panics with an identifying message if v ==
// 0 (DivisionByZero is fatal, per spec.md §7).
func (u *UBig) QuoRem(v *UBig) (q, r *UBig) {
	if v.IsZero() {
		panic(panicDivisionByZero)
	}
	if u.isSmall() && v.isSmall() {
		return NewUBig(uint64(u.small / v.small)), NewUBig(uint64(u.small % v.small))
	}
	qw, rw := divWords(u.words(), v.words())
	return fromWords(qw), fromWords(rw)
}

// Quo returns u/v (truncated toward zero, as both operands are unsigned).
func (u *UBig) Quo(v *UBig) *UBig {
	q, _ := u.QuoRem(v)
	return q
}

// Rem returns u%v.
func (u *UBig) Rem(v *UBig) *UBig {
	_, r := u.QuoRem(v)
	return r
}

// ModWord returns u % d for a single machine word divisor d != 0, as a
// Word. Follows nat.modW; the quotient is computed by divWord and discarded.
func (u *UBig) ModWord(d Word) Word {
	if d == 0 {
		panic(panicDivisionByZero)
	}
	w := u.words()
	if len(w) == 0 {
		return 0
	}
	if d == 1 {
		return 0
	}
	_, r := divWord(w, d)
	return r
}

// Sqrt returns floor(sqrt(u)). Follows nat.sqrt (Newton's method, Brent &
// Zimmermann, Modern Computer Arithmetic, Algorithm 1.13), a supplemented
// feature beyond the base arithmetic set.
func (u *UBig) Sqrt() *UBig {
	if u.Cmp(oneUBig) <= 0 {
		return u
	}
	z1 := NewUBig(1).Lsh(uint(u.BitLen()/2 + 1))
	for {
		z2, _ := u.QuoRem(z1)
		z2 = z2.Add(z1)
		z2 = z2.Rsh(1)
		if z2.Cmp(z1) >= 0 {
			return z1
		}
		z1 = z2
	}
}
