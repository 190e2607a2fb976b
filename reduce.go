package gobig

// FastDivisor is a cached, normalized modulus together with its fast
// divisor, meant to be computed once and shared by every element of a
// modular ring. Per spec.md §4.9/§9 ("fast divisors as values, not
// singletons: every ring caches its own"), it precomputes the shift s and
// normalized modulus m' = m<<s at construction instead of re-deriving them
// on every reduction the way the general-purpose QuoRem path does.
type FastDivisor struct {
	shift   uint
	mod     []Word // normalized modulus m<<s; mod[len(mod)-1] has its top bit set
	modUBig *UBig  // mod, wrapped once for the Add/Sub/Neg correction step

	// Exactly one of these is populated, selected by len(mod).
	small fastDiv1
	large fastDiv2

	// arena backs the large-modulus Mul path only; it is reused (via
	// reset) across the repeated squarings of modular exponentiation
	// instead of being reallocated every call.
	arena *Arena
}

// NewFastDivisor precomputes the normalized modulus and fast divisor for m.
// m must be greater than 1; callers (package modular's Ring constructor)
// enforce that before calling in.
func NewFastDivisor(m *UBig) *FastDivisor {
	w := m.words()
	n := len(w)
	shift := nlz(w[n-1])

	mod := make([]Word, n)
	shlVU(mod, w, shift)

	fd := &FastDivisor{shift: shift, mod: mod, modUBig: fromWords(cloneWords(mod))}
	if n == 1 {
		fd.small = newFastDiv1(mod[0])
	} else {
		fd.large = newFastDiv2(mod[n-1], mod[n-2])
		fd.arena = NewArena(fd.mulArenaSize())
	}
	return fd
}

// mulArenaSize returns the scratch the large-modulus Mul path needs: the
// 2n-word product accumulator, the 2n-word buffer addSignedMulSameLen
// multiplies into, and Algorithm D's own u/q/qhatv buffers for reducing
// that 2n-word product back down to n words. mulMemoryRequirement and
// divMemoryRequirement model the same shapes for the general-purpose
// multiply and divide paths (mul.go, div.go); folding their estimate in as
// well keeps this sizing from silently drifting out of step with theirs,
// even though Mul's own schoolbook-only, no-reallocation path makes the
// exact terms before them the binding ones.
func (fd *FastDivisor) mulArenaSize() int {
	n := len(fd.mod)
	need := 2*n + 2*n
	need += (2*n + 1) + (n + 1) + (n + 1)
	need += mulMemoryRequirement(n, n)
	need += divMemoryRequirement(2*n, n)
	return need
}

// padWords zero-extends x to exactly n words; x must already have length <=
// n. It aligns an Element's canonical (possibly shorter) word slice to the
// ring's full n-word width before a fixed-length kernel call.
func padWords(x []Word, n int) []Word {
	if len(x) == n {
		return x
	}
	p := make([]Word, n)
	copy(p, x)
	return p
}

// wordValue returns u's value as a single word. It is only called once the
// ring's modulus is known to fit in one word, so u (already reduced modulo
// it) does too.
func wordValue(u *UBig) Word {
	w := u.words()
	if len(w) == 0 {
		return 0
	}
	return w[0]
}

// remWordsFast divides the multi-word dividend x by fd's divisor,
// discarding the quotient and returning only the remainder. Unlike divWord,
// it takes an already-normalized, already-cached fastDiv1 rather than
// deriving one per call: paying that cost once, at ring construction, is
// the entire point of FastDivisor.
func remWordsFast(x []Word, fd fastDiv1) Word {
	var r Word
	for i := len(x) - 1; i >= 0; i-- {
		_, r = fd.divRem(r, x[i])
	}
	return r
}

// Normalize returns (v<<s) mod m', the shift-normalized representation
// every Element stores internally, per spec.md §4.9's "Element construction
// from U: shift value by s, reduce mod m'" rule. v may be any magnitude,
// smaller or larger than the modulus.
func (fd *FastDivisor) Normalize(v *UBig) *UBig {
	shifted := v.Lsh(fd.shift).words()
	n := len(fd.mod)

	if len(shifted) < n {
		return fromWords(shifted)
	}
	if n == 1 {
		return NewUBig(uint64(remWordsFast(shifted, fd.small)))
	}

	m := len(shifted) - n
	arena := NewArena((len(shifted) + 1) + (m + 1) + (n + 1))
	u := arena.alloc(len(shifted) + 1)
	copy(u, shifted)
	q := arena.alloc(m + 1)
	qhatv := arena.alloc(n + 1)
	algorithmD(u, fd.mod, fd.large, q, qhatv)

	return fromWords(cloneWords(u[:n]))
}

// Residue undoes the shift normalization, returning the canonical value (0
// <= residue < m) a shift-normalized internal value represents. The low s
// bits of a normalized value are always zero (it is exactly (x mod m)<<s),
// so the right shift loses nothing.
func (fd *FastDivisor) Residue(value *UBig) *UBig {
	return value.Rsh(fd.shift)
}

// Add returns (a+b) mod m' for two already shift-normalized values, each
// already < m': the sum needs at most one corrective subtraction.
func (fd *FastDivisor) Add(a, b *UBig) *UBig {
	s := a.Add(b)
	if s.Cmp(fd.modUBig) >= 0 {
		return s.Sub(fd.modUBig)
	}
	return s
}

// Sub returns (a-b) mod m'.
func (fd *FastDivisor) Sub(a, b *UBig) *UBig {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return fd.modUBig.Sub(b.Sub(a))
}

// Neg returns (-a) mod m'.
func (fd *FastDivisor) Neg(a *UBig) *UBig {
	if a.IsZero() {
		return a
	}
	return fd.modUBig.Sub(a)
}

// Mul returns (a*b) mod m' for two already shift-normalized values a =
// ra<<s and b = rb<<s. Their raw product is ra*rb<<(2*s), one shift too
// many to hand straight to the m<<s divider, so the shared shape is:
// multiply, right-shift the product by s back down to ra*rb<<s, then
// reduce by m<<s — the "right-shift by s, divide by m' via the divider"
// sequence spec.md §4.9 specifies. The single-word case runs it over a
// 2-word buffer with the cached fastDiv1; the multi-word case is the
// committed large-mul path: schoolbook multiply into a 2n-word scratch
// buffer via addSignedMulSameLen, then the same Algorithm D reduction
// Normalize uses, all out of one persistent Arena reused across the
// repeated squarings of modular exponentiation (modular/pow.go).
func (fd *FastDivisor) Mul(a, b *UBig) *UBig {
	n := len(fd.mod)
	if n == 1 {
		hi, lo := mulWW(wordValue(a), wordValue(b))
		z := []Word{lo, hi}
		shrVU(z, z, fd.shift)
		return NewUBig(uint64(remWordsFast(z, fd.small)))
	}

	fd.arena.reset()
	x := padWords(a.words(), n)
	y := padWords(b.words(), n)

	z := fd.arena.alloc(2 * n)
	addSignedMulSameLen(z, true, x, y, fd.arena)
	shrVU(z, z, fd.shift)

	u := fd.arena.alloc(2*n + 1)
	copy(u, z)
	q := fd.arena.alloc(n + 1)
	qhatv := fd.arena.alloc(n + 1)
	algorithmD(u, fd.mod, fd.large, q, qhatv)

	return fromWords(cloneWords(u[:n]))
}
