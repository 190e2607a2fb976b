package gobig

import "math/bits"

// fastDiv1 is a precomputed reciprocal for a normalized single-word divisor
// (top bit of d set), per spec.md §4.1. It turns the repeated divisions of
// the non-power-of-two radix conversion path, and the short-division path
// in div.go, into one widening multiply plus small corrections instead of a
// hardware division per step.
//
// The reciprocal follows the standard "Improved division by invariant
// integers" construction (Möller & Granlund): v = floor((B^2-1)/d) - B,
// where B = 2^wordBits.
type fastDiv1 struct {
	d Word // normalized divisor: d >= 1<<(wordBits-1)
	v Word // reciprocal word
}

// newFastDiv1 precomputes the reciprocal of a normalized divisor d. d must
// have its top bit set; callers normalize by shifting both divisor and
// dividend left by nlz(d) first.
func newFastDiv1(d Word) fastDiv1 {
	if d == 0 {
		panic(panicDivisionByZero)
	}
	if nlz(d) != 0 {
		panic("gobig: fastDiv1 requires a normalized divisor")
	}
	v, _ := bits.Div(maxWord-d, maxWord, d)
	return fastDiv1{d: d, v: Word(v)}
}

// divRemWord divides the single word n by the divisor, returning quotient
// and remainder. It is the degenerate (hi==0) case of divRem.
func (f fastDiv1) divRemWord(n Word) (q, r Word) {
	return f.divRem(0, n)
}

// divRem divides the two-word dividend hi:lo by the divisor, returning a
// quotient that fits in one word and the remainder. Precondition: hi < d
// (guaranteed by normalized long division, where hi is always a partial
// remainder strictly smaller than the divisor).
func (f fastDiv1) divRem(hi, lo Word) (q, r Word) {
	q1, q0 := mulWW(f.v, hi)
	var carry Word
	q0c, c0 := bits.Add(q0, lo, 0)
	q0 = q0c
	carry = Word(c0)
	q1, _ = bits.Add(q1, hi, uint(carry))
	q1++

	r = lo - q1*f.d
	if r > q0 {
		q1--
		r += f.d
	}
	if r >= f.d {
		q1++
		r -= f.d
	}
	return q1, r
}

// fastDiv2 is a normalized two-word divisor (top bit of the high word set)
// used by the 3-by-2 estimation step of Knuth's Algorithm D (div.go). It
// caches the high word's own reciprocal so the quotient-digit estimate at
// each position is a multiply-and-correct instead of a bare hardware
// division, per spec.md §4.1/§4.5.
type fastDiv2 struct {
	d1, d0 Word
	hi     fastDiv1
}

// newFastDiv2 precomputes a 3-by-2 fast divisor from the top two words of a
// normalized divisor (d1 must have its top bit set).
func newFastDiv2(d1, d0 Word) fastDiv2 {
	return fastDiv2{d1: d1, d0: d0, hi: newFastDiv1(d1)}
}

// estimate computes the trial quotient digit for dividend words
// u2:u1:u0 against the divisor d1:d0, where u2 < d1 (the invariant Algorithm
// D maintains at every step), correcting the initial single-word estimate
// by at most two steps as in Knuth Vol. 2 §4.3.1 Algorithm D, step D3.
func (f fastDiv2) estimate(u2, u1, u0 Word) (qhat Word) {
	qhat, rhat := f.hi.divRem(u2, u1)
	for {
		hi, lo := mulWW(qhat, f.d0)
		if hi < rhat || (hi == rhat && lo <= u0) {
			break
		}
		qhat--
		prevRhat := rhat
		rhat += f.d1
		if rhat < prevRhat { // rhat overflowed past B: no further correction possible
			break
		}
	}
	return qhat
}
