package gobig

import "math/bits"

// shlWords returns x<<k as a freshly allocated, normalized word slice.
// Follows nat.shl and cross-checked against ibig-rs's
// shift.rs word/bit decomposition (spec.md §4.6): k = w*wordBits + b.
func shlWords(x []Word, k uint) []Word {
	if len(x) == 0 {
		return nil
	}
	wshift := int(k / wordBits)
	bshift := k % wordBits
	n := len(x) + wshift
	checkCapacity(n + 1)
	z := make([]Word, n+1)
	if bshift == 0 {
		copy(z[wshift:wshift+len(x)], x)
	} else {
		z[n] = shlVU(z[wshift:n], x, bshift)
	}
	return normalizeWords(z)
}

// shrWords returns x>>k as a freshly allocated, normalized word slice. A
// shift amount that drops every word yields zero (nil), matching spec.md
// §4.6: "A shift amount larger than the bit length yields zero."
func shrWords(x []Word, k uint) []Word {
	wshift := int(k / wordBits)
	bshift := k % wordBits
	if wshift >= len(x) {
		return nil
	}
	n := len(x) - wshift
	z := make([]Word, n)
	if bshift == 0 {
		copy(z, x[wshift:])
	} else {
		shrVU(z, x[wshift:], bshift)
	}
	return normalizeWords(z)
}

// Lsh returns u << k.
func (u *UBig) Lsh(k uint) *UBig {
	if k == 0 {
		return u
	}
	return fromWords(shlWords(u.words(), k))
}

// Rsh returns u >> k, i.e. floor(u / 2^k).
func (u *UBig) Rsh(k uint) *UBig {
	if k == 0 {
		return u
	}
	return fromWords(shrWords(u.words(), k))
}

// Bit returns the value (0 or 1) of the i'th least-significant bit of u.
func (u *UBig) Bit(i uint) uint {
	w := u.words()
	j := i / wordBits
	if j >= uint(len(w)) {
		return 0
	}
	return uint(w[j] >> (i % wordBits) & 1)
}

// TrailingZeroBits returns the number of consecutive zero bits at the
// bottom of u (0 if u == 0).
func (u *UBig) TrailingZeroBits() uint {
	w := u.words()
	if len(w) == 0 {
		return 0
	}
	var i uint
	for w[i] == 0 {
		i++
	}
	return i*wordBits + uint(bits.TrailingZeros(w[i]))
}
