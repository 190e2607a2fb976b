// Package modular implements residue-class arithmetic over a fixed
// modulus, grounded on the distilled-from source's own modular ring
// (modular/mul.go in the original, ModuloRing/ModuloRingLarge/ModuloLarge).
// A Ring precomputes a normalized modulus and fast divisor once, at
// construction, via gobig.FastDivisor: every Element it produces stores its
// value already shifted into that normalized form, so Add/Sub/Mul never
// re-derive the shift or rebuild the divisor per operation (spec.md §4.9,
// §9's "fast divisors as values, not singletons: every ring caches its
// own").
package modular

import "github.com/tczajka/gobig"

// Ring is a fixed modulus greater than 1. Elements produced by a Ring
// belong to it by pointer identity: mixing Elements from two different
// Rings, even ones built from an equal modulus, panics (spec.md §4.9/§7).
type Ring struct {
	modulus *gobig.UBig
	fd      *gobig.FastDivisor
}

// NewRing constructs a Ring for the given modulus, which must be > 1.
func NewRing(m *gobig.UBig) *Ring {
	if m.Cmp(gobig.NewUBig(1)) <= 0 {
		panic("gobig/modular: ring modulus must be greater than 1")
	}
	return &Ring{modulus: m, fd: gobig.NewFastDivisor(m)}
}

// Modulus returns the ring's modulus.
func (r *Ring) Modulus() *gobig.UBig { return r.modulus }
