package fieldElements

import (
	"math/bits"

	"github.com/zkfields/Goldilocks/internal/callcounters"
)

// This file is part of the fieldElements package. See the documentation of field_element.go for general remarks.
//
// This file contains the multiplication variants. The fast ones avoid dividing the 128-bit
// product by exploiting the congruences
//
//	2^64 == 2^32 - 1  and  2^96 == -1  (mod FieldSize),
//
// which turn the high product word into a couple of shifted additions and subtractions. The
// reduction folds are kept as named helpers with their own (weaker) contracts, separately from
// the exported multiplications built on them.

var _ = callcounters.CreateHierarchicalCallCounter("MulReference", "reference multiplications", "Multiplications")

// Mul computes x * y mod FieldSize.
//
// The full 128-bit product is reduced by actual division. This variant is not meant for
// production use; it only serves to test the faster variants below against.
func Mul(x, y FieldElement) FieldElement {
	IncrementCallCounter("MulReference")
	hi, lo := bits.Mul64(x, y)
	// For canonical inputs the product is at most (FieldSize-1)^2, so hi < FieldSize and Div64
	// cannot panic.
	_, rem := bits.Div64(hi, lo, FieldSize)
	return rem
}

var _ = callcounters.CreateHierarchicalCallCounter("MulReduce159", "limb-fold multiplications", "Multiplications")

// MulReduce159 computes x * y mod FieldSize by folding the 32-bit limbs of the product instead of
// dividing. Output is canonical and agrees bitwise with [Mul] on every input pair.
func MulReduce159(x, y FieldElement) FieldElement {
	IncrementCallCounter("MulReduce159")
	hi, lo := bits.Mul64(x, y)
	r := reduce159(hi, lo)
	// Weak-to-full reduction; see the contract of reduce159.
	if r >= FieldSize {
		r -= FieldSize
	}
	return r
}

// reduce159 reduces the 128-bit value hi*2^64 + lo by limb folding.
//
// Split hi into 32-bit limbs c (low) and d (high). Then
//
//	hi*2^64 + lo == lo + c*2^64 + d*2^96 == lo + c*(2^32 - 1) - d  (mod FieldSize).
//
// Both 64-bit overflow corrections add resp. subtract 2^32 - 1, which together with the implicit
// wraparound by 2^64 shifts the value by exactly FieldSize, preserving congruence:
// the subtraction lo - d cannot re-underflow from its correction (the wrapped value is at least
// 2^64 - d > 2^32 - 1), and the final addition cannot re-overflow from its correction (the
// wrapped value is at most 2^64 - 2^32 - 1).
//
// Contract: the result is congruent to the input mod FieldSize and equals either the canonical
// representative or the canonical representative plus FieldSize. Both cases occur: products of
// canonical elements almost always land on the canonical value, but e.g. (FieldSize-1)^2 lands
// above it. Callers wanting canonical output must subtract FieldSize once conditionally.
func reduce159(hi, lo uint64) uint64 {
	c := hi & lowerHalfMask
	d := hi >> 32
	t0, borrow := bits.Sub64(lo, d, 0)
	t0 -= twoTo64ModFieldSize * borrow
	t1 := (c << 32) - c
	r, carry := bits.Add64(t0, t1, 0)
	return r + twoTo64ModFieldSize*carry
}

var _ = callcounters.CreateHierarchicalCallCounter("MulReduceMontgomery", "Montgomery-fold multiplications", "Multiplications")

// MulReduceMontgomery computes a value congruent to x * y * 2^(-64) mod FieldSize, i.e. the
// Montgomery reduction of the plain product.
//
// NOTE the two deviations from the other multiplications, both deliberate: the result carries a
// factor of 2^(-64), and it is NOT guaranteed canonical -- it may exceed the canonical
// representative by FieldSize. Outputs of this pipeline are meant to be compared against other
// outputs of the same pipeline via [MontgomeryEquals]; anything else requires an explicit final
// conditional subtraction of FieldSize by the caller.
func MulReduceMontgomery(x, y FieldElement) FieldElement {
	IncrementCallCounter("MulReduceMontgomery")
	hi, lo := bits.Mul64(x, y)
	return reduceMontgomery(hi, lo)
}

// reduceMontgomery performs one REDC step for radix 2^64 on the 128-bit value hi*2^64 + lo,
// returning a value congruent to (hi*2^64 + lo) * 2^(-64) mod FieldSize.
//
// In a generic REDC one would compute m = lo * negativeInverseFieldSize mod 2^64 and then
// (hi*2^64 + lo + m*FieldSize) / 2^64. The shape of the modulus collapses both multiplications
// into 32-bit shifts: b recombines lo's limbs so that hi - b is exactly that quotient, up to the
// final borrow. The borrow correction subtracts 2^32 - 1 via the usual all-ones-or-zero 32-bit
// mask, which together with the wraparound shifts the value by exactly FieldSize.
//
// The result is below 2^64 but not necessarily canonical (off by at most one FieldSize).
func reduceMontgomery(hi, lo uint64) uint64 {
	a, e := bits.Add64(lo, lo<<32, 0)
	b := a - (a >> 32) - e
	r, borrow := bits.Sub64(hi, b, 0)
	return r - uint64(uint32(0)-uint32(borrow))
}
