package fieldElements

import (
	"math/big"
)

// This file is part of the fieldElements package. See the documentation of field_element.go for general remarks.
//
// This file collects the constants of the field implementation: the modulus in several typed
// versions and the derived constants the reduction algorithms are built on.
//
// NOTES:
//   - We often define multiple versions of a given constant that differ in type, for convenience.
//     The convention is to suffix the constant with a tag for the type:
//       - _Int for *big.Int
//       - _untyped for untyped constants
//       - _string for a string representation (hex-prefixed; formatted so that [*big.Int.SetString]
//         with base 0 understands it)
//     Constants without a suffix carry their natural concrete type.
//   - The consistency of the derived constants is checked in init (and again, more thoroughly,
//     by the tests); the checks on untyped constants are exact and folded at compile time.

const (
	// FieldSize_untyped is the size (i.e. prime modulus) of the field as an untyped constant,
	// usable in other constant expressions.
	FieldSize_untyped = 0xFFFFFFFF_00000001 // == 2^64 - 2^32 + 1 == 18446744069414584321

	// FieldSize_string is the size of the field as a string.
	FieldSize_string = "0xFFFFFFFF00000001"
)

// FieldSize is the size (i.e. prime modulus) of the field as a uint64.
const FieldSize uint64 = FieldSize_untyped

// FieldSize_Int is the size (i.e. prime modulus) of the field as a [*big.Int].
// It exists for differential tests against big-integer arithmetic. DO NOT MODIFY.
var FieldSize_Int *big.Int = initIntFromString(FieldSize_string)

// fieldSize_Int is an internal deep copy of [FieldSize_Int]. It is not exported, so package code
// cannot be affected by users modifying the exported variable.
var fieldSize_Int *big.Int = new(big.Int).Set(FieldSize_Int)

// fieldSize_32_i is the i'th little-endian 32-bit word of the modulus. The fast reduction code is
// organized around this limb split (the high word is all-ones, the low word is 1).
const (
	fieldSize_32_0 uint32 = (FieldSize_untyped >> (iota * 32)) & 0xFFFFFFFF
	fieldSize_32_1
)

// FieldBitLength is the bitlength of FieldSize.
const FieldBitLength = 64

// FieldByteLength is the length of FieldSize in bytes.
const FieldByteLength = 8

// twoTo64ModFieldSize is 2^64 mod FieldSize == 2^32 - 1. This is the amount by which a 64-bit
// wraparound misstates a value mod FieldSize, hence the correction constant of all fast reduction
// routines in this package. For Montgomery radix 2^64 it is also the Montgomery representation of 1.
const twoTo64ModFieldSize uint64 = (1 << 64) - FieldSize_untyped

// lowerHalfMask selects the low 32-bit limb of a 64-bit word.
const lowerHalfMask uint64 = 0xFFFFFFFF

// negativeInverseFieldSize is -FieldSize^(-1) mod 2^64, i.e. the µ of Montgomery's REDC for radix
// 2^64. The reduction code never actually multiplies by it -- the shape of the modulus collapses
// that multiplication into shifts -- but the constant states (and init checks) what the shifts
// implement.
const (
	negativeInverseFieldSize_untyped = 0xFFFFFFFE_FFFFFFFF
	negativeInverseFieldSize         uint64 = negativeInverseFieldSize_untyped
)

// oneHalfModFieldSize is (FieldSize+1)/2, the multiplicative inverse of 2 mod FieldSize.
const oneHalfModFieldSize uint64 = (FieldSize_untyped + 1) / 2

// Important constants of type FieldElement.
const (
	FieldElementZero     FieldElement = 0
	FieldElementOne      FieldElement = 1
	FieldElementTwo      FieldElement = 2
	FieldElementMinusOne FieldElement = FieldSize - 1
)

// initIntFromString initializes a *big.Int from a string understood by SetString with base 0.
// Panics on failure; only used to initialize package-level constants from literals.
func initIntFromString(input string) *big.Int {
	ret := new(big.Int)
	_, ok := ret.SetString(input, 0)
	if !ok {
		panic("fieldElements: initIntFromString could not parse \"" + input + "\"")
	}
	return ret
}

func init() {
	// Exact constant arithmetic; these comparisons are folded at compile time.
	if uint64(fieldSize_32_1)<<32|uint64(fieldSize_32_0) != FieldSize {
		panic("fieldElements: 32-bit words of the modulus are inconsistent")
	}
	if twoTo64ModFieldSize != (1<<32)-1 {
		panic("fieldElements: 2^64 mod FieldSize is inconsistent")
	}
	if (negativeInverseFieldSize_untyped*FieldSize_untyped+1)%(1<<64) != 0 {
		panic("fieldElements: negative inverse of the modulus mod 2^64 is inconsistent")
	}
	if (2*((FieldSize_untyped+1)/2))%FieldSize_untyped != 1 {
		panic("fieldElements: inverse of two is inconsistent")
	}
}
