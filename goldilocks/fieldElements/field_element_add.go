package fieldElements

import (
	"math/bits"

	"github.com/zkfields/Goldilocks/internal/callcounters"
)

// This file is part of the fieldElements package. See the documentation of field_element.go for general remarks.
//
// This file contains the addition variants. All of them require canonical inputs and return the
// canonical sum; they only differ in how the single reduction step is performed. Add is the
// reference everything else is tested against.

var _ = callcounters.CreateHierarchicalCallCounter("AddReference", "reference additions", "Additions")

// Add computes x + y mod FieldSize.
//
// The sum is formed exactly as a (carry, 64-bit) pair and reduced by actual division. This
// variant is not meant for production use; it only serves to test the faster variants below
// against.
func Add(x, y FieldElement) FieldElement {
	IncrementCallCounter("AddReference")
	sum, carry := bits.Add64(x, y, 0)
	// carry <= 1 < FieldSize, so Div64 cannot panic.
	_, rem := bits.Div64(carry, sum, FieldSize)
	return rem
}

var _ = callcounters.CreateHierarchicalCallCounter("AddFast", "single-subtraction additions", "Additions")

// AddFast computes x + y mod FieldSize using at most one subtraction of FieldSize instead of a
// division.
//
// For canonical inputs the exact sum lies in [0, 2*FieldSize), so subtracting FieldSize once --
// exactly when the sum is at least FieldSize -- reaches the canonical representative. In the
// carry case the exact sum is 2^64 + sum; the wrapping subtraction sum - FieldSize then yields
// 2^64 + sum - FieldSize, which is the correct reduced value.
func AddFast(x, y FieldElement) FieldElement {
	IncrementCallCounter("AddFast")
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 || sum >= FieldSize {
		sum -= FieldSize
	}
	return sum
}

var _ = callcounters.CreateHierarchicalCallCounter("AddWinterfell", "borrow-mask additions", "Additions")

// AddWinterfell computes x + y mod FieldSize without branching, in the style of the Winterfell
// STARK library's field code.
//
// It rewrites the sum as x - (FieldSize - y), well-defined since y is canonical. If that
// subtraction does not borrow, the result is x + y - FieldSize, already canonical. If it borrows,
// the wrapped result exceeds the true sum x + y by 2^64 - FieldSize == 2^32 - 1; the correction
// subtracts exactly that, as a 32-bit all-ones-or-zero mask derived from the borrow flag and
// widened to 64 bits.
func AddWinterfell(x, y FieldElement) FieldElement {
	IncrementCallCounter("AddWinterfell")
	d, borrow := bits.Sub64(x, FieldSize-y, 0)
	return d - uint64(uint32(0)-uint32(borrow))
}
