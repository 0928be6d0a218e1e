package fieldElements

import (
	"github.com/zkfields/Goldilocks/internal/callcounters"
)

// This file is part of the fieldElements package. See the documentation of field_element.go for general remarks.

var _ = callcounters.CreateHierarchicalCallCounter("EqMontgomery", "Montgomery-pipeline equality checks", "Comparisons")

// MontgomeryEquals reports whether lhs and rhs are bit-for-bit identical, without branching.
//
// Despite the name, this is exact equality of representatives, NOT equality as field elements:
// two values differing by FieldSize compare unequal. It is the right comparison for two outputs
// of the same deterministic reduction pipeline (such as two [MulReduceMontgomery] results);
// comparing values across reduction regimes requires reducing both sides fully first.
//
// Mechanics: t = lhs XOR rhs is 0 iff the inputs are equal; t | -t has the top bit set iff
// t != 0; the arithmetic right shift smears that bit into an all-ones-or-zero word, whose
// complement is compared against all-ones.
func MontgomeryEquals(lhs, rhs FieldElement) bool {
	IncrementCallCounter("EqMontgomery")
	t := lhs ^ rhs
	return ^uint64(int64(t|-t)>>63) == ^uint64(0)
}
