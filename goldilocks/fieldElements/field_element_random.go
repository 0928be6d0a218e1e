package fieldElements

import (
	"math/rand"

	"github.com/zkfields/Goldilocks/internal/callcounters"
)

// This file is part of the fieldElements package. See the documentation of field_element.go for general remarks.
//
// Random sampling of field elements. The generator is always injected by the caller; this package
// never owns randomness, so tests and benchmarks control reproducibility through seeds.

var _ = callcounters.CreateHierarchicalCallCounter("SampleFe", "random field elements", "Samplings")
var _ = callcounters.CreateHierarchicalCallCounter("SampleVec", "vector samplings", "Samplings")

// A vector sampling counts as one operation at the root; the inner per-element draws are
// attributed under SampleFe and cancelled out of the totals.
var _ = callcounters.CreateAttachedCallCounter("SampleFeFromVec", "drawn by RandomFieldElements", "SampleFe").
	AddThisToTarget("Samplings", -1)

// RandomFieldElement returns one element drawn uniformly from [0, FieldSize), by rejection
// sampling of full 64-bit values. The distribution quality is that of rnd; this is meant for
// tests and benchmarks, not for key material.
//
// A draw is rejected with probability (2^32 - 1) / 2^64, about 2.3e-10, so the loop terminates on
// the first iteration for all practical purposes. Rejection keeps the distribution exactly
// uniform; reducing mod FieldSize instead would favor the 2^32 - 1 smallest values.
func RandomFieldElement(rnd *rand.Rand) FieldElement {
	IncrementCallCounter("SampleFe")
	for {
		if candidate := rnd.Uint64(); candidate < FieldSize {
			return candidate
		}
	}
}

// RandomFieldElements returns a freshly allocated slice of exactly n+1 elements, each drawn
// independently and uniformly from [0, FieldSize).
//
// Note the count: n is the number of elements beyond the first, so n = 0 yields one element.
// Negative n panics.
func RandomFieldElements(rnd *rand.Rand, n int) []FieldElement {
	if n < 0 {
		panic("fieldElements: RandomFieldElements called with a negative number of elements")
	}
	IncrementCallCounter("SampleVec")
	ret := make([]FieldElement, n+1)
	for i := range ret {
		ret[i] = RandomFieldElement(rnd)
		IncrementCallCounter("SampleFeFromVec")
	}
	return ret
}
