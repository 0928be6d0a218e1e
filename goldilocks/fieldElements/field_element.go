// Package fieldElements implements arithmetic in the prime field of size
// p = 2^64 - 2^32 + 1 == 0xFFFFFFFF_00000001 (commonly called the Goldilocks field).
//
// Field elements are plain uint64 values; there is no wrapper struct. An element is called
// canonical if it lies in [0, FieldSize). Every arithmetic function in this package requires
// canonical inputs; whether the output is again canonical depends on the function and is part of
// its documented contract. Two representation regimes occur:
//
//   - canonical: the unique representative in [0, FieldSize). Produced by [Add], [AddFast],
//     [AddWinterfell], [Mul] and [MulReduce159].
//   - lazily reduced: congruent to the true result mod FieldSize, but possibly exceeding the
//     canonical representative by exactly FieldSize. Produced by [MulReduceMontgomery] (whose
//     output additionally carries a factor 2^-64). Values in this regime must not be compared
//     with == against canonical values; use [MontgomeryEquals] on outputs of the same reduction
//     pipeline, or reduce fully first.
//
// For each of addition and multiplication the package deliberately keeps several independent
// implementations: a reference one that reduces by 128-bit division and serves as the
// correctness oracle, and faster ones that exploit the shape of the modulus
// (2^64 == 2^32 - 1 and 2^96 == -1 mod FieldSize). The fast variants exist to be measured
// against each other; the benchmark suite groups them accordingly, and builds with the
// callcounters tag count how often each variant runs.
//
// None of the branch-free code here is claimed to be constant-time in the cryptographic sense;
// masks and carry flags are used for speed.
package fieldElements

import (
	"github.com/zkfields/Goldilocks/internal/callcounters"
)

// FieldElement is an element of the prime field of size FieldSize, stored as its representative.
// It is a type alias, so FieldElement and uint64 values mix freely; the name only carries intent.
//
// Unless documented otherwise, functions taking FieldElement arguments require them to be
// canonical, i.e. reduced to [0, FieldSize).
type FieldElement = uint64

// Call counter roots. The per-function counters registered next to each operation add to these;
// increments only happen in builds with the callcounters tag.
var (
	_ = callcounters.CreateHierarchicalCallCounter("FieldOps", "Field Operations", "")
	_ = callcounters.CreateHierarchicalCallCounter("Additions", "", "FieldOps")
	_ = callcounters.CreateHierarchicalCallCounter("Multiplications", "", "FieldOps")
	_ = callcounters.CreateHierarchicalCallCounter("Comparisons", "", "FieldOps")
	_ = callcounters.CreateHierarchicalCallCounter("Samplings", "", "FieldOps")
)
