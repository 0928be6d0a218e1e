package fieldElements

import (
	"math/rand"
	"testing"

	"github.com/zkfields/Goldilocks/internal/callcounters"
	"github.com/zkfields/Goldilocks/internal/testutils"
)

// This file contains code shared by the tests and benchmarks of this package: setup and teardown
// hooks, the global sinks benchmarks write to, and cached slices of precomputed pseudo-random
// inputs.
//
// The concrete functionality provided is this:
// We provide package-level variables that benchmarked functions write their results to, to keep
// the compiler from optimizing the computation away.
// We provide a facility to sample slices of random-looking field elements, cached per rng seed so
// sub-tests asking for the same seed get identical inputs without re-deriving them.
// We provide common setup entry points that ensure call counters and constant-integrity checks
// are handled uniformly.

// size of the Dump sinks used in benchmarks. benchS is the number of distinct precomputed inputs
// a benchmark loop cycles through; the init assertion ties the two together.
const dumpSizeBench_fe = 1 << 8

const benchS = 1 << 8

func init() {
	testutils.Assert(benchS <= dumpSizeBench_fe)
}

// Benchmark functions write their results to these exported sinks.
var (
	DumpBools_fe [dumpSizeBench_fe]bool
	DumpFe_64    [dumpSizeBench_fe]FieldElement
)

// prepareTestFieldElements registers common teardown code and should be called at the start of
// every (sub-)test; currently it detects modifications of package-level pseudo-constants.
func prepareTestFieldElements(t *testing.T) {
	t.Cleanup(ensureFieldElementConstantsWereNotChanged)
}

// prepareBenchmarkFieldElements runs common setup code and should be called in every
// (sub-)benchmark before the measured loop. Note that it resets all call counters.
func prepareBenchmarkFieldElements(b *testing.B) {
	b.Cleanup(func() { postProcessBenchmarkFieldElements(b); ensureFieldElementConstantsWereNotChanged() })
	resetBenchmarkFieldElements(b)
}

// postProcessBenchmarkFieldElements runs at the end of each benchmark (via b.Cleanup); it folds
// call counters into the benchmark report if the current build includes them.
func postProcessBenchmarkFieldElements(b *testing.B) {
	BenchmarkWithCallCounters(b)
}

// resetBenchmarkFieldElements resets the call counters and the benchmark timer; call it after any
// expensive setup that should not be measured.
func resetBenchmarkFieldElements(b *testing.B) {
	callcounters.ResetAllCounters()
	b.ResetTimer()
}

// CachedFieldElements hands out precomputed slices of canonical field elements, keyed by rng
// seed. Repeated queries with the same key agree on common prefixes.
//
// Usage: CachedFieldElements.GetElements(seed, amount)
var CachedFieldElements = testutils.MakePrecomputedCache[int64, FieldElement](
	testutils.DefaultCreateRandFromSeed,
	func(rng *rand.Rand, key int64) FieldElement {
		return RandomFieldElement(rng)
	},
	nil,
)

// CachedUint64 hands out precomputed slices of unconstrained 64-bit values (NOT reduced mod
// FieldSize; all bit patterns occur), keyed by rng seed.
//
// Usage: CachedUint64.GetElements(seed, amount)
var CachedUint64 = testutils.MakePrecomputedCache[int64, uint64](
	testutils.DefaultCreateRandFromSeed,
	func(rng *rand.Rand, key int64) uint64 {
		return rng.Uint64()
	},
	nil,
)
