package fieldElements

import (
	"fmt"
	"math/rand"
	"testing"
)

// BenchmarkEnsureBuildFlags is not really a benchmark.
// Its only purpose is to cause Go's default benchmark runner to emit a diagnostic message if call
// counters are active.
func BenchmarkEnsureBuildFlags(b *testing.B) {
	if CallCountersActive {
		b.Skipf("Warning: call counters are active in this build. These dominate the running times of fast operations such as field element additions.")
	} else {
		b.SkipNow()
	}
}

func BenchmarkDummyReadStore(b *testing.B) {
	xs := CachedFieldElements.GetElements(1, benchS)
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpFe_64[n%benchS] = xs[n%benchS]
	}
}

// BenchmarkWraparoundAdd measures a plain uint64 addition in the same harness; the difference to
// the real additions is the cost of the reduction step.
func BenchmarkWraparoundAdd(b *testing.B) {
	xs := CachedFieldElements.GetElements(1, benchS)
	ys := CachedFieldElements.GetElements(2, benchS)
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpFe_64[n%benchS] = xs[n%benchS] + ys[n%benchS]
	}
}

func BenchmarkAdd(b *testing.B) {
	xs := CachedFieldElements.GetElements(1, benchS)
	ys := CachedFieldElements.GetElements(2, benchS)
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpFe_64[n%benchS] = Add(xs[n%benchS], ys[n%benchS])
	}
}

func BenchmarkAddFast(b *testing.B) {
	xs := CachedFieldElements.GetElements(1, benchS)
	ys := CachedFieldElements.GetElements(2, benchS)
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpFe_64[n%benchS] = AddFast(xs[n%benchS], ys[n%benchS])
	}
}

func BenchmarkAddWinterfell(b *testing.B) {
	xs := CachedFieldElements.GetElements(1, benchS)
	ys := CachedFieldElements.GetElements(2, benchS)
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpFe_64[n%benchS] = AddWinterfell(xs[n%benchS], ys[n%benchS])
	}
}

// BenchmarkWraparoundMul is the no-reduction floor for the multiplication benchmarks.
func BenchmarkWraparoundMul(b *testing.B) {
	xs := CachedFieldElements.GetElements(1, benchS)
	ys := CachedFieldElements.GetElements(2, benchS)
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpFe_64[n%benchS] = xs[n%benchS] * ys[n%benchS]
	}
}

func BenchmarkMul(b *testing.B) {
	xs := CachedFieldElements.GetElements(1, benchS)
	ys := CachedFieldElements.GetElements(2, benchS)
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpFe_64[n%benchS] = Mul(xs[n%benchS], ys[n%benchS])
	}
}

func BenchmarkMulReduce159(b *testing.B) {
	xs := CachedFieldElements.GetElements(1, benchS)
	ys := CachedFieldElements.GetElements(2, benchS)
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpFe_64[n%benchS] = MulReduce159(xs[n%benchS], ys[n%benchS])
	}
}

func BenchmarkMulReduceMontgomery(b *testing.B) {
	xs := CachedFieldElements.GetElements(1, benchS)
	ys := CachedFieldElements.GetElements(2, benchS)
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpFe_64[n%benchS] = MulReduceMontgomery(xs[n%benchS], ys[n%benchS])
	}
}

func BenchmarkMontgomeryEquals(b *testing.B) {
	xs := CachedFieldElements.GetElements(1, benchS)
	ys := CachedFieldElements.GetElements(2, benchS)
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpBools_fe[n%benchS] = MontgomeryEquals(xs[n%benchS], ys[n%benchS])
	}
}

func BenchmarkRandomFieldElement(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	prepareBenchmarkFieldElements(b)
	for n := 0; n < b.N; n++ {
		DumpFe_64[n%benchS] = RandomFieldElement(rng)
	}
}

func BenchmarkRandomFieldElements(bOuter *testing.B) {
	batchSizes := []int{1, 2, 4, 16, 64, 256}
	makeBenchmarkFunction := func(batchSize int) func(*testing.B) {
		return func(bInner *testing.B) {
			rng := rand.New(rand.NewSource(1))
			prepareBenchmarkFieldElements(bInner)
			for n := 0; n < bInner.N; n++ {
				vec := RandomFieldElements(rng, batchSize-1)
				DumpFe_64[n%benchS] = vec[0]
			}
		}
	}
	prepareBenchmarkFieldElements(bOuter)
	for _, batchSize := range batchSizes {
		fun := makeBenchmarkFunction(batchSize)
		tag := fmt.Sprintf("vector of size %v", batchSize)
		bOuter.Run(tag, fun)
	}
}
