package testutils

import (
	"math/rand"
	"sync"
)

// This file provides a generic cache for slices of precomputed pseudo-random inputs, shared by
// tests and benchmarks. The point of caching is twofold: sub-tests repeatedly asking for "the
// first n elements drawn with seed s" get identical, reproducible slices without re-deriving
// them, and benchmark setup cost stays out of the measured loop.
//
// Keys are arbitrary comparable values; by convention they carry (at least) the rng seed, so
// distinct keys give independent streams. Elements are created lazily: asking for more elements
// under a known key extends the stored stream rather than restarting it, so prefixes are stable.

// PrecomputedCache is a concurrency-safe store of lazily extended streams of precomputed
// elements, one stream per key. Create instances with MakePrecomputedCache; the zero value is
// not usable.
type PrecomputedCache[KeyType comparable, ElementType any] struct {
	mut                sync.RWMutex // guards data (the map itself, not the pages)
	data               map[KeyType]*precomputedCachePage[KeyType, ElementType]
	createRandFromSeed func(key KeyType) *rand.Rand                 // derives the stream's rng from its key
	creationFun        func(rng *rand.Rand, key KeyType) ElementType // draws the next stream element
	copyFun            func(ElementType) ElementType                 // copies elements out of the cache; nil means plain assignment
}

// precomputedCachePage holds the stream of elements created so far for a single key.
type precomputedCachePage[KeyType comparable, ElementType any] struct {
	mut      sync.RWMutex
	rng      *rand.Rand
	key      KeyType
	elements []ElementType
}

// MakePrecomputedCache creates a PrecomputedCache from the given functions.
//
// createRandFromSeed derives a *rand.Rand from a key; pass nil for caches that are only ever
// filled via PrepopulateCache (creation will then fail if attempted).
// creationFun draws one element from the stream's rng; it must be deterministic given the rng
// state, or prefix stability is lost.
// copyFun is applied to every element handed out (and to elements handed in via
// PrepopulateCache); pass nil for value types where assignment is a copy.
func MakePrecomputedCache[KeyType comparable, ElementType any](createRandFromSeed func(KeyType) *rand.Rand, creationFun func(*rand.Rand, KeyType) ElementType, copyFun func(ElementType) ElementType) (ret PrecomputedCache[KeyType, ElementType]) {
	ret.data = make(map[KeyType]*precomputedCachePage[KeyType, ElementType])

	// We keep createRandFromSeed callable even for prepopulate-only caches, because page
	// creation unconditionally calls it; the returned nil rng only matters if creationFun
	// actually runs.
	if createRandFromSeed == nil {
		createRandFromSeed = func(KeyType) *rand.Rand { return nil }
	}
	ret.createRandFromSeed = createRandFromSeed
	ret.creationFun = creationFun
	ret.copyFun = copyFun
	return
}

// DefaultCreateRandFromSeed is the createRandFromSeed function for the common case of int64 keys
// that are plain rng seeds.
func DefaultCreateRandFromSeed(key int64) *rand.Rand {
	return rand.New(rand.NewSource(key))
}

// GetElements returns the first amount elements of the stream stored under key, extending the
// stream as needed. The returned slice is freshly allocated and (element-wise, via copyFun)
// owned by the caller. Repeated calls with the same key agree on common prefixes.
//
// GetElements panics if amount is negative, and if the stream needs extending in a cache created
// without a creationFun.
func (pc *PrecomputedCache[KeyType, ElementType]) GetElements(key KeyType, amount int) (ret []ElementType) {
	if amount < 0 {
		panic("goldilocks / testutils: requested a negative number of precomputed elements")
	}
	if amount == 0 {
		return make([]ElementType, 0)
	}

	var page *precomputedCachePage[KeyType, ElementType]
	var ok bool

	pc.mut.RLock()
	page, ok = pc.data[key]
	pc.mut.RUnlock()

	if !ok {
		page = pc.newPage(key)

		pc.mut.Lock()
		alt, ok := pc.data[key] // re-check: another goroutine may have inserted meanwhile
		if ok {
			page = alt // first writer wins; discard our fresh page
		} else {
			pc.data[key] = page
		}
		pc.mut.Unlock()
	}

	return page.getElements(amount, pc)
}

// PrepopulateCache stores the given elements as the stream for key, copying them in via copyFun.
// It panics if the key already has a stream: two sources of truth for the same key would make
// test inputs depend on call order.
func (pc *PrecomputedCache[KeyType, ElementType]) PrepopulateCache(key KeyType, elements []ElementType) {
	page := pc.newPage(key)
	copyFun := pc.copyFun
	page.elements = make([]ElementType, len(elements))
	for i, element := range elements {
		if copyFun == nil {
			page.elements[i] = element
		} else {
			page.elements[i] = copyFun(element)
		}
	}

	pc.mut.Lock()
	defer pc.mut.Unlock()
	if _, alreadyPresent := pc.data[key]; alreadyPresent {
		panic("goldilocks / testutils: PrepopulateCache called for a key that already has elements")
	}
	pc.data[key] = page
}

func (pc *PrecomputedCache[KeyType, ElementType]) newPage(key KeyType) (ret *precomputedCachePage[KeyType, ElementType]) {
	ret = new(precomputedCachePage[KeyType, ElementType])
	ret.key = key
	ret.elements = make([]ElementType, 0)
	ret.rng = pc.createRandFromSeed(key)
	return
}

func (page *precomputedCachePage[KeyType, ElementType]) getElements(amount int, source *PrecomputedCache[KeyType, ElementType]) (ret []ElementType) {
	ret = make([]ElementType, amount)

	copyFun := source.copyFun
	if copyFun == nil {
		copyFun = func(in ElementType) ElementType { return in }
	}

	page.mut.RLock()
	if len(page.elements) >= amount {
		for i := 0; i < amount; i++ {
			ret[i] = copyFun(page.elements[i])
		}
		page.mut.RUnlock()
		return
	}
	page.mut.RUnlock()

	// Not enough elements yet. sync.RWMutex cannot upgrade read locks to write locks, so the
	// length must be reloaded after locking; some other goroutine may have extended the stream.
	creationFun := source.creationFun
	if creationFun == nil {
		panic("goldilocks / testutils: cache has no creation function, PrepopulateCache stored too few elements")
	}
	page.mut.Lock()
	for len(page.elements) < amount {
		page.elements = append(page.elements, creationFun(page.rng, page.key))
	}
	page.mut.Unlock()

	page.mut.RLock()
	for i := 0; i < amount; i++ {
		ret[i] = copyFun(page.elements[i])
	}
	page.mut.RUnlock()
	return
}
