//go:build !callcounters

package fieldElements

import (
	"testing"

	"github.com/zkfields/Goldilocks/internal/callcounters"
)

// This file is part of the fieldElements package. See the documentation of field_element.go for general remarks.
//
// This file provides the no-op replacements that are compiled without tags=callcounters, so that
// counting operation calls has zero runtime impact in regular builds.

// CallCountersActive reports whether this build counts operation calls; its value depends on the
// callcounters build tag.
const CallCountersActive = false

// IncrementCallCounter increments the given call counter. It is a no-op in builds without the
// callcounters tag.
func IncrementCallCounter(id callcounters.Id) {
}

// BenchmarkWithCallCounters stops the benchmark timer and attaches the accumulated call counts to
// the benchmark as custom per-op metrics. It is a no-op in builds without the callcounters tag.
func BenchmarkWithCallCounters(b *testing.B) {
}
