//go:build callcounters

package fieldElements

import (
	"testing"

	"github.com/zkfields/Goldilocks/internal/callcounters"
)

// This file is part of the fieldElements package. See the documentation of field_element.go for general remarks.
//
// This file is only compiled with tags=callcounters; otherwise callcounters_inactive.go provides
// no-op replacements for everything defined here.

// CallCountersActive reports whether this build counts operation calls; its value depends on the
// callcounters build tag.
const CallCountersActive = true

// IncrementCallCounter increments the given call counter. It is a no-op in builds without the
// callcounters tag.
func IncrementCallCounter(id callcounters.Id) {
	id.Increment()
}

// BenchmarkWithCallCounters stops the benchmark timer and attaches the accumulated call counts to
// the benchmark as custom per-op metrics. It is a no-op in builds without the callcounters tag.
func BenchmarkWithCallCounters(b *testing.B) {
	b.StopTimer()
	reports := callcounters.ReportCallCounters(true, false)
	for _, item := range reports {
		b.ReportMetric(float64(item.Calls)/float64(b.N), item.Tag+"/op")
	}
}
