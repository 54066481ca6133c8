// Package status keeps live session counters written from the frame loop and read elsewhere
package status

import (
	"log/slog"
	"sync/atomic"
)

// Registry is the metrics facade
// The frame observer caches pointers once and writes atomics each frame
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Attrs returns every metric as a slog attribute, ints before floats, each in key order
func (r *Registry) Attrs() []any {
	attrs := make([]any, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		attrs = append(attrs, slog.Int64(key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		attrs = append(attrs, slog.Float64(key, v.Get()))
	})
	return attrs
}
