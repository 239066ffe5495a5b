package status

import "sync/atomic"

// Registry collects simulation counters
// Systems cache pointers at construction and write atomics from Update
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Float]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Float](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Snapshot flattens every metric into a float map for publishing
// Bools read as 0 or 1
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.TotalCount())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		if ptr.Load() {
			out[key] = 1
		} else {
			out[key] = 0
		}
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = float64(ptr.Load())
	})
	r.Floats.Range(func(key string, ptr *Float) {
		out[key] = ptr.Load()
	})
	return out
}
