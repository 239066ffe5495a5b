package status

import (
	"math"
	"sync/atomic"
)

// Float is an atomic float64 stored as its IEEE bits; the zero value reads 0
type Float struct {
	v atomic.Uint64
}

func (f *Float) Store(val float64) { f.v.Store(math.Float64bits(val)) }

func (f *Float) Load() float64 { return math.Float64frombits(f.v.Load()) }

// Add applies delta with a CAS loop and returns the result
func (f *Float) Add(delta float64) float64 {
	for {
		old := f.v.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if f.v.CompareAndSwap(old, next) {
			return math.Float64frombits(next)
		}
	}
}
