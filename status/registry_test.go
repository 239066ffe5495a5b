package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()

	r.Ints.Get("spawn.failed").Add(2)
	r.Bools.Get("vamp.active").Store(true)
	r.Floats.Get("time.speed").Store(0.5)

	// Cached pointer identity
	assert.Same(t, r.Ints.Get("spawn.failed"), r.Ints.Get("spawn.failed"))
	assert.Equal(t, 3, r.TotalCount())

	snap := r.Snapshot()
	assert.Equal(t, 2.0, snap["spawn.failed"])
	assert.Equal(t, 1.0, snap["vamp.active"])
	assert.Equal(t, 0.5, snap["time.speed"])
}

func TestFloatAdd(t *testing.T) {
	var f Float
	assert.Equal(t, 1.5, f.Add(1.5))
	assert.Equal(t, 1.0, f.Add(-0.5))
	assert.Equal(t, 1.0, f.Load())
}

func TestLookupDoesNotRegister(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Ints.Lookup("missing")
	assert.False(t, ok)
	assert.Zero(t, r.TotalCount())

	r.Ints.Get("present").Store(4)
	v, ok := r.Ints.Lookup("present")
	assert.True(t, ok)
	assert.Equal(t, int64(4), v.Load())
}
