package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	g, _ := NewRaster(3, 3, 1, 1)
	f := NewFields(g)
	// Fields are created zero-initialized with the right extent
	a := f.AddZerosAtNodes("concentration")
	q := f.AddZerosAtLinks("flux")
	assert.Equal(t, g.Nnodes, a.Len())
	assert.Equal(t, g.Nlinks, q.Len())
	assert.Equal(t, 0., a.MaxAbs())
	// Lookup returns the same storage, mutation is visible through both
	a.Set(4, 3)
	assert.Equal(t, 3., f.AtNodes("concentration").AtVec(4))
	assert.Equal(t, 0., f.AtLinks("flux").MaxAbs())
	// Duplicate names and missing lookups panic
	assert.Panics(t, func() { f.AddZerosAtNodes("concentration") })
	assert.Panics(t, func() { f.AtNodes("missing") })
}
