package grid

import (
	"testing"

	"github.com/notargets/goscat/utils"
	"github.com/stretchr/testify/assert"
)

func TestOperators(t *testing.T) {
	g, err := NewRaster(3, 3, 1, 1)
	assert.NoError(t, err)
	op := NewOperators(g)
	// Gradient sign convention: positive when the field increases toward
	// +x (horizontal links) or +y (vertical links)
	{
		a := utils.NewVector(g.Nnodes)
		a.Set(4, 2) // center spike
		grad := utils.NewVector(g.Nlinks)
		op.GradAtLinks(a, grad)
		assert.Equal(t, 2., grad.AtVec(g.WestLink[4]))
		assert.Equal(t, -2., grad.AtVec(g.EastLink[4]))
		assert.Equal(t, 2., grad.AtVec(g.SouthLink[4]))
		assert.Equal(t, -2., grad.AtVec(g.NorthLink[4]))
	}
	// Uniform field has zero gradient everywhere
	{
		a := utils.NewVector(g.Nnodes).Add(5)
		grad := utils.NewVector(g.Nlinks)
		op.GradAtLinks(a, grad)
		assert.Equal(t, 0., grad.MaxAbs())
	}
	// Uniform flux diverges to zero at the core, and to a net outflow at a
	// corner where only the outgoing links exist
	{
		q := utils.NewVector(g.Nlinks).Add(1)
		div := utils.NewVector(g.Nnodes)
		op.FluxDivAtNodes(q, div)
		assert.InDelta(t, 0., div.AtVec(4), 1.e-14)
		assert.InDelta(t, 2., div.AtVec(0), 1.e-14)
	}
	// Spreading gradient drains the spike: div of -grad is negative around
	// the center's neighbors and positive at the center
	{
		a := utils.NewVector(g.Nnodes)
		a.Set(4, 1)
		grad := utils.NewVector(g.Nlinks)
		op.GradAtLinks(a, grad)
		q := grad.Copy().Scale(-1)
		div := utils.NewVector(g.Nnodes)
		op.FluxDivAtNodes(q, div)
		assert.InDelta(t, 4., div.AtVec(4), 1.e-14)
		assert.InDelta(t, -1., div.AtVec(3), 1.e-14)
	}
	// Operator application overwrites stale output values completely
	{
		a := utils.NewVector(g.Nnodes)
		a.Set(4, 7)
		grad := utils.NewVector(g.Nlinks)
		op.GradAtLinks(a, grad)
		assert.NotEqual(t, 0., grad.MaxAbs())
		op.GradAtLinks(utils.NewVector(g.Nnodes), grad)
		assert.Equal(t, 0., grad.MaxAbs())
	}
}

func TestOperatorsAnisotropic(t *testing.T) {
	g, _ := NewRaster(3, 3, 2, 4)
	op := NewOperators(g)
	a := utils.NewVector(g.Nnodes)
	a.Set(4, 8)
	grad := utils.NewVector(g.Nlinks)
	op.GradAtLinks(a, grad)
	// Link length enters the gradient, spacing enters the divergence
	assert.Equal(t, 4., grad.AtVec(g.WestLink[4]))
	assert.Equal(t, 2., grad.AtVec(g.SouthLink[4]))
	div := utils.NewVector(g.Nnodes)
	op.FluxDivAtNodes(grad.Copy().Scale(-1), div)
	// (4+4)/2 + (2+2)/4 = 5
	assert.InDelta(t, 5., div.AtVec(4), 1.e-14)
}
