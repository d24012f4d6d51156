package grid

import (
	"github.com/james-bowman/sparse"
	"github.com/notargets/goscat/utils"
)

// Operators holds the sparse differential operators of a raster, assembled
// once per grid. Gradient maps a node field to a link field and Divergence
// maps a link flux field back to nodes.
type Operators struct {
	G    *Raster
	Grad *sparse.CSR // Nlinks x Nnodes
	Div  *sparse.CSR // Nnodes x Nlinks
}

func NewOperators(g *Raster) (op *Operators) {
	op = &Operators{
		G: g,
	}
	gradTmp := sparse.NewDOK(g.Nlinks, g.Nnodes)
	for l := 0; l < g.Nlinks; l++ {
		oneOverLen := 1. / g.LinkLength(l)
		gradTmp.Set(l, g.Head[l], oneOverLen)
		gradTmp.Set(l, g.Tail[l], -oneOverLen)
	}
	op.Grad = gradTmp.ToCSR()

	// Net outward flux per unit cell area: links point +x/+y, so the east
	// and north links of a node carry outgoing flux, west and south incoming
	divTmp := sparse.NewDOK(g.Nnodes, g.Nlinks)
	for n := 0; n < g.Nnodes; n++ {
		if l := g.EastLink[n]; l >= 0 {
			divTmp.Set(n, l, 1./g.Dx)
		}
		if l := g.WestLink[n]; l >= 0 {
			divTmp.Set(n, l, -1./g.Dx)
		}
		if l := g.NorthLink[n]; l >= 0 {
			divTmp.Set(n, l, 1./g.Dy)
		}
		if l := g.SouthLink[n]; l >= 0 {
			divTmp.Set(n, l, -1./g.Dy)
		}
	}
	op.Div = divTmp.ToCSR()
	return
}

// GradAtLinks writes (a[head]-a[tail])/length into gOut for every link,
// boundary-touching links included. gOut is fully overwritten.
func (op *Operators) GradAtLinks(a, gOut utils.Vector) {
	applyCSR(op.Grad, a, gOut)
}

// FluxDivAtNodes writes the net outward flux per unit cell area into divOut
// for every node, absent perimeter links contributing zero. Positive means
// the node is a net source of outward flux. divOut is fully overwritten.
func (op *Operators) FluxDivAtNodes(q, divOut utils.Vector) {
	applyCSR(op.Div, q, divOut)
}

func applyCSR(m *sparse.CSR, in, out utils.Vector) {
	var (
		inD  = in.DataP()
		outD = out.DataP()
	)
	for i := range outD {
		outD[i] = 0
	}
	m.DoNonZero(func(i, j int, v float64) {
		outD[i] += v * inD[j]
	})
}
