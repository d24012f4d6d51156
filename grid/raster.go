// Package grid provides a uniform raster of nodes joined by directed links,
// with boundary classification and the sparse differential operators used by
// the transport solvers.
package grid

import (
	"fmt"

	"github.com/notargets/goscat/utils"
)

type BoundaryStatus uint8

const (
	CoreNode BoundaryStatus = iota
	OpenBoundary
	ClosedBoundary
)

// Raster is an NR x NC structured grid. Node ids run row-major with row 0 at
// the bottom, so node = row*NC + col. Horizontal links always point toward
// +x and vertical links toward +y; link ids enumerate every horizontal link
// first, then every vertical link.
type Raster struct {
	NR, NC int
	Dx, Dy float64
	Nnodes int
	Nlinks int
	NH     int // number of horizontal links

	// Per node link ids in compass order, -1 where the link does not exist
	EastLink, NorthLink, WestLink, SouthLink utils.Index

	// Per link node connectivity: link direction is Tail -> Head
	Head, Tail utils.Index

	Status        []BoundaryStatus // per node
	CoreNodes     utils.Index
	BoundaryNodes utils.Index
	ActiveLinks   utils.Index

	activeLink []bool
}

func NewRaster(nr, nc int, dx, dy float64) (g *Raster, err error) {
	if nr < 3 || nc < 3 {
		err = fmt.Errorf("raster must be at least 3x3 to have a core interior, have %dx%d", nr, nc)
		return
	}
	if dx <= 0 || dy <= 0 {
		err = fmt.Errorf("raster spacing must be positive, have dx, dy = %v, %v", dx, dy)
		return
	}
	var (
		nNodes = nr * nc
		nH     = nr * (nc - 1)
		nV     = (nr - 1) * nc
	)
	g = &Raster{
		NR:        nr,
		NC:        nc,
		Dx:        dx,
		Dy:        dy,
		Nnodes:    nNodes,
		Nlinks:    nH + nV,
		NH:        nH,
		EastLink:  utils.NewIndexConst(nNodes, -1),
		NorthLink: utils.NewIndexConst(nNodes, -1),
		WestLink:  utils.NewIndexConst(nNodes, -1),
		SouthLink: utils.NewIndexConst(nNodes, -1),
		Head:      utils.NewIndex(nH + nV),
		Tail:      utils.NewIndex(nH + nV),
		Status:    make([]BoundaryStatus, nNodes),
	}
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			n := g.NodeID(r, c)
			if c < nc-1 {
				l := r*(nc-1) + c
				g.EastLink[n] = l
				g.Tail[l] = n
				g.Head[l] = n + 1
			}
			if c > 0 {
				g.WestLink[n] = r*(nc-1) + c - 1
			}
			if r < nr-1 {
				l := nH + r*nc + c
				g.NorthLink[n] = l
				g.Tail[l] = n
				g.Head[l] = n + nc
			}
			if r > 0 {
				g.SouthLink[n] = nH + (r-1)*nc + c
			}
			if r == 0 || r == nr-1 || c == 0 || c == nc-1 {
				g.Status[n] = OpenBoundary
			}
		}
	}
	g.classify()
	return
}

func (g *Raster) NodeID(r, c int) int { return r*g.NC + c }

func (g *Raster) NodeRowCol(n int) (r, c int) {
	r = n / g.NC
	c = n - r*g.NC
	return
}

func (g *Raster) IsHorizontal(l int) bool { return l < g.NH }

func (g *Raster) LinkLength(l int) float64 {
	if g.IsHorizontal(l) {
		return g.Dx
	}
	return g.Dy
}

func (g *Raster) IsActive(l int) bool { return g.activeLink[l] }

// SetClosedBoundaries marks whole perimeter edges closed, in the order
// right, top, left, bottom. Corner nodes close when either adjoining edge
// closes. Active links are reclassified afterward.
func (g *Raster) SetClosedBoundaries(right, top, left, bottom bool) {
	for r := 0; r < g.NR; r++ {
		if right {
			g.Status[g.NodeID(r, g.NC-1)] = ClosedBoundary
		}
		if left {
			g.Status[g.NodeID(r, 0)] = ClosedBoundary
		}
	}
	for c := 0; c < g.NC; c++ {
		if top {
			g.Status[g.NodeID(g.NR-1, c)] = ClosedBoundary
		}
		if bottom {
			g.Status[g.NodeID(0, c)] = ClosedBoundary
		}
	}
	g.classify()
}

// classify rebuilds the core/boundary node sets and the active link set from
// the per-node status. A link is active when one end is a core node and the
// other is core or an open boundary - a link touching a closed boundary or
// joining two boundary nodes carries no flux.
func (g *Raster) classify() {
	g.CoreNodes = g.CoreNodes[:0]
	g.BoundaryNodes = g.BoundaryNodes[:0]
	g.ActiveLinks = g.ActiveLinks[:0]
	g.activeLink = make([]bool, g.Nlinks)
	for n := 0; n < g.Nnodes; n++ {
		if g.Status[n] == CoreNode {
			g.CoreNodes = append(g.CoreNodes, n)
		} else {
			g.BoundaryNodes = append(g.BoundaryNodes, n)
		}
	}
	for l := 0; l < g.Nlinks; l++ {
		h, t := g.Status[g.Head[l]], g.Status[g.Tail[l]]
		switch {
		case h == CoreNode && t == CoreNode:
			g.activeLink[l] = true
		case h == CoreNode && t == OpenBoundary:
			g.activeLink[l] = true
		case h == OpenBoundary && t == CoreNode:
			g.activeLink[l] = true
		}
		if g.activeLink[l] {
			g.ActiveLinks = append(g.ActiveLinks, l)
		}
	}
}

// NodeX and NodeY give node positions with the origin at the bottom left.
func (g *Raster) NodeX(n int) float64 {
	_, c := g.NodeRowCol(n)
	return float64(c) * g.Dx
}

func (g *Raster) NodeY(n int) float64 {
	r, _ := g.NodeRowCol(n)
	return float64(r) * g.Dy
}
