package Transport2D

import (
	"fmt"
	"math"
	"sync"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/notargets/goscat/InputParameters"
	"github.com/notargets/goscat/grid"
	"github.com/notargets/goscat/utils"
)

const (
	// Explicit scheme stability factors, fixed properties of the scheme
	DiffusiveStabilityFactor = 0.245
	CourantNumber            = 0.95
)

// Transport2D integrates the advection-diffusion of a scalar concentration
// on a raster with an explicit forward Euler scheme: first order upwind
// advection, active-link diffusive fluxes, a constant point source and an
// absorbing (open) or no-flux (closed) perimeter. The concentration at a
// fixed observation node is recorded every step.
type Transport2D struct {
	ip  *InputParameters.InputParameters
	G   *grid.Raster
	Ops *grid.Operators
	FS  *grid.Fields

	A, DADT  utils.Vector // node fields: concentration and its rate
	Grad, QA utils.Vector // link fields: gradient and diffusive flux

	dt   float64
	obs  []float64
	step int

	PlotOnce sync.Once
	chart    *chart2d.Chart2D
	colorMap *utils2.ColorMap
}

func NewTransport2D(ip *InputParameters.InputParameters) (c *Transport2D, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	var g *grid.Raster
	if g, err = grid.NewRaster(ip.Rows, ip.Cols, ip.Dx, ip.Dy); err != nil {
		return
	}
	if !ip.OpenBoundaries {
		g.SetClosedBoundaries(true, true, true, true)
	}
	c = &Transport2D{
		ip:  ip,
		G:   g,
		Ops: grid.NewOperators(g),
		FS:  grid.NewFields(g),
		obs: make([]float64, ip.MaxSteps),
	}
	c.A = c.FS.AddZerosAtNodes("concentration")
	c.DADT = c.FS.AddZerosAtNodes("concentration_rate")
	c.Grad = c.FS.AddZerosAtLinks("concentration_gradient")
	c.QA = c.FS.AddZerosAtLinks("concentration_flux")
	if c.dt, err = ComputeDT(ip); err != nil {
		return nil, err
	}
	return
}

// ComputeDT derives the time step from the stability bounds of the enabled
// mechanisms: 0.245*Dx^2/D for diffusion and a 0.95 Courant bound per axis
// for advection, a zero velocity axis contributing no bound. A source-only
// run is unconstrained and steps with dt = 1. The returned dt is asserted
// against both bounds before it is handed to the loop.
func ComputeDT(ip *InputParameters.InputParameters) (dt float64, err error) {
	var (
		dtD = math.Inf(1)
		dtA = math.Inf(1)
	)
	if ip.DiffusionCoeff > 0 {
		dtD = DiffusiveStabilityFactor * ip.Dx * ip.Dx / ip.DiffusionCoeff
	}
	if ip.VelX != 0 {
		dtA = ip.Dx / math.Abs(ip.VelX)
	}
	if ip.VelY != 0 {
		dtA = math.Min(dtA, ip.Dy/math.Abs(ip.VelY))
	}
	if !math.IsInf(dtA, 1) {
		dtA *= CourantNumber
	}
	dt = math.Min(dtD, dtA)
	if math.IsInf(dt, 1) {
		dt = 1
	}
	if dt > dtD || dt > dtA {
		err = fmt.Errorf("dt = %v violates a stability bound: diffusive %v, advective %v", dt, dtD, dtA)
	}
	return
}

// Step advances the field by one dt. The ordering is fixed: diffusion on
// core nodes, axis-split upwind advection, source injection, boundary reset,
// observation. Reordering changes the numerical result.
func (c *Transport2D) Step() {
	var (
		g  = c.G
		ip = c.ip
		aD = c.A.DataP()
	)
	if ip.DiffusionCoeff > 0 {
		c.Ops.GradAtLinks(c.A, c.Grad)
		// Diffusive flux on active links only - inactive entries stay zero
		c.QA.Zero()
		var (
			qD  = c.QA.DataP()
			grD = c.Grad.DataP()
		)
		for _, l := range g.ActiveLinks {
			qD[l] = -ip.DiffusionCoeff * grD[l]
		}
		c.Ops.FluxDivAtNodes(c.QA, c.DADT)
		// da/dt = -divergence, applied at core nodes only
		dadtD := c.DADT.DataP()
		for _, n := range g.CoreNodes {
			aD[n] -= dadtD[n] * c.dt
		}
	}
	// The gradient is recomputed from the current field before each axis
	// update, so the y pass sees the x pass result
	if ip.VelX != 0 {
		c.Ops.GradAtLinks(c.A, c.Grad)
		c.advectAxis(ip.VelX, g.EastLink, g.WestLink)
	}
	if ip.VelY != 0 {
		c.Ops.GradAtLinks(c.A, c.Grad)
		c.advectAxis(ip.VelY, g.NorthLink, g.SouthLink)
	}
	aD[ip.SourceNode] += ip.SourceStrength * c.dt
	if ip.OpenBoundaries {
		// Absorbing perimeter, applied after every other update including
		// the source
		c.A.AssignScalar(g.BoundaryNodes, 0)
	}
	c.obs[c.step] = aD[ip.ObservationNode]
	c.step++
}

// advectAxis applies the first order upwind update for one velocity
// component. posLinks point toward +x or +y, negLinks the opposite; the
// difference is taken on the link reaching upstream of the flow.
func (c *Transport2D) advectAxis(vel float64, posLinks, negLinks utils.Index) {
	var (
		aD  = c.A.DataP()
		grD = c.Grad.DataP()
	)
	for _, n := range c.G.CoreNodes {
		if vel < 0 {
			aD[n] -= vel * grD[posLinks[n]] * c.dt
		} else {
			aD[n] -= vel * grD[negLinks[n]] * c.dt
		}
	}
}

// Solve runs exactly MaxSteps steps, logging periodically and plotting every
// StepsBeforePlot steps when enabled.
func (c *Transport2D) Solve(pm *InputParameters.PlotMeta) {
	var (
		ip           = c.ip
		logFrequency = 100
	)
	fmt.Printf("dt = %8.6f, steps = %d\n", c.dt, ip.MaxSteps)
	for tstep := 0; tstep < ip.MaxSteps; tstep++ {
		c.Step()
		if pm != nil && pm.Plot && tstep%pm.StepsBeforePlot == 0 {
			c.Plot(pm)
		}
		if tstep%logFrequency == 0 {
			fmt.Printf("Time = %8.4f, amin[%d] = %8.5f, amax = %8.5f, aobs = %8.6f\n",
				float64(tstep+1)*c.dt, tstep, c.A.Min(), c.A.Max(), c.obs[tstep])
		}
	}
}

func (c *Transport2D) DT() float64 { return c.dt }

func (c *Transport2D) Field() []float64 { return c.A.DataP() }

// Observations returns one recorded sample per completed step.
func (c *Transport2D) Observations() []float64 { return c.obs[:c.step] }
