package Transport2D

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/notargets/goscat/InputParameters"
)

// Plot draws the concentration cross-section along the observation node's
// row as a live line chart.
func (c *Transport2D) Plot(pm *InputParameters.PlotMeta) {
	var (
		g          = c.G
		pMin, pMax = float32(0), float32(1)
	)
	if pm.FieldMinP != nil {
		pMin = float32(*pm.FieldMinP)
	}
	if pm.FieldMaxP != nil {
		pMax = float32(*pm.FieldMaxP)
	}
	c.PlotOnce.Do(func() {
		xmax := float32(g.Dx * float64(g.NC-1))
		c.chart = chart2d.NewChart2D(1280, 1024, 0, xmax, pMin, pMax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})

	var (
		row, _ = g.NodeRowCol(c.ip.ObservationNode)
		aD     = c.A.DataP()
		x      = make([]float64, g.NC)
		y      = make([]float64, g.NC)
	)
	for j := 0; j < g.NC; j++ {
		x[j] = float64(j) * g.Dx
		y[j] = aD[g.NodeID(row, j)]
	}
	if err := c.chart.AddSeries("A", x, y,
		chart2d.NoGlyph, pm.LineType, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if pm.FrameTime != 0 {
		time.Sleep(pm.FrameTime)
	}
}
