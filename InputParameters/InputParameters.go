package InputParameters

import (
	"fmt"
	"time"

	"github.com/ghodss/yaml"
	"github.com/notargets/avs/chart2d"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title           string  `yaml:"Title"`
	Rows            int     `yaml:"Rows"`
	Cols            int     `yaml:"Cols"`
	Dx              float64 `yaml:"Dx"`
	Dy              float64 `yaml:"Dy"`
	DiffusionCoeff  float64 `yaml:"DiffusionCoeff"`
	VelX            float64 `yaml:"VelX"`
	VelY            float64 `yaml:"VelY"`
	SourceStrength  float64 `yaml:"SourceStrength"`
	SourceNode      int     `yaml:"SourceNode"`
	ObservationNode int     `yaml:"ObservationNode"`
	MaxSteps        int     `yaml:"MaxSteps"`
	OpenBoundaries  bool    `yaml:"OpenBoundaries"`
}

func (ip *InputParameters) Parse(data []byte) error {
	// Boundaries default open, matching the absorbing perimeter case
	ip.OpenBoundaries = true
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%dx%d]\t\t\t= Rows x Cols\n", ip.Rows, ip.Cols)
	fmt.Printf("%8.5f,%8.5f\t= Dx, Dy\n", ip.Dx, ip.Dy)
	fmt.Printf("%8.5f\t\t= DiffusionCoeff\n", ip.DiffusionCoeff)
	fmt.Printf("%8.5f,%8.5f\t= VelX, VelY\n", ip.VelX, ip.VelY)
	fmt.Printf("%8.5f\t\t= SourceStrength\n", ip.SourceStrength)
	fmt.Printf("[%d]\t\t\t= SourceNode\n", ip.SourceNode)
	fmt.Printf("[%d]\t\t\t= ObservationNode\n", ip.ObservationNode)
	fmt.Printf("[%d]\t\t\t= MaxSteps\n", ip.MaxSteps)
	fmt.Printf("[%v]\t\t\t= OpenBoundaries\n", ip.OpenBoundaries)
}

// Validate applies the fail-fast checks that must hold before the run loop
// starts: grid shape, coefficient signs, and fixed node ids within range.
func (ip *InputParameters) Validate() (err error) {
	if ip.Rows < 3 || ip.Cols < 3 {
		return fmt.Errorf("grid must be at least 3x3, have %dx%d", ip.Rows, ip.Cols)
	}
	if ip.Dx <= 0 || ip.Dy <= 0 {
		return fmt.Errorf("grid spacing must be positive, have Dx, Dy = %v, %v", ip.Dx, ip.Dy)
	}
	if ip.DiffusionCoeff < 0 {
		return fmt.Errorf("diffusion coefficient must be non-negative, have %v", ip.DiffusionCoeff)
	}
	if ip.MaxSteps <= 0 {
		return fmt.Errorf("MaxSteps must be positive, have %d", ip.MaxSteps)
	}
	nNodes := ip.Rows * ip.Cols
	if ip.SourceNode < 0 || ip.SourceNode >= nNodes {
		return fmt.Errorf("source node %d out of range [0,%d)", ip.SourceNode, nNodes)
	}
	if ip.ObservationNode < 0 || ip.ObservationNode >= nNodes {
		return fmt.Errorf("observation node %d out of range [0,%d)", ip.ObservationNode, nNodes)
	}
	return
}

type PlotMeta struct {
	Plot            bool
	FrameTime       time.Duration
	StepsBeforePlot int
	FieldMinP       *float64
	FieldMaxP       *float64
	LineType        chart2d.LineType
}
