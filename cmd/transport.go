/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/goscat/InputParameters"
	"github.com/notargets/goscat/model_problems/Transport2D"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type ModelTransport struct {
	ICFile    string
	Graph     bool
	PlotSteps int
	Delay     time.Duration
	Profile   bool
}

// TransportCmd represents the transport command
var TransportCmd = &cobra.Command{
	Use:   "transport",
	Short: "Two dimensional scalar transport on a raster grid",
	Long: `
Integrates advection-diffusion of a scalar concentration with a point source
and open or closed boundaries, reading run parameters from a YAML file,

goscat transport -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("transport called")
		mt := &ModelTransport{}
		if mt.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mt.Graph, _ = cmd.Flags().GetBool("graph")
		ps, _ := cmd.Flags().GetInt("plotSteps")
		mt.PlotSteps = ps
		dr, _ := cmd.Flags().GetInt("delay")
		mt.Delay = time.Duration(dr) * time.Millisecond
		mt.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(mt)
		RunTransport(mt, ip)
	},
}

func processInput(mt *ModelTransport) (ip *InputParameters.InputParameters) {
	var (
		err error
	)
	if len(mt.ICFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Aerosol Transport"
Rows: 41
Cols: 61
Dx: 100.
Dy: 100.
DiffusionCoeff: 50.
VelX: 2.5
VelY: 0.
SourceStrength: 0.02
SourceNode: 1240
ObservationNode: 1255
MaxSteps: 3000
OpenBoundaries: true
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mt.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	if err = ip.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(TransportCmd)
	TransportCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for run parameters like:\n\t- grid shape\n\t- DiffusionCoeff\n\t- VelX, VelY")
	TransportCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	TransportCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	TransportCmd.Flags().IntP("plotSteps", "s", 100, "number of steps before plotting each frame")
	TransportCmd.Flags().Bool("profile", false, "write a cpu profile of the run")
}

func RunTransport(mt *ModelTransport, ip *InputParameters.InputParameters) {
	if mt.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	ip.Print()
	c, err := Transport2D.NewTransport2D(ip)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	pm := &InputParameters.PlotMeta{
		Plot:            mt.Graph,
		FrameTime:       mt.Delay,
		StepsBeforePlot: mt.PlotSteps,
		FieldMinP:       nil,
		FieldMaxP:       nil,
		LineType:        chart2d.Solid,
	}
	c.Solve(pm)
}
