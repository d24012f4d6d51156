package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"
	"github.com/notargets/goscat/InputParameters"
)

func TestRunTransport(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Rows: 5
Cols: 7
Dx: 1.
Dy: 1.
DiffusionCoeff: 2.
VelX: 0.5
VelY: 0.
SourceStrength: 0.1
SourceNode: 16
ObservationNode: 18
MaxSteps: 50
OpenBoundaries: true
`)
	var input InputParameters.InputParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Rows, 5)
	assert.Equal(t, input.Cols, 7)
	assert.Equal(t, input.DiffusionCoeff, 2.)
	assert.Equal(t, input.VelX, 0.5)
	input.Print()
	assert.Equal(t, input.Validate(), nil)

	// Omitting OpenBoundaries keeps the absorbing default
	var defaulted InputParameters.InputParameters
	if err = defaulted.Parse([]byte("Title: minimal\nRows: 3\nCols: 3\nDx: 1.\nDy: 1.\nMaxSteps: 1\n")); err != nil {
		panic(err)
	}
	assert.Equal(t, defaulted.OpenBoundaries, true)
}
