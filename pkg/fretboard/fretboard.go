// Package fretboard computes equal-tempered fret positions and the radius
// table of a compound-radius fretboard.
//
// A compound-radius board is flatter toward the body: its radius changes
// linearly from StartRadius at the nut to EndRadius at the end of the board.
// The board is taken to end one fret past the last physical fret, and the
// radius at the saddle continues the same line out to the scale length.
//
// All lengths share whatever unit the caller passes in.
package fretboard

import (
	"math"

	"github.com/matzehuels/luthier/pkg/errors"
)

// Fret is one row of a Table.
type Fret struct {
	Number   int     `json:"number" toml:"number" yaml:"number"`
	Position float64 `json:"position" toml:"position" yaml:"position"`
	Radius   float64 `json:"radius" toml:"radius" yaml:"radius"`

	// Spacing is the distance from the previous fret, or from the nut for
	// the first fret.
	Spacing float64 `json:"spacing" toml:"spacing" yaml:"spacing"`
}

// Table is the result of Compute.
type Table struct {
	ScaleLength     float64 `json:"scale_length" toml:"scale_length" yaml:"scale_length"`
	StartRadius     float64 `json:"start_radius" toml:"start_radius" yaml:"start_radius"`
	EndRadius       float64 `json:"end_radius" toml:"end_radius" yaml:"end_radius"`
	FretboardLength float64 `json:"fretboard_length" toml:"fretboard_length" yaml:"fretboard_length"`
	SaddleRadius    float64 `json:"saddle_radius" toml:"saddle_radius" yaml:"saddle_radius"`
	Frets           []Fret  `json:"frets" toml:"frets" yaml:"frets"`
}

// FretPosition returns the distance from the nut to fret n on a string of
// the given scale length. Fret 0 is the nut and fret 12 is half the scale.
func FretPosition(scale float64, n int) float64 {
	return scale - scale/math.Pow(2, float64(n)/12)
}

// Compute builds the fret table for a board with the given radii at the nut
// and at the board end, one fret past fret number frets.
//
// It fails with CONFIGURATION_ERROR when frets < 1 or the scale or either
// radius is not positive.
func Compute(startRadius, endRadius, scale float64, frets int) (Table, error) {
	if err := errors.ValidateFretCount(frets); err != nil {
		return Table{}, err
	}
	if err := errors.ValidatePositive("scale length", scale); err != nil {
		return Table{}, err
	}
	if err := errors.ValidatePositive("start radius", startRadius); err != nil {
		return Table{}, err
	}
	if err := errors.ValidatePositive("end radius", endRadius); err != nil {
		return Table{}, err
	}

	t := Table{
		ScaleLength:     scale,
		StartRadius:     startRadius,
		EndRadius:       endRadius,
		FretboardLength: FretPosition(scale, frets+1),
		Frets:           make([]Fret, frets),
	}
	t.SaddleRadius = t.RadiusAt(scale)

	prev := 0.0
	for i := range t.Frets {
		pos := FretPosition(scale, i+1)
		t.Frets[i] = Fret{
			Number:   i + 1,
			Position: pos,
			Radius:   t.RadiusAt(pos),
			Spacing:  pos - prev,
		}
		prev = pos
	}
	return t, nil
}

// RadiusAt interpolates the radius at pos, measured from the nut. Positions
// past the board end extrapolate along the same line.
func (t Table) RadiusAt(pos float64) float64 {
	return t.StartRadius + (pos/t.FretboardLength)*(t.EndRadius-t.StartRadius)
}
