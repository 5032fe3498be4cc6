// Package spacing lays out strings across a guitar nut.
//
// Given the nut width and the string gauges from low (bass) to high (treble),
// [Compute] places the two outer strings a fixed distance from the nut edges
// and spreads the rest so that the gap between every pair of adjacent strings
// is the same. Gaps are measured between string surfaces, not centers, so a
// set with heavy bass strings gets its centers shifted toward the treble side.
//
// Arithmetic is decimal with six significant digits, using a context created
// per call, so results are exact to the digit and identical on every platform.
package spacing

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/matzehuels/luthier/pkg/errors"
)

// Precision is the number of significant digits kept by every operation.
const Precision = 6

// DefaultEdgeDistance is the default distance, in inches, from each nut edge.
const DefaultEdgeDistance = 0.125

// Options controls how the outer strings are placed.
type Options struct {
	// EdgeDistance is measured from each edge of the nut.
	EdgeDistance float64

	// EdgeFlush places the outside surface of each outer string at
	// EdgeDistance. When false, the outer string centers sit at EdgeDistance.
	EdgeFlush bool
}

// DefaultOptions returns a 1/8" edge distance measured to string centers.
func DefaultOptions() Options {
	return Options{EdgeDistance: DefaultEdgeDistance}
}

// Layout is the result of Compute. All lengths are in the unit of the inputs.
type Layout struct {
	// Spacing is the uniform gap between adjacent string surfaces.
	Spacing *apd.Decimal

	// Positions holds each string's center measured from the bass edge of
	// the nut, in the order the gauges were given.
	Positions []*apd.Decimal
}

// Summary is a Layout in float64, for JSON, TOML and YAML output.
type Summary struct {
	InterStringDistance float64   `json:"inter_string_distance" toml:"inter_string_distance" yaml:"inter_string_distance"`
	Positions           []float64 `json:"positions" toml:"positions" yaml:"positions"`
}

// Summary converts the layout to float64 values.
func (l Layout) Summary() Summary {
	s := Summary{
		InterStringDistance: toFloat(l.Spacing),
		Positions:           make([]float64, len(l.Positions)),
	}
	for i, p := range l.Positions {
		s.Positions[i] = toFloat(p)
	}
	return s
}

// Compute lays out strings of the given gauges, low to high, across a nut.
//
// It fails with CONFIGURATION_ERROR when fewer than two gauges are given, a
// gauge or the nut width is not positive, the edge distance is negative, or
// the strings do not fit.
func Compute(nutWidth float64, gauges []float64, opts Options) (Layout, error) {
	if err := errors.ValidatePositive("nut width", nutWidth); err != nil {
		return Layout{}, err
	}
	if err := errors.ValidateGauges(gauges); err != nil {
		return Layout{}, err
	}
	if err := errors.ValidateNonNegative("edge distance", opts.EdgeDistance); err != nil {
		return Layout{}, err
	}

	c := newCalc()
	nut := c.decimal(nutWidth)
	edge := c.decimal(opts.EdgeDistance)
	g := make([]*apd.Decimal, len(gauges))
	for i, v := range gauges {
		g[i] = c.decimal(v)
	}
	first, last := g[0], g[len(g)-1]
	two := apd.New(2, 0)

	// Outside surfaces of the outer strings.
	var low, high *apd.Decimal
	if opts.EdgeFlush {
		low = edge
		high = c.sub(nut, edge)
	} else {
		low = c.sub(edge, c.quo(first, two))
		high = c.add(c.sub(nut, edge), c.quo(last, two))
	}

	span := c.sub(c.sub(high, last), c.add(low, first))
	interior := apd.New(0, 0)
	for _, d := range g[1 : len(g)-1] {
		interior = c.add(interior, d)
	}
	gap := c.quo(c.sub(span, interior), apd.New(int64(len(g)-1), 0))
	if c.err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInternal, c.err, "decimal arithmetic failed")
	}
	if gap.Sign() < 0 {
		return Layout{}, errors.Configuration("strings do not fit a %v nut: gap would be %s", nutWidth, gap)
	}

	positions := make([]*apd.Decimal, len(g))
	pos := low
	for i, d := range g {
		positions[i] = c.quo(c.add(c.add(pos, pos), d), two)
		pos = c.add(pos, c.add(gap, d))
	}
	if c.err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInternal, c.err, "decimal arithmetic failed")
	}

	return Layout{Spacing: gap, Positions: positions}, nil
}

func toFloat(d *apd.Decimal) float64 {
	if d == nil {
		return 0
	}
	f, err := d.Float64()
	if err != nil {
		return 0
	}
	return f
}
