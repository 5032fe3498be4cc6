// Package convert turns a measurement string into a report of the same
// length in every supported unit plus the nearest ruler fraction.
//
// This is the measurement pipeline shared by the CLI, the HTTP API and the
// interactive converter:
//
//	text -> units.Parse -> inches -> ruler.MixedNumber (fraction entry)
//	                              -> units.FromInches (every other entry)
//
// Each entry is a display string with a fixed precision: microns to one
// decimal, millimeters and centimeters to two, everything else to three.
package convert

import (
	"strconv"

	"github.com/matzehuels/luthier/pkg/errors"
	"github.com/matzehuels/luthier/pkg/ruler"
	"github.com/matzehuels/luthier/pkg/units"
)

// Report keys, in display order.
const (
	KeyMicrons     = "microns"
	KeyDecimal     = "decimal"
	KeyFraction    = "fraction"
	KeyFeet        = "feet"
	KeyYards       = "yards"
	KeyMiles       = "miles"
	KeyMillimeters = "millimeters"
	KeyCentimeters = "centimeters"
	KeyMeters      = "meters"
	KeyKilometers  = "kilometers"
)

// Keys lists every report key in display order.
var Keys = []string{
	KeyMicrons, KeyDecimal, KeyFraction, KeyFeet, KeyYards,
	KeyMiles, KeyMillimeters, KeyCentimeters, KeyMeters, KeyKilometers,
}

// precision is the number of decimals shown per unit.
var precision = map[units.Unit]int{
	units.Inches:      3,
	units.Millimeters: 2,
	units.Centimeters: 2,
	units.Meters:      3,
	units.Feet:        3,
	units.Yards:       3,
	units.Kilometers:  3,
	units.Microns:     1,
	units.Miles:       3,
}

// Report holds one length rendered in every unit.
type Report struct {
	Microns     string `json:"microns" toml:"microns" yaml:"microns"`
	Decimal     string `json:"decimal" toml:"decimal" yaml:"decimal"`
	Fraction    string `json:"fraction" toml:"fraction" yaml:"fraction"`
	Feet        string `json:"feet" toml:"feet" yaml:"feet"`
	Yards       string `json:"yards" toml:"yards" yaml:"yards"`
	Miles       string `json:"miles" toml:"miles" yaml:"miles"`
	Millimeters string `json:"millimeters" toml:"millimeters" yaml:"millimeters"`
	Centimeters string `json:"centimeters" toml:"centimeters" yaml:"centimeters"`
	Meters      string `json:"meters" toml:"meters" yaml:"meters"`
	Kilometers  string `json:"kilometers" toml:"kilometers" yaml:"kilometers"`
}

// Map returns the report keyed by the names in Keys.
func (r Report) Map() map[string]string {
	return map[string]string{
		KeyMicrons:     r.Microns,
		KeyDecimal:     r.Decimal,
		KeyFraction:    r.Fraction,
		KeyFeet:        r.Feet,
		KeyYards:       r.Yards,
		KeyMiles:       r.Miles,
		KeyMillimeters: r.Millimeters,
		KeyCentimeters: r.Centimeters,
		KeyMeters:      r.Meters,
		KeyKilometers:  r.Kilometers,
	}
}

// Conversion is the result of running a measurement string through the
// pipeline.
type Conversion struct {
	Input  units.Measurement `json:"input" toml:"input" yaml:"input"`
	Inches float64           `json:"inches" toml:"inches" yaml:"inches"`
	Report Report            `json:"report" toml:"report" yaml:"report"`
}

// Convert parses text and reports the length in every unit. opts controls
// the fraction entry; its zero value means 64ths with the fallback policy.
func Convert(text string, opts ruler.Options) (Conversion, error) {
	m, err := units.Parse(text)
	if err != nil {
		return Conversion{}, err
	}
	inches := m.Inches()
	report, err := FromInches(inches, opts)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{Input: m, Inches: inches, Report: report}, nil
}

// FromInches renders a length in inches in every unit.
func FromInches(inches float64, opts ruler.Options) (Report, error) {
	if err := errors.ValidateFinite("length", inches); err != nil {
		return Report{}, err
	}
	fraction, err := ruler.MixedNumber(inches, opts)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Microns:     Format(inches, units.Microns),
		Decimal:     Format(inches, units.Inches),
		Fraction:    fraction + " " + units.Inches.Symbol(),
		Feet:        Format(inches, units.Feet),
		Yards:       Format(inches, units.Yards),
		Miles:       Format(inches, units.Miles),
		Millimeters: Format(inches, units.Millimeters),
		Centimeters: Format(inches, units.Centimeters),
		Meters:      Format(inches, units.Meters),
		Kilometers:  Format(inches, units.Kilometers),
	}, nil
}

// Format renders a length in inches as "<value> <symbol>" in unit u, at the
// report's precision for u.
func Format(inches float64, u units.Unit) string {
	return strconv.FormatFloat(units.FromInches(inches, u), 'f', precision[u], 64) + " " + u.Symbol()
}
