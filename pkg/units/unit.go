package units

import (
	"strings"

	"github.com/matzehuels/luthier/pkg/errors"
)

// Unit is one of the supported length units. The set is closed.
type Unit int

const (
	Inches Unit = iota
	Millimeters
	Centimeters
	Meters
	Feet
	Yards
	Kilometers
	Microns
	Miles
)

type unitInfo struct {
	name   string
	symbol string
	factor float64 // units per inch
}

var unitTable = [...]unitInfo{
	Inches:      {"inches", "in", 1},
	Millimeters: {"millimeters", "mm", 25.4},
	Centimeters: {"centimeters", "cm", 2.54},
	Meters:      {"meters", "m", 0.0254},
	Feet:        {"feet", "ft", 1.0 / 12},
	Yards:       {"yards", "yd", 1.0 / 36},
	Kilometers:  {"kilometers", "km", 0.0000254},
	Microns:     {"microns", "µm", 25400},
	Miles:       {"miles", "mi", 1.0 / 63360},
}

// abbreviations maps every accepted spelling (lowercase) to its unit.
var abbreviations = map[string]Unit{
	"in":          Inches,
	"inch":        Inches,
	"inches":      Inches,
	"mm":          Millimeters,
	"millimeter":  Millimeters,
	"millimeters": Millimeters,
	"cm":          Centimeters,
	"centimeter":  Centimeters,
	"centimeters": Centimeters,
	"m":           Meters,
	"meter":       Meters,
	"meters":      Meters,
	"ft":          Feet,
	"foot":        Feet,
	"feet":        Feet,
	"yd":          Yards,
	"yard":        Yards,
	"yards":       Yards,
	"km":          Kilometers,
	"kilometers":  Kilometers,
	"micron":      Microns,
	"micrometers": Microns,
	"microns":     Microns,
	"um":          Microns,
	"mi":          Miles,
	"mile":        Miles,
	"miles":       Miles,
}

// All returns every unit in declaration order.
func All() []Unit {
	return []Unit{Inches, Millimeters, Centimeters, Meters, Feet, Yards, Kilometers, Microns, Miles}
}

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool {
	return u >= Inches && u <= Miles
}

// String returns the plural unit name, e.g. "millimeters".
func (u Unit) String() string {
	if !u.Valid() {
		return "unknown"
	}
	return unitTable[u].name
}

// Symbol returns the display abbreviation, e.g. "mm".
func (u Unit) Symbol() string {
	if !u.Valid() {
		return "?"
	}
	return unitTable[u].symbol
}

// Factor returns how many of u make up one inch.
func (u Unit) Factor() float64 {
	if !u.Valid() {
		return 1
	}
	return unitTable[u].factor
}

// MarshalText encodes the unit as its plural name.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown unit %d", int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText accepts any spelling from the abbreviation table.
func (u *Unit) UnmarshalText(text []byte) error {
	v, ok := Lookup(string(text))
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unknown unit %q", text)
	}
	*u = v
	return nil
}

// Lookup resolves a unit word. Matching ignores case; ok is false when the
// word is not in the table.
func Lookup(word string) (Unit, bool) {
	u, ok := abbreviations[strings.ToLower(word)]
	return u, ok
}
