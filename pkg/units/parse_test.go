package units

import (
	"math"
	"testing"

	"github.com/matzehuels/luthier/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantValue    float64
		wantUnit     Unit
		wantResolved bool
	}{
		{"integer inches", "3 in", 3, Inches, true},
		{"decimal no unit", "1.5", 1.5, Inches, false},
		{"leading dot", ".5", 0.5, Inches, false},
		{"leading dot with unit", ".5 cm", 0.5, Centimeters, true},
		{"simple fraction", "3/4", 0.75, Inches, false},
		{"mixed number", "1 1/2 in", 1.5, Inches, true},
		{"mixed number glued unit", "2 3/8in", 2.375, Inches, true},
		{"apostrophe feet", "5'", 5, Feet, true},
		{"right quote feet", "5’", 5, Feet, true},
		{"spelled feet", "5 feet", 5, Feet, true},
		{"decimal comma", "42,5mm", 42.5, Millimeters, true},
		{"inch mark ignored", `2.5"`, 2.5, Inches, false},
		{"unknown unit defaults", "7 furlongs", 7, Inches, false},
		{"uppercase unit", "10 MM", 10, Millimeters, true},
		{"meters", "1 m", 1, Meters, true},
		{"microns abbreviation", "250um", 250, Microns, true},
		{"kilometers", "2 km", 2, Kilometers, true},
		{"yards", "3 yd", 3, Yards, true},
		{"miles", "1 mile", 1, Miles, true},
		{"surrounding whitespace", "  12 cm  ", 12, Centimeters, true},
		{"trailing text ignored", "5 ft 3 in", 5, Feet, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if math.Abs(m.Magnitude-tt.wantValue) > 1e-12 {
				t.Errorf("Magnitude = %v, want %v", m.Magnitude, tt.wantValue)
			}
			if m.Unit != tt.wantUnit {
				t.Errorf("Unit = %v, want %v", m.Unit, tt.wantUnit)
			}
			if m.Resolved != tt.wantResolved {
				t.Errorf("Resolved = %v, want %v", m.Resolved, tt.wantResolved)
			}
		})
	}
}

func TestParseFeetMarkMatchesAbbreviation(t *testing.T) {
	a, err := Parse("5'")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("5ft")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("Parse(\"5'\") = %+v, Parse(\"5ft\") = %+v", a, b)
	}
	if a.Unit != Feet || a.Magnitude != 5 {
		t.Errorf("got %+v, want 5 feet", a)
	}
}

func TestParseFractionIsExact(t *testing.T) {
	m, err := Parse("1/3")
	if err != nil {
		t.Fatal(err)
	}
	if m.Magnitude != 1.0/3 {
		t.Errorf("Magnitude = %v, want %v", m.Magnitude, 1.0/3)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"unit only", "mm"},
		{"inch mark only", `"`},
		{"negative", "-5 in"},
		{"zero denominator", "1/0"},
		{"mixed zero denominator", "1 1/0 in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("Parse(%q) error = %v, want %s", tt.input, err, errors.ErrCodeParse)
			}
		})
	}
}

func TestMeasurementInches(t *testing.T) {
	m, err := Parse("25.4 mm")
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Inches(); got != 1 {
		t.Errorf("Inches() = %v, want 1", got)
	}
	if got := m.String(); got != "25.4 mm" {
		t.Errorf("String() = %q, want %q", got, "25.4 mm")
	}
}
