package units

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFactors(t *testing.T) {
	tests := []struct {
		unit   Unit
		factor float64
	}{
		{Inches, 1},
		{Millimeters, 25.4},
		{Centimeters, 2.54},
		{Meters, 0.0254},
		{Feet, 1.0 / 12},
		{Yards, 1.0 / 36},
		{Kilometers, 0.0000254},
		{Microns, 25400},
		{Miles, 1.0 / 63360},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			if got := tt.unit.Factor(); got != tt.factor {
				t.Errorf("Factor() = %v, want %v", got, tt.factor)
			}
		})
	}
}

func TestToInches(t *testing.T) {
	tests := []struct {
		value float64
		unit  Unit
		want  float64
	}{
		{1, Inches, 1},
		{25.4, Millimeters, 1},
		{5, Feet, 60},
		{3, Yards, 108},
		{1, Miles, 63360},
	}

	for _, tt := range tests {
		if got := ToInches(tt.value, tt.unit); got != tt.want {
			t.Errorf("ToInches(%v, %v) = %v, want %v", tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, u := range All() {
		for _, m := range []float64{0.001, 1, 3.75, 42, 1234.5} {
			in := ToInches(m, u)
			back := FromInches(in, u)
			if math.Abs(back-m) > 1e-9*m {
				t.Errorf("%v: FromInches(ToInches(%v)) = %v", u, m, back)
			}
		}
	}
}

func TestConvert(t *testing.T) {
	if got := Convert(1, Feet, Inches); math.Abs(got-12) > 1e-12 {
		t.Errorf("Convert(1 ft -> in) = %v, want 12", got)
	}
	if got := Convert(1, Meters, Millimeters); math.Abs(got-1000) > 1e-9 {
		t.Errorf("Convert(1 m -> mm) = %v, want 1000", got)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		word   string
		want   Unit
		wantOK bool
	}{
		{"in", Inches, true},
		{"Inch", Inches, true},
		{"millimeter", Millimeters, true},
		{"CM", Centimeters, true},
		{"m", Meters, true},
		{"foot", Feet, true},
		{"yard", Yards, true},
		{"kilometers", Kilometers, true},
		{"micrometers", Microns, true},
		{"um", Microns, true},
		{"mi", Miles, true},
		{"", Inches, false},
		{"parsec", Inches, false},
	}

	for _, tt := range tests {
		got, ok := Lookup(tt.word)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("Lookup(%q) = %v, %v; want %v, %v", tt.word, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestUnitText(t *testing.T) {
	data, err := json.Marshal(struct {
		U Unit `json:"u"`
	}{Millimeters})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"u":"millimeters"}` {
		t.Errorf("json = %s", data)
	}

	var u Unit
	if err := u.UnmarshalText([]byte("ft")); err != nil {
		t.Fatal(err)
	}
	if u != Feet {
		t.Errorf("UnmarshalText(ft) = %v, want feet", u)
	}
	if err := u.UnmarshalText([]byte("cubits")); err == nil {
		t.Error("UnmarshalText(cubits) should fail")
	}
	if _, err := Unit(99).MarshalText(); err == nil {
		t.Error("MarshalText of an undeclared unit should fail")
	}
}

func TestSymbols(t *testing.T) {
	want := []string{"in", "mm", "cm", "m", "ft", "yd", "km", "µm", "mi"}
	for i, u := range All() {
		if u.Symbol() != want[i] {
			t.Errorf("%v.Symbol() = %q, want %q", u, u.Symbol(), want[i])
		}
	}
	if Unit(-1).Valid() {
		t.Error("Unit(-1) should not be valid")
	}
}
