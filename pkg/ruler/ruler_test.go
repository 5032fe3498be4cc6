package ruler

import (
	"math"
	"testing"

	"github.com/matzehuels/luthier/pkg/errors"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		finest      int64
		wantFrac    Fraction
		wantValue   float64
		wantOnRuler bool
	}{
		{"quarter", 0.25, 64, Fraction{1, 4}, 0.25, true},
		{"64ths", 0.3, 64, Fraction{19, 64}, 19.0 / 64, true},
		{"negative 64ths", -0.3, 64, Fraction{-19, 64}, -19.0 / 64, true},
		{"mixed value", 2.5, 64, Fraction{5, 2}, 2.5, true},
		{"finest 20 is a graduation", 0.45, 20, Fraction{9, 20}, 0.45, true},
		{"rounds at 64ths", 0.45, 64, Fraction{29, 64}, 29.0 / 64, true},
		{"twentieths are not on a 1/100 ruler", 0.45, 100, Fraction{9, 20}, 0.45, false},
		{"whole numbers fall back", 1.0, 64, Fraction{1, 1}, 1.0, false},
		{"negative whole number", -3.0, 64, Fraction{-3, 1}, -3.0, false},
		{"rounds to zero", 0.004, 64, Fraction{0, 1}, 0.004, false},
		{"half tie rounds to even", 1.0 / 128, 64, Fraction{0, 1}, 1.0 / 128, false},
		{"finest 1 keeps whole numbers", 2.2, 1, Fraction{2, 1}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Round(tt.value, tt.finest)
			if err != nil {
				t.Fatalf("Round(%v, %d) error: %v", tt.value, tt.finest, err)
			}
			if m.Fraction != tt.wantFrac {
				t.Errorf("Fraction = %v, want %v", m.Fraction, tt.wantFrac)
			}
			if m.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", m.Value, tt.wantValue)
			}
			if m.OnRuler != tt.wantOnRuler {
				t.Errorf("OnRuler = %v, want %v", m.OnRuler, tt.wantOnRuler)
			}
		})
	}
}

func TestRoundZero(t *testing.T) {
	m, err := Round(0, 64)
	if err != nil {
		t.Fatal(err)
	}
	if m.Fraction != (Fraction{0, 64}) || !m.OnRuler || m.Value != 0 {
		t.Errorf("Round(0) = %+v, want 0/64 on the ruler", m)
	}
}

func TestRoundFallbackKeepsInput(t *testing.T) {
	m, err := Round(0.45, 100)
	if err != nil {
		t.Fatal(err)
	}
	if m.OnRuler {
		t.Fatal("9/20 should not be on a 1/100 ruler")
	}
	if got := m.String(); got != "0.45" {
		t.Errorf("String() = %q, want %q", got, "0.45")
	}
}

func TestRoundSnap(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		finest   int64
		wantFrac Fraction
	}{
		{"off-ruler snaps to 32nds", 0.45, 100, Fraction{7, 16}},
		{"negative snaps", -0.45, 100, Fraction{-7, 16}},
		{"whole numbers are marks", 1.0, 64, Fraction{1, 1}},
		{"graduations unchanged", 0.3, 64, Fraction{19, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := RoundWith(tt.value, Options{Finest: tt.finest, Policy: PolicySnap})
			if err != nil {
				t.Fatal(err)
			}
			if !m.OnRuler {
				t.Errorf("OnRuler = false, want true")
			}
			if m.Fraction != tt.wantFrac {
				t.Errorf("Fraction = %v, want %v", m.Fraction, tt.wantFrac)
			}
			if m.Value != tt.wantFrac.Float64() {
				t.Errorf("Value = %v, want %v", m.Value, tt.wantFrac.Float64())
			}
		})
	}
}

func TestRoundErrors(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		finest int64
		code   errors.Code
	}{
		{"zero denominator", 0.5, 0, errors.ErrCodeConfiguration},
		{"negative denominator", 0.5, -8, errors.ErrCodeConfiguration},
		{"NaN", math.NaN(), 64, errors.ErrCodeInvalidInput},
		{"infinity", math.Inf(-1), 64, errors.ErrCodeInvalidInput},
		{"too large", 1e300, 64, errors.ErrCodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Round(tt.value, tt.finest)
			if !errors.Is(err, tt.code) {
				t.Errorf("Round(%v, %d) error = %v, want %s", tt.value, tt.finest, err, tt.code)
			}
		})
	}
}

func TestRoundWithDefaults(t *testing.T) {
	m, err := RoundWith(0.3, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if m.Fraction != (Fraction{19, 64}) {
		t.Errorf("zero Options should round to 64ths, got %v", m.Fraction)
	}
}

func TestFraction(t *testing.T) {
	if got := (Fraction{6, -8}).Reduce(); got != (Fraction{-3, 4}) {
		t.Errorf("Reduce(6/-8) = %v, want -3/4", got)
	}
	if got := (Fraction{0, 64}).Reduce(); got != (Fraction{0, 1}) {
		t.Errorf("Reduce(0/64) = %v, want 0/1", got)
	}
	if got := (Fraction{7, 1}).String(); got != "7" {
		t.Errorf("String(7/1) = %q, want %q", got, "7")
	}
	if !(Fraction{8, 4}).IsWhole() || (Fraction{3, 4}).IsWhole() {
		t.Error("IsWhole mismatch")
	}
	text, _ := Fraction{29, 64}.MarshalText()
	if string(text) != "29/64" {
		t.Errorf("MarshalText = %q, want %q", text, "29/64")
	}
}

func TestDivRoundHalfEven(t *testing.T) {
	tests := []struct{ a, b, want int64 }{
		{7, 2, 4},  // 3.5 -> 4
		{5, 2, 2},  // 2.5 -> 2
		{10, 3, 3}, // 3.33 -> 3
		{11, 3, 4}, // 3.67 -> 4
		{8, 4, 2},
	}
	for _, tt := range tests {
		if got := divRoundHalfEven(tt.a, tt.b); got != tt.want {
			t.Errorf("divRoundHalfEven(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
