package errors

import (
	"math"
)

// ValidateFinite rejects NaN and infinite values. name identifies the value
// in the error message (e.g. "scale length").
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number, got %v", name, v)
	}
	return nil
}

// ValidatePositive rejects values that are not finite and strictly positive.
// Geometry that cannot exist is a configuration error, not an input typo.
func ValidatePositive(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeConfiguration, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateNonNegative rejects values that are not finite or are below zero.
func ValidateNonNegative(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeConfiguration, "%s cannot be negative, got %v", name, v)
	}
	return nil
}

// ValidateGauges checks a low-to-high string gauge sequence: at least two
// strings, every diameter positive.
func ValidateGauges(gauges []float64) error {
	if len(gauges) < 2 {
		return New(ErrCodeConfiguration, "at least 2 string gauges are required, got %d", len(gauges))
	}
	for i, g := range gauges {
		if err := ValidateFinite("gauge", g); err != nil {
			return err
		}
		if g <= 0 {
			return New(ErrCodeConfiguration, "gauge %d must be positive, got %v", i+1, g)
		}
	}
	return nil
}

// ValidateFretCount rejects fretboards without frets.
func ValidateFretCount(n int) error {
	if n < 1 {
		return New(ErrCodeConfiguration, "fret count must be at least 1, got %d", n)
	}
	return nil
}

// ValidateDenominator rejects ruler denominators below 1.
func ValidateDenominator(d int64) error {
	if d < 1 {
		return New(ErrCodeConfiguration, "finest denominator must be at least 1, got %d", d)
	}
	return nil
}
