package ruler

import (
	"math"
	"strconv"
)

// MixedNumber renders value (in inches) as the nearest ruler fraction:
// "25" for whole numbers, "25 1/2" for values of at least one inch or with a
// fractional part of at least a half, and a bare "1/4" otherwise. Negative
// values carry a leading "-".
//
// The value is first approximated by the simplest fraction with a denominator
// no larger than opts.Finest, which is then placed on the ruler. Under the
// fallback policy an approximation that is not a graduation is rendered as is.
func MixedNumber(value float64, opts Options) (string, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return "", err
	}

	approx, err := Approximate(value, opts.Finest)
	if err != nil {
		return "", err
	}
	f, _, err := roundFraction(approx, opts)
	if err != nil {
		return "", err
	}
	return formatMixed(f, value), nil
}

func formatMixed(f Fraction, value float64) string {
	sign := ""
	if f.Num < 0 {
		sign = "-"
	}
	magnitude := f.abs()

	if magnitude.IsWhole() {
		return sign + strconv.FormatInt(magnitude.Num/magnitude.Den, 10)
	}

	whole := magnitude.Num / magnitude.Den
	rem := Fraction{Num: magnitude.Num % magnitude.Den, Den: magnitude.Den}.Reduce()
	if 2*rem.Num >= rem.Den || math.Abs(value) >= 1 {
		return sign + strconv.FormatInt(whole, 10) + " " + rem.String()
	}
	return sign + magnitude.Reduce().String()
}
