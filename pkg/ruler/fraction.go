package ruler

import (
	"strconv"
)

// Fraction is a signed rational Num/Den with Den > 0.
type Fraction struct {
	Num int64
	Den int64
}

// Float64 returns the fraction's value.
func (f Fraction) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}

// Reduce returns the fraction in lowest terms with a positive denominator.
// Zero reduces to 0/1.
func (f Fraction) Reduce() Fraction {
	if f.Den < 0 {
		f.Num, f.Den = -f.Num, -f.Den
	}
	if g := gcd(abs64(f.Num), f.Den); g > 1 {
		f.Num /= g
		f.Den /= g
	}
	return f
}

// IsWhole reports whether the fraction is an integer.
func (f Fraction) IsWhole() bool {
	return f.Num%f.Den == 0
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{Num: -f.Num, Den: f.Den}
}

// String renders "num/den", or just "num" when the denominator is 1.
func (f Fraction) String() string {
	if f.Den == 1 {
		return strconv.FormatInt(f.Num, 10)
	}
	return strconv.FormatInt(f.Num, 10) + "/" + strconv.FormatInt(f.Den, 10)
}

// MarshalText encodes the fraction as its String form, so JSON, TOML and
// YAML output show "29/64" rather than a struct.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f Fraction) abs() Fraction {
	if f.Num < 0 {
		return f.Neg()
	}
	return f
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// divRoundHalfEven returns a/b rounded to the nearest integer, ties to even.
// a must be non-negative and b positive.
func divRoundHalfEven(a, b int64) int64 {
	q, r := a/b, a%b
	switch {
	case r > b-r:
		q++
	case r == b-r && q%2 == 1:
		q++
	}
	return q
}
