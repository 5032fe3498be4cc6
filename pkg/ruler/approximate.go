package ruler

import (
	"math/big"

	"github.com/matzehuels/luthier/pkg/errors"
)

// Approximate returns the fraction closest to value among those with a
// denominator no larger than maxDen. value is taken at its exact binary
// value, so 0.1 becomes 1/10 rather than 3602879701896397/36028797018963968.
//
// The search walks the continued-fraction convergents of value until the
// next one would exceed maxDen, then picks between the last convergent and
// the best semiconvergent; ties go to the convergent.
func Approximate(value float64, maxDen int64) (Fraction, error) {
	if err := errors.ValidateFinite("value", value); err != nil {
		return Fraction{}, err
	}
	if err := errors.ValidateDenominator(maxDen); err != nil {
		return Fraction{}, err
	}

	exact := new(big.Rat).SetFloat64(value)
	limit := big.NewInt(maxDen)
	if exact.Denom().Cmp(limit) <= 0 {
		return toFraction(exact)
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(exact.Num())
	d := new(big.Int).Set(exact.Denom())

	a, q2, t := new(big.Int), new(big.Int), new(big.Int)
	for {
		// d stays positive, so Euclidean division is floor division here.
		a.Div(n, d)
		q2.Add(q0, t.Mul(a, q1))
		if q2.Cmp(limit) > 0 {
			break
		}
		p0, q0, p1, q1 = p1, q1, new(big.Int).Add(p0, t.Mul(a, p1)), new(big.Int).Set(q2)
		n, d = d, new(big.Int).Sub(n, t.Mul(a, d))
	}

	k := new(big.Int).Div(new(big.Int).Sub(limit, q0), q1)
	semi := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	conv := new(big.Rat).SetFrac(p1, q1)

	if distance(conv, exact).Cmp(distance(semi, exact)) <= 0 {
		return toFraction(conv)
	}
	return toFraction(semi)
}

func distance(a, b *big.Rat) *big.Rat {
	d := new(big.Rat).Sub(a, b)
	return d.Abs(d)
}

func toFraction(r *big.Rat) (Fraction, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Fraction{}, errors.New(errors.ErrCodeOutOfRange, "%s does not fit a ruler fraction", r.FloatString(3))
	}
	return Fraction{Num: r.Num().Int64(), Den: r.Denom().Int64()}, nil
}
