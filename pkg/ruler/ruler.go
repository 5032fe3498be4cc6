package ruler

import (
	"math"
	"strconv"

	"github.com/matzehuels/luthier/pkg/errors"
)

// DefaultFinest is the finest ruler division used when none is given.
const DefaultFinest int64 = 64

// snapDenominator is the division PolicySnap falls back to.
const snapDenominator = 32

// maxScaled bounds |value| * finest so the numerator stays an exact integer.
const maxScaled = 1 << 53

// Policy selects what happens to values whose nearest 1/finest mark does not
// reduce to a ruler graduation.
type Policy int

const (
	// PolicyFallback returns the unrounded value.
	PolicyFallback Policy = iota
	// PolicySnap rounds to the nearest 32nd instead; whole numbers are kept.
	PolicySnap
)

// String returns "fallback" or "snap".
func (p Policy) String() string {
	if p == PolicySnap {
		return "snap"
	}
	return "fallback"
}

// Options controls ruler rounding.
type Options struct {
	// Finest is the smallest division on the ruler. Zero means DefaultFinest.
	Finest int64
	Policy Policy
}

// DefaultOptions returns 64ths with the fallback policy.
func DefaultOptions() Options {
	return Options{Finest: DefaultFinest, Policy: PolicyFallback}
}

// SetDefaults fills zero-valued fields.
func (o *Options) SetDefaults() {
	if o.Finest == 0 {
		o.Finest = DefaultFinest
	}
}

// Validate checks the options after defaults are applied.
func (o Options) Validate() error {
	return errors.ValidateDenominator(o.Finest)
}

// Mark is a value placed on a ruler.
type Mark struct {
	// Fraction is the signed nearest candidate in lowest terms. When OnRuler
	// is true it is the graduation the value was rounded to.
	Fraction Fraction `json:"fraction" toml:"fraction" yaml:"fraction"`

	// Value is Fraction's value when OnRuler, otherwise the unrounded input.
	Value float64 `json:"value" toml:"value" yaml:"value"`

	OnRuler bool `json:"on_ruler" toml:"on_ruler" yaml:"on_ruler"`
}

// String renders the fraction when on the ruler, otherwise the raw value.
func (m Mark) String() string {
	if m.OnRuler {
		return m.Fraction.String()
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

// Round places value on a ruler whose finest division is 1/finest, using the
// fallback policy. finest must be at least 1.
func Round(value float64, finest int64) (Mark, error) {
	if err := errors.ValidateDenominator(finest); err != nil {
		return Mark{}, err
	}
	return RoundWith(value, Options{Finest: finest})
}

// RoundWith places value on the ruler described by opts.
//
// The magnitude is multiplied by the finest division, rounded half to even and
// reduced. Graduations are 2, 4, 8, 16, 32 and the finest division itself;
// the sign of value is applied to whatever is returned. Zero is always 0/finest.
func RoundWith(value float64, opts Options) (Mark, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return Mark{}, err
	}
	if err := errors.ValidateFinite("value", value); err != nil {
		return Mark{}, err
	}
	if value == 0 {
		return Mark{Fraction: Fraction{Num: 0, Den: opts.Finest}, OnRuler: true}, nil
	}

	magnitude := math.Abs(value)
	scaled := math.RoundToEven(magnitude * float64(opts.Finest))
	if scaled > maxScaled {
		return Mark{}, errors.New(errors.ErrCodeOutOfRange, "%v is too large to place on a 1/%d ruler", value, opts.Finest)
	}
	candidate := Fraction{Num: int64(scaled), Den: opts.Finest}.Reduce()

	if isGraduation(candidate.Den, opts.Finest) {
		return signedMark(candidate, value < 0), nil
	}
	if opts.Policy == PolicySnap {
		return signedMark(snap(candidate, magnitude), value < 0), nil
	}
	if value < 0 {
		candidate = candidate.Neg()
	}
	return Mark{Fraction: candidate, Value: value}, nil
}

// isGraduation reports whether den is one of the denominators printed on a
// ruler with the given finest division.
func isGraduation(den, finest int64) bool {
	switch den {
	case 2, 4, 8, 16, 32:
		return true
	}
	return den == finest
}

// snap handles a candidate that is not a graduation under PolicySnap.
func snap(candidate Fraction, magnitude float64) Fraction {
	if candidate.Den == 1 {
		return candidate
	}
	return Fraction{Num: int64(math.RoundToEven(magnitude * snapDenominator)), Den: snapDenominator}.Reduce()
}

func signedMark(f Fraction, negative bool) Mark {
	if negative {
		f = f.Neg()
	}
	return Mark{Fraction: f, Value: f.Float64(), OnRuler: true}
}

// roundFraction is RoundWith for an exact rational input. On fallback it
// returns f itself. opts must already be validated.
func roundFraction(f Fraction, opts Options) (Fraction, bool, error) {
	if f.Num == 0 {
		return Fraction{Num: 0, Den: opts.Finest}, true, nil
	}

	magnitude := f.abs()
	if magnitude.Num > math.MaxInt64/max(opts.Finest, snapDenominator) {
		return Fraction{}, false, errors.New(errors.ErrCodeOutOfRange, "%s is too large to place on a 1/%d ruler", f, opts.Finest)
	}
	candidate := Fraction{Num: divRoundHalfEven(magnitude.Num*opts.Finest, magnitude.Den), Den: opts.Finest}.Reduce()

	negative := f.Num < 0
	switch {
	case isGraduation(candidate.Den, opts.Finest):
	case opts.Policy == PolicySnap && candidate.Den == 1:
	case opts.Policy == PolicySnap:
		candidate = Fraction{Num: divRoundHalfEven(magnitude.Num*snapDenominator, magnitude.Den), Den: snapDenominator}.Reduce()
	default:
		return f, false, nil
	}
	if negative {
		candidate = candidate.Neg()
	}
	return candidate, true, nil
}
