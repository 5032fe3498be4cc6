package units

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/luthier/pkg/errors"
)

// measurementPattern matches, from the start of the string, a mixed number
// ("1 1/2"), a simple fraction ("3/4") or a decimal ("1.5", "3", ".5"),
// followed by an optional unit word. The first alternative that matches wins.
var measurementPattern = regexp.MustCompile(`^((\d+\s+)?\d+/\d+|\d+(?:\.\d+)?|\.\d+)\s*([a-zA-Z]+)?`)

// normalizer reads apostrophes as the feet mark and decimal commas as points.
var normalizer = strings.NewReplacer("'", "ft", "’", "ft", "′", "ft", ",", ".")

// Measurement is a parsed length in the unit it was written in.
type Measurement struct {
	Magnitude float64 `json:"magnitude" toml:"magnitude" yaml:"magnitude"`
	Unit      Unit    `json:"unit" toml:"unit" yaml:"unit"`

	// Token is the unit word as written ("MM", "inch", ...); empty when the
	// number had no unit after it.
	Token string `json:"token,omitempty" toml:"token,omitempty" yaml:"token,omitempty"`

	// Resolved is false when Unit is inches only because Token was absent
	// or not in the abbreviation table.
	Resolved bool `json:"resolved" toml:"resolved" yaml:"resolved"`
}

// Inches returns the measurement converted to inches.
func (m Measurement) Inches() float64 {
	return ToInches(m.Magnitude, m.Unit)
}

// String formats the measurement as "<magnitude> <symbol>".
func (m Measurement) String() string {
	return strconv.FormatFloat(m.Magnitude, 'f', -1, 64) + " " + m.Unit.Symbol()
}

// Parse reads a free-form length such as "1 1/2 in", "5'", "42,5mm" or ".25".
//
// Apostrophes become "ft" and commas become decimal points before matching.
// The inch mark (") is not special: like any unknown unit word it leaves the
// unit at inches. Parse fails with PARSE_ERROR when text does not start with
// a number or a fraction has a zero denominator.
func Parse(text string) (Measurement, error) {
	normalized := normalizer.Replace(strings.TrimSpace(text))

	match := measurementPattern.FindStringSubmatch(normalized)
	if match == nil {
		return Measurement{}, errors.Parse("no leading number in %q", text)
	}

	magnitude, err := parseNumber(match[1])
	if err != nil {
		if errors.GetCode(err) != "" {
			return Measurement{}, err
		}
		return Measurement{}, errors.Wrap(errors.ErrCodeParse, err, "invalid number in %q", text)
	}

	m := Measurement{Magnitude: magnitude, Unit: Inches, Token: match[3]}
	if u, ok := Lookup(m.Token); ok {
		m.Unit = u
		m.Resolved = true
	}
	return m, nil
}

// parseNumber evaluates the numeric token matched by measurementPattern.
func parseNumber(s string) (float64, error) {
	if !strings.Contains(s, "/") {
		return strconv.ParseFloat(s, 64)
	}

	if fields := strings.Fields(s); len(fields) == 2 {
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, err
		}
		num, den, err := splitFraction(fields[1])
		if err != nil {
			return 0, err
		}
		return whole + num/den, nil
	}

	if _, _, err := splitFraction(s); err != nil {
		return 0, err
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, errors.Parse("malformed fraction %q", s)
	}
	f, _ := r.Float64()
	return f, nil
}

func splitFraction(s string) (num, den float64, err error) {
	n, d, _ := strings.Cut(s, "/")
	if num, err = strconv.ParseFloat(n, 64); err != nil {
		return 0, 0, err
	}
	if den, err = strconv.ParseFloat(d, 64); err != nil {
		return 0, 0, err
	}
	if den == 0 {
		return 0, 0, errors.Parse("zero denominator in %q", s)
	}
	return num, den, nil
}
