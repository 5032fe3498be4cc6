package units

// ToInches converts v, expressed in u, to inches.
func ToInches(v float64, u Unit) float64 {
	return v / u.Factor()
}

// FromInches converts a length in inches to u.
func FromInches(inches float64, u Unit) float64 {
	return inches * u.Factor()
}

// Convert converts v from one unit to another through inches.
func Convert(v float64, from, to Unit) float64 {
	return FromInches(ToInches(v, from), to)
}
