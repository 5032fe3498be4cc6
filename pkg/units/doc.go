// Package units parses free-form length strings and converts lengths between
// the supported units and canonical inches.
//
// # Parsing
//
// [Parse] accepts measurements the way people write them down:
//
//	units.Parse("1 1/2 in")  // 1.5 inches
//	units.Parse("3/4")       // 0.75 inches (no unit means inches)
//	units.Parse("5'")        // 5 feet
//	units.Parse("42,5mm")    // 42.5 millimeters
//	units.Parse(".5 cm")     // 0.5 centimeters
//
// A leading number is required; everything after the unit word is ignored.
// A unit word that is not in the abbreviation table falls back to inches, and
// the returned [Measurement] records that through its Resolved field.
//
// # Conversion
//
// All conversions pass through inches. Each [Unit] has a fixed factor: the
// number of that unit in one inch. [ToInches] divides by the factor and
// [FromInches] multiplies by it.
package units
