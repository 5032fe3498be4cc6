// Package ruler rounds decimal inches to the marks found on a physical ruler
// and renders them as mixed numbers.
//
// A ruler is graduated in halves, quarters, eighths, sixteenths, thirty-seconds
// and a finest division (64ths by default). [Round] places a value on the
// nearest 1/finest mark and reports whether the reduced fraction is one of
// those graduations:
//
//	m, _ := ruler.Round(0.3, 64)
//	m.Fraction // 19/64
//	m.OnRuler  // true
//
// # Fallback
//
// When the reduced fraction is not a graduation, the default policy gives up
// rather than approximating further: the [Mark] carries the unrounded input
// and OnRuler is false. Whole numbers reduce to a denominator of 1 and take
// this path too. With a finest division of 100, 0.45 reduces to 9/20, which
// no ruler shows, so the value comes back as 0.45. [PolicySnap] instead moves
// such values to the nearest 32nd and treats whole numbers as marks.
//
// # Mixed numbers
//
// [MixedNumber] first finds the simplest fraction with a denominator no larger
// than the finest division that approximates the value, rounds that to the
// ruler, and renders it: "25", "25 1/2", "1/4". Values of one inch or more,
// and values whose fractional part is at least a half, get a whole-number
// prefix ("0 3/4"); smaller values are rendered as a bare fraction.
package ruler
