package ruler_test

import (
	"fmt"

	"github.com/matzehuels/luthier/pkg/ruler"
)

func ExampleRound() {
	m, _ := ruler.Round(0.3, 64)
	fmt.Println(m.Fraction, m.OnRuler)

	// 9/20 is not a graduation on a ruler divided into hundredths.
	m, _ = ruler.Round(0.45, 100)
	fmt.Println(m, m.OnRuler)
	// Output:
	// 19/64 true
	// 0.45 false
}

func ExampleMixedNumber() {
	for _, v := range []float64{25.5, 0.25, 3.14159} {
		s, _ := ruler.MixedNumber(v, ruler.DefaultOptions())
		fmt.Println(s)
	}
	// Output:
	// 25 1/2
	// 1/4
	// 3 9/64
}
