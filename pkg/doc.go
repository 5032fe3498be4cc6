// Package pkg provides the core libraries for Luthier, a measuring toolkit for
// guitar building.
//
// # Overview
//
// Luthier turns free-form lengths ("25.5in", "648 mm", "1 3/4", "5'") into
// numbers, converts them between units, places them on a ruler, and does the
// two layout calculations every build needs: string spacing at the nut and
// fret positions on a compound-radius fretboard.
//
// # Architecture
//
// The typical data flow:
//
//	free-form text
//	      ↓
//	 [units] package (parse magnitude + unit, convert to inches)
//	      ↓
//	 [ruler] package (nearest ruler fraction, mixed numbers)
//	      ↓
//	 [convert] package (report in every unit)
//
// [spacing] and [fretboard] take plain inches and are independent of the
// parsing chain.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/luthier/pkg/convert"
//	    "github.com/matzehuels/luthier/pkg/fretboard"
//	    "github.com/matzehuels/luthier/pkg/ruler"
//	)
//
//	c, _ := convert.Convert("25.5in", ruler.DefaultOptions())
//	fmt.Println(c.Report.Fraction) // 25 1/2 in
//
//	table, _ := fretboard.Compute(10, 16, 25.5, 22)
//	fmt.Println(table.Frets[11].Position) // 12.75
//
// # Main Packages
//
// [units] - Unit table, free-form length parsing and unit conversion.
//
// [ruler] - Rational approximation, ruler graduations (powers of two up to
// 1/64 by default) and mixed-number formatting.
//
// [convert] - One measurement reported in every unit plus its ruler fraction.
//
// [spacing] - String centers across a nut, computed in a six-digit decimal
// context.
//
// [fretboard] - Equal-temperament fret positions and the compound radius at
// each fret.
//
// ## Support
//
// [errors] - Coded errors shared by every package and mapped to HTTP status
// by the API.
//
// [config] - TOML or YAML config file with defaults for every command.
//
// [io] - JSON, TOML and YAML export of results.
//
// [observability] - Hooks for metrics on calculations and API requests.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/spacing/...    # Specific package
//	go test -run Example ./...   # Examples only
//
// [units]: https://pkg.go.dev/github.com/matzehuels/luthier/pkg/units
// [ruler]: https://pkg.go.dev/github.com/matzehuels/luthier/pkg/ruler
// [convert]: https://pkg.go.dev/github.com/matzehuels/luthier/pkg/convert
// [spacing]: https://pkg.go.dev/github.com/matzehuels/luthier/pkg/spacing
// [fretboard]: https://pkg.go.dev/github.com/matzehuels/luthier/pkg/fretboard
// [errors]: https://pkg.go.dev/github.com/matzehuels/luthier/pkg/errors
// [config]: https://pkg.go.dev/github.com/matzehuels/luthier/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/luthier/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/luthier/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/luthier/pkg/buildinfo
package pkg
