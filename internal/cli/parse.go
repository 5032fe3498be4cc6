package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/luthier/pkg/units"
)

// parseCommand creates the parse command.
func (c *CLI) parseCommand() *cobra.Command {
	var out outputOpts

	cmd := &cobra.Command{
		Use:   "parse <length...>",
		Short: "Parse a free-form length",
		Long: `Parse a free-form length into a magnitude and unit.

Accepted numbers are decimals (25.5, .75, 3,5), fractions (3/4) and mixed
numbers (1 1/2). An apostrophe means feet. A missing or unknown unit means
inches.`,
		Example: `  luthier parse "1 1/2 in"
  luthier parse 5\'
  luthier parse 42mm -f json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := units.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			if !m.Resolved && m.Token != "" {
				logger.Warnf("Unknown unit %q, assuming inches", m.Token)
			}
			logger.Debug("Parsed", "magnitude", m.Magnitude, "unit", m.Unit, "token", m.Token)

			return c.emit(cmd, out, m, func(w io.Writer) {
				printMeasurement(w, m)
			})
		},
	}

	out.register(cmd)
	return cmd
}

func printMeasurement(w io.Writer, m units.Measurement) {
	printKeyValue(w, "magnitude", strconv.FormatFloat(m.Magnitude, 'f', -1, 64))
	printKeyValue(w, "unit", m.Unit.String())
	printKeyValue(w, "inches", strconv.FormatFloat(m.Inches(), 'f', -1, 64))
	if !m.Resolved {
		if m.Token == "" {
			printKeyValue(w, "note", "no unit given, assumed inches")
		} else {
			printWarning(w, "unit %q not recognized, assumed inches", m.Token)
		}
	}
}
