package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/luthier/pkg/convert"
	"github.com/matzehuels/luthier/pkg/ruler"
	"github.com/matzehuels/luthier/pkg/units"
)

// rulerOpts holds the ruler flags shared by convert, round and interactive.
type rulerOpts struct {
	finest int64
	snap   bool
}

func (o *rulerOpts) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&o.finest, "finest", 0, "finest ruler division, e.g. 32 or 64 (default from config)")
	cmd.Flags().BoolVar(&o.snap, "snap", false, "snap values off the ruler to the nearest 1/32 instead of leaving them unrounded")
}

// rulerOptions merges the flags over the configured ruler.
func (c *CLI) rulerOptions(cmd *cobra.Command, o rulerOpts) ruler.Options {
	opts := c.settings().RulerOptions()
	if cmd.Flags().Changed("finest") {
		opts.Finest = o.finest
		if opts.Finest == 0 {
			opts.Finest = -1 // reject rather than silently default
		}
	}
	if cmd.Flags().Changed("snap") {
		opts.Policy = ruler.PolicyFallback
		if o.snap {
			opts.Policy = ruler.PolicySnap
		}
	}
	return opts
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		out outputOpts
		ro  rulerOpts
	)

	cmd := &cobra.Command{
		Use:   "convert <length...>",
		Short: "Show a length in every unit and as a ruler fraction",
		Example: `  luthier convert 25.5in
  luthier convert 648mm --finest 32
  luthier convert "1 3/4" -f yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := convert.Convert(strings.Join(args, " "), c.rulerOptions(cmd, ro))
			if err != nil {
				return err
			}
			return c.emit(cmd, out, result.Report, func(w io.Writer) {
				io.WriteString(w, reportTable(result)+"\n")
			})
		},
	}

	out.register(cmd)
	ro.register(cmd)
	return cmd
}

// reportTable renders a conversion as a two-column table in report order.
func reportTable(c convert.Conversion) string {
	m := c.Report.Map()
	rows := make([][]string, 0, len(convert.Keys))
	for _, k := range convert.Keys {
		rows = append(rows, []string{k, m[k]})
	}
	return StyleTitle.Render(c.Input.String()) + "\n" + renderTable([]string{"Unit", "Length"}, rows, 1)
}

// roundCommand creates the round command.
func (c *CLI) roundCommand() *cobra.Command {
	var (
		out outputOpts
		ro  rulerOpts
	)

	cmd := &cobra.Command{
		Use:   "round <length...>",
		Short: "Round a length to the nearest ruler graduation",
		Long: `Round a length, in inches, to the nearest graduation of a ruler.

Graduations are halves, quarters, eighths, sixteenths, thirty-seconds and the
finest division (64ths by default). A value whose nearest fraction is none of
these is returned unrounded unless --snap is given.`,
		Example: `  luthier round 0.3
  luthier round 0.45 --finest 100 --snap
  luthier round 7.5mm`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := units.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			mark, err := ruler.RoundWith(m.Inches(), c.rulerOptions(cmd, ro))
			if err != nil {
				return err
			}
			return c.emit(cmd, out, mark, func(w io.Writer) {
				printMark(w, mark)
			})
		},
	}

	out.register(cmd)
	ro.register(cmd)
	return cmd
}

func printMark(w io.Writer, m ruler.Mark) {
	if m.OnRuler {
		printSuccess(w, "%s in", StyleNumber.Render(m.Fraction.String()))
		return
	}
	printWarning(w, "%s in is not on the ruler (nearest fraction %s)", m, m.Fraction)
}
