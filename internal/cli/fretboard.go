package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/luthier/pkg/fretboard"
)

// fretboardOpts holds the command-line flags for the fretboard command.
type fretboardOpts struct {
	scale       string
	frets       int
	startRadius string
	endRadius   string
}

// fretboardCommand creates the fretboard command.
func (c *CLI) fretboardCommand() *cobra.Command {
	var (
		opts fretboardOpts
		out  outputOpts
	)

	cmd := &cobra.Command{
		Use:   "fretboard",
		Short: "Compute fret positions and radii for a compound-radius fretboard",
		Long: `Compute equal-tempered fret positions and the radius at each fret.

The radius changes linearly from --start-radius at the nut to --end-radius
one fret past the last fret. Lengths accept units (648mm); bare numbers are
inches. Defaults come from the [fretboard] section of the config.`,
		Example: `  luthier fretboard --scale 25.5 --frets 22 --start-radius 10 --end-radius 16
  luthier fretboard --scale 648mm --frets 24 -f yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFretboard(cmd, opts, out)
		},
	}

	cmd.Flags().StringVar(&opts.scale, "scale", "", "scale length")
	cmd.Flags().IntVar(&opts.frets, "frets", 0, "number of frets")
	cmd.Flags().StringVar(&opts.startRadius, "start-radius", "", "fretboard radius at the nut")
	cmd.Flags().StringVar(&opts.endRadius, "end-radius", "", "fretboard radius one fret past the last fret")
	out.register(cmd)

	return cmd
}

func (c *CLI) runFretboard(cmd *cobra.Command, opts fretboardOpts, out outputOpts) error {
	cfg := c.settings().Fretboard

	scale, err := lengthOr("scale", opts.scale, cfg.ScaleLength)
	if err != nil {
		return err
	}
	start, err := lengthOr("start-radius", opts.startRadius, cfg.StartRadius)
	if err != nil {
		return err
	}
	end, err := lengthOr("end-radius", opts.endRadius, cfg.EndRadius)
	if err != nil {
		return err
	}
	frets := cfg.Frets
	if cmd.Flags().Changed("frets") {
		frets = opts.frets
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	table, err := fretboard.Compute(start, end, scale, frets)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed %d frets", len(table.Frets)))

	return c.emit(cmd, out, table, func(w io.Writer) {
		printFretboard(w, table)
	})
}

// lengthOr parses text as a length, or returns def when text is empty.
func lengthOr(name, text string, def float64) (float64, error) {
	if text == "" {
		return def, nil
	}
	return parseLength(name, text)
}

func printFretboard(w io.Writer, t fretboard.Table) {
	rows := make([][]string, len(t.Frets))
	for i, f := range t.Frets {
		rows[i] = []string{
			strconv.Itoa(f.Number),
			strconv.FormatFloat(f.Position, 'f', 4, 64),
			strconv.FormatFloat(f.Spacing, 'f', 4, 64),
			strconv.FormatFloat(f.Radius, 'f', 3, 64),
		}
	}
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%v in scale, %v in to %v in radius", t.ScaleLength, t.StartRadius, t.EndRadius)))
	fmt.Fprintln(w, renderTable([]string{"Fret", "Position", "Spacing", "Radius"}, rows, 1, 2, 3))
	printKeyValue(w, "board length", strconv.FormatFloat(t.FretboardLength, 'f', 4, 64)+" in")
	printKeyValue(w, "saddle radius", strconv.FormatFloat(t.SaddleRadius, 'f', 3, 64)+" in")
}
