package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/luthier/pkg/spacing"
)

// spacingOpts holds the command-line flags for the spacing command.
type spacingOpts struct {
	nut    string   // nut width, any unit
	gauges []string // string gauges low to high, any unit
	edge   string   // distance from the nut edges, any unit
	flush  bool     // measure the edge distance to the string's outside
}

// spacingResult is what the spacing command prints.
type spacingResult struct {
	NutWidth float64   `json:"nut_width" toml:"nut_width" yaml:"nut_width"`
	Gauges   []float64 `json:"gauges" toml:"gauges" yaml:"gauges"`

	spacing.Summary `yaml:",inline"`
}

// spacingCommand creates the spacing command.
func (c *CLI) spacingCommand() *cobra.Command {
	var (
		opts spacingOpts
		out  outputOpts
	)

	cmd := &cobra.Command{
		Use:   "spacing",
		Short: "Lay out strings across a nut",
		Long: `Lay out strings across a nut so the gap between adjacent strings is equal.

The outer string centers sit --edge from the nut edges; with --flush the
outside of each outer string does instead. Positions are string centers
measured from the bass edge. Lengths accept units (42mm); bare numbers are
inches. Defaults come from the [spacing] section of the config.`,
		Example: `  luthier spacing --nut 1.625 --gauges .046,.036,.026,.017,.013,.010
  luthier spacing --nut 43mm --gauges 1.17mm,0.66mm,0.25mm --flush -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSpacing(cmd, opts, out)
		},
	}

	cmd.Flags().StringVar(&opts.nut, "nut", "", "nut width")
	cmd.Flags().StringSliceVarP(&opts.gauges, "gauges", "g", nil, "string gauges, low to high, comma separated")
	cmd.Flags().StringVar(&opts.edge, "edge", "", "distance from each nut edge")
	cmd.Flags().BoolVar(&opts.flush, "flush", false, "measure --edge to the outside of the outer strings")
	out.register(cmd)

	return cmd
}

func (c *CLI) runSpacing(cmd *cobra.Command, opts spacingOpts, out outputOpts) error {
	cfg := c.settings()
	logger := loggerFromContext(cmd.Context())

	nut := cfg.Spacing.NutWidth
	if opts.nut != "" {
		v, err := parseLength("nut", opts.nut)
		if err != nil {
			return err
		}
		nut = v
	}

	gauges := cfg.Spacing.Gauges
	if len(opts.gauges) > 0 {
		g, err := parseGauges(opts.gauges)
		if err != nil {
			return err
		}
		gauges = g
	}

	sopts := cfg.SpacingOptions()
	if opts.edge != "" {
		v, err := parseLength("edge", opts.edge)
		if err != nil {
			return err
		}
		sopts.EdgeDistance = v
	}
	if cmd.Flags().Changed("flush") {
		sopts.EdgeFlush = opts.flush
	}

	logger.Debug("Computing spacing", "nut", nut, "strings", len(gauges), "edge", sopts.EdgeDistance, "flush", sopts.EdgeFlush)
	layout, err := spacing.Compute(nut, gauges, sopts)
	if err != nil {
		return err
	}

	result := spacingResult{NutWidth: nut, Gauges: gauges, Summary: layout.Summary()}
	return c.emit(cmd, out, result, func(w io.Writer) {
		printSpacing(w, result, layout)
	})
}

func printSpacing(w io.Writer, r spacingResult, l spacing.Layout) {
	rows := make([][]string, len(r.Gauges))
	for i, g := range r.Gauges {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(g, 'f', -1, 64),
			l.Positions[i].String(),
		}
	}
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d strings on a %v in nut", len(r.Gauges), r.NutWidth)))
	fmt.Fprintln(w, renderTable([]string{"String", "Gauge", "Center"}, rows, 1, 2))
	printKeyValue(w, "gap", l.Spacing.String()+" in")
}
