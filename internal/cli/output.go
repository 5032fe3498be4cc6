package cli

import (
	"io"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/luthier/pkg/io"
)

// outputOpts holds the flags shared by every command that prints a result.
type outputOpts struct {
	format string // text, json, toml or yaml; empty means the config default
	output string // output file path (stdout if empty)
}

func (o *outputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format: text, json, toml, yaml (default from config)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the result to a file instead of stdout")
}

// emit writes v in the selected format. text renders the human-readable
// form; it is only called for the text format.
func (c *CLI) emit(cmd *cobra.Command, o outputOpts, v any, text func(w io.Writer)) error {
	name := o.format
	if name == "" {
		name = c.settings().Output.Format
	}
	format, err := pkgio.ParseFormat(name)
	if err != nil {
		return err
	}

	if format == pkgio.FormatText {
		if o.output != "" {
			loggerFromContext(cmd.Context()).Warn("--output ignored for text format")
		}
		text(cmd.OutOrStdout())
		return nil
	}

	if o.output == "" {
		return pkgio.Write(cmd.OutOrStdout(), format, v)
	}
	if err := pkgio.Export(o.output, format, v); err != nil {
		return err
	}
	printFile(cmd.ErrOrStderr(), o.output)
	return nil
}
