// Package cli implements the luthier command-line interface.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/luthier/pkg/buildinfo"
	"github.com/matzehuels/luthier/pkg/config"
	"github.com/matzehuels/luthier/pkg/errors"
	"github.com/matzehuels/luthier/pkg/units"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "luthier"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Luthier does the measuring math of guitar building",
		Long: `Luthier parses free-form lengths, converts them between units, rounds them
to the nearest ruler fraction, lays out strings across a nut and computes
fret positions for compound-radius fretboards.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: search "+config.EnvConfigPath+", ./luthier.toml, ~/.config/luthier)")

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.roundCommand())
	root.AddCommand(c.spacingCommand())
	root.AddCommand(c.fretboardCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	cfg, path, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if path != "" {
		c.Logger.Debug("Loaded config", "path", path)
	}
	c.cfg = cfg
	return nil
}

// settings returns the loaded config, or defaults when setup has not run.
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		c.cfg = config.DefaultConfig()
	}
	return c.cfg
}

// =============================================================================
// Input Helpers
// =============================================================================

// parseLength reads a length flag in any unit and returns inches. A bare
// number is inches.
func parseLength(name, text string) (float64, error) {
	m, err := units.Parse(text)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "--%s: %s", name, errors.UserMessage(err))
	}
	return m.Inches(), nil
}

// parseGauges reads a gauge list. Entries may carry units ("1.17mm").
func parseGauges(list []string) ([]float64, error) {
	gauges := make([]float64, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		g, err := parseLength("gauges", s)
		if err != nil {
			return nil, err
		}
		gauges = append(gauges, g)
	}
	return gauges, nil
}
