package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/luthier/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON HTTP API",
		Long: `Serve the calculators as a JSON HTTP API until interrupted.

Endpoints: GET /healthz and POST /api/v1/{parse,convert,round,spacing,fretboard}.
Ruler and spacing defaults for requests come from the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings()
			if addr == "" {
				addr = cfg.Server.Addr
			}
			sopts := cfg.SpacingOptions()
			srv := server.New(c.Logger, server.Options{
				Ruler:   cfg.RulerOptions(),
				Spacing: &sopts,
			})
			printInfo(cmd.ErrOrStderr(), "Listening on %s", StyleNumber.Render(addr))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
