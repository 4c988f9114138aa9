package cmd

import (
	"github.com/spf13/cobra"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the disabled effect variables as MCP tools over stdio",
	Long: `Starts an MCP server on stdin/stdout. Every variable becomes a tool named
after its handle (disabledEffects, disabledEffectsRaw) that accepts an optional
"args" array, e.g. {"args": ["events"]}. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := mcpserver.New(current.vars, version, current.logger.Sugar())
		current.logger.Sugar().Infof("Serving %d tools for profile %s", len(current.vars.Variables()), current.cfg.Profile())
		return srv.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
