package cli

import (
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if services == nil || services.Serve == nil {
			return errNotConfigured
		}
		return services.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
