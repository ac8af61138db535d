package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anandita/storefront/internal/config"
	webCmd "github.com/anandita/storefront/web/cmd"
)

func newWebCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Serve the storefront web UI",
		Run: func(cmd *cobra.Command, args []string) {
			webCmd.RunWebServer(cmd.Context(), cfg)
		},
	}
}
