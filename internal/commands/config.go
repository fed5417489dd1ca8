package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/api"
	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Show the resolved endpoint and UI settings.

The endpoint is resolved from --base/--host/--port flags, then the
API_BASE, API_HOST and API_PORT environment variables. An empty base
URL means requests stay relative to the serving origin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig()
	},
}

func runConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Warning: %v (using defaults)\n\n", err)
	}

	ep := getEndpoint()
	client := api.NewClient(ep, api.WithAskPath(cfg.AskPath))

	base := client.BaseURL()
	if base == "" {
		base = "(relative to serving origin)"
	}

	fmt.Println("Endpoint:")
	fmt.Printf("  base url:  %s\n", base)
	fmt.Printf("  ask path:  %s\n", cfg.AskPath)
	fmt.Printf("  ask url:   %s\n", client.AskURL())
	fmt.Println()

	configPath, _ := config.GetConfigPath()
	fmt.Printf("Settings (%s):\n", configPath)
	fmt.Printf("  markdown_style:     %s\n", cfg.MarkdownStyle)
	fmt.Printf("  copy_to_clipboard:  %v\n", cfg.CopyToClipboard)
	fmt.Printf("  verbose:            %v\n", cfg.Verbose)

	return nil
}
