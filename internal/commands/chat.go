package commands

import (
	"github.com/spf13/cobra"

	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/api"
	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/config"
	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the QA answer service.

Questions are sent one at a time; a new question cannot be submitted
while one is pending. Type 'exit', 'quit', or press Ctrl+C to end
the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg, _ := config.LoadConfig()

	client := api.NewClient(getEndpoint(), api.WithAskPath(cfg.AskPath))

	return tui.RunChat(client, client.AskURL())
}
