// Package commands provides the CLI commands for qa-assistant.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/config"
)

var (
	// Global flags
	baseFlag   string
	hostFlag   string
	portFlag   string
	outputFlag string
	fileFlag   string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qa-assistant [question]",
	Short: "Terminal client for the QA answer service",
	Long: `qa-assistant forwards a question to the QA answer service and
renders the reply in your terminal.

The service address comes from API_BASE, or API_HOST/API_PORT, or is
left relative so a local dev proxy can forward it.

Examples:
  qa-assistant chat                     Start interactive chat
  qa-assistant "What is Go?"            Send a single question
  qa-assistant -f question.md           Read question from file
  cat question.md | qa-assistant        Read question from stdin
  qa-assistant "Hello" -o answer.md     Save answer to file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("qa-assistant %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runAsk(string(data))
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runAsk(string(data))
		}

		if len(args) > 0 {
			return runAsk(args[0])
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseFlag, "base", "", "Full base URL of the answer service (overrides API_BASE)")
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "Answer service host (overrides API_HOST)")
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "Answer service port (overrides API_PORT)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save answer to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read question from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// getEndpoint resolves the endpoint configuration once per invocation:
// environment first, CLI flags on top
func getEndpoint() config.Endpoint {
	ep := config.EndpointFromEnv()
	if baseFlag != "" {
		ep.Base = baseFlag
	}
	if hostFlag != "" {
		ep.Host = hostFlag
	}
	if portFlag != "" {
		ep.Port = portFlag
	}
	return ep
}
