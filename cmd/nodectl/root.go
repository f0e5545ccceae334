package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openchami/nodectl/internal/config"
)

// newRootCmd builds the command tree. Configuration is an explicit value
// threaded into each subcommand; flags override environment defaults.
func newRootCmd() *cobra.Command {
	cfg := config.FromEnv()
	var timeoutSeconds int

	root := &cobra.Command{
		Use:           "nodectl",
		Short:         "Command line client for the node-orchestrator API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if timeoutSeconds > 0 {
				cfg.Timeout = time.Duration(timeoutSeconds) * time.Second
			}
		},
	}

	root.PersistentFlags().StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "Base URL for the API")
	root.PersistentFlags().StringVar(&cfg.Token, "jwt", cfg.Token, "JWT for API authentication")
	root.PersistentFlags().StringVar(&cfg.SchemaDir, "schema-dir", cfg.SchemaDir, "Directory containing JSON schema files")
	root.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "Per-request timeout in seconds")

	root.AddCommand(
		newCreateCmd(&cfg),
		newGetCmd(&cfg),
		newUpdateCmd(&cfg),
		newDeleteCmd(&cfg),
		newTokenCmd(),
		newSchemasCmd(),
		newFakedataCmd(),
		newVersionCmd(),
	)

	return root
}

// requireConfig fails fast on configuration that makes every request
// impossible.
func requireConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
