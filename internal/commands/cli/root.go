// Package cli provides the CLI command structure for eblp.
package cli

import (
	"fmt"
	"strings"

	"github.com/andrei-cloud/eblp/internal/config"
	"github.com/andrei-cloud/eblp/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCommand creates and returns the root command with all subcommands.
func NewRootCommand() (*cobra.Command, error) {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "eblp",
		Short: "EblanPlug plugin compiler",
		Long: `Compile EblanPlug plugin documents (name, version, description, author,
id and script in key=[value] form) into validated .eblp files.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Initialize configuration before running any command.
			if err := config.Initialize(cfgFile, cmd.Flags()); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			// Normalize log level and format from config (CLI flags override via viper).
			cfg := config.Get()
			logLevel := strings.TrimSpace(strings.ToLower(cfg.Log.Level))
			logFormat := strings.TrimSpace(strings.ToLower(cfg.Log.Format))
			logging.InitLogger(logLevel == "debug", logFormat == "human")

			return nil
		},
	}

	// Add persistent flags that affect all commands.
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.eblp/config.yaml)")

	// Add global flags that can override config file settings.
	rootCmd.PersistentFlags().
		String("log-level", "info", "logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "logging format (human, json)")
	rootCmd.PersistentFlags().String("plugin-path", "plugins", "path to compiled plugin directory")

	// Register all commands.
	if err := RegisterCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	return rootCmd, nil
}
