// Package tui provides the interactive compiler command.
package tui

import (
	"github.com/andrei-cloud/eblp/internal/config"
	"github.com/andrei-cloud/eblp/internal/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewTUICommand creates the tui command.
func NewTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [INPUT]",
		Short: "Open the interactive compiler",
		Long: `Open an interactive screen to load a plugin document, review validation
errors and compile it to .eblp. Compiling is disabled until a valid document is loaded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTUI,
	}
}

func runTUI(_ *cobra.Command, args []string) error {
	// The console pane replaces log output while the screen is active.
	log.Logger = log.Logger.Level(zerolog.Disabled)

	cfg := config.Get()
	sess := session.New(session.Options{
		OutputDir: cfg.Compiler.OutputDir,
		Overwrite: cfg.Compiler.Overwrite,
	})

	source := ""
	if len(args) == 1 {
		source = args[0]
	}

	return runCompilerTUI(sess, source)
}
