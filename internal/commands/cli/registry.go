// Package cli provides centralized command registration.
package cli

import (
	"github.com/andrei-cloud/eblp/internal/commands/cli/compile"
	"github.com/andrei-cloud/eblp/internal/commands/cli/ident"
	"github.com/andrei-cloud/eblp/internal/commands/cli/plugin"
	"github.com/andrei-cloud/eblp/internal/commands/cli/tui"
	"github.com/spf13/cobra"
)

// RegisterCommands registers all root commands.
func RegisterCommands(root *cobra.Command) error {
	root.AddCommand(compile.NewCompileCommand())
	root.AddCommand(compile.NewCheckCommand())
	root.AddCommand(ident.NewIDCommand())
	root.AddCommand(plugin.NewPluginCommand())
	root.AddCommand(tui.NewTUICommand())

	return nil
}
