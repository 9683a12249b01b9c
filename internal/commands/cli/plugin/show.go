// Package plugin provides plugin inspection commands.
package plugin

import (
	"fmt"

	"github.com/andrei-cloud/eblp/pkg/eblp"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID [DIR]",
		Short: "Show a compiled plugin",
		Long: `Find the compiled plugin with the given identifier in DIR (default: the
configured plugin path) and print its file path and contents.`,
		Example: `  eblp plugin show eblan.3f2a9c1d`,
		Args:    cobra.RangeArgs(1, 2),
		RunE:    runShowPlugin,
	}
}

func runShowPlugin(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(args[1:])
	if err != nil {
		return err
	}

	e, ok := c.Get(args[0])
	if !ok {
		return fmt.Errorf("plugin %s not found", args[0])
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "# %s\n", e.Path)
	if _, err := eblp.WriteTo(out, e.Record); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out)

	return nil
}
