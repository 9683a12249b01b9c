// Package plugin provides plugin listing commands.
package plugin

import (
	"fmt"
	"text/tabwriter"

	"github.com/andrei-cloud/eblp/internal/catalog"
	"github.com/andrei-cloud/eblp/internal/config"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [DIR]",
		Short: "List compiled plugins",
		Long: `List all compiled .eblp plugins in DIR (default: the configured plugin path)
with their metadata. Files that fail validation are listed with the reason.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runListPlugins,
	}
}

func runListPlugins(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(args)
	if err != nil {
		return err
	}

	// Create tabwriter for aligned output.
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tName\tVersion\tDescription\tAuthor")
	_, _ = fmt.Fprintln(w, "--\t----\t-------\t-----------\t------")

	var invalid []*catalog.Entry
	for _, e := range append(c.List(), c.Invalid()...) {
		if !e.Valid() {
			invalid = append(invalid, e)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Record.ID,
			e.Record.Name,
			e.Record.Version,
			e.Record.Description,
			e.Record.Author)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	for _, e := range invalid {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s: %v\n", e.Path, e.Err)
	}

	return nil
}

// loadCatalog indexes the directory given as the only argument, or the configured plugin path.
func loadCatalog(args []string) (*catalog.Catalog, error) {
	pluginDir := config.Get().Plugin.Path
	if len(args) == 1 {
		pluginDir = args[0]
	}

	c := catalog.New()
	if err := c.LoadDir(pluginDir); err != nil {
		return nil, fmt.Errorf("failed to load plugins: %w", err)
	}

	return c, nil
}
