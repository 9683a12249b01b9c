// Package plugin provides plugin creation commands.
package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrei-cloud/eblp/pkg/eblp"
	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create command.
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new plugin document",
		Long: `Create a new plugin source document NAME.txt. This will:
1. Generate a fresh plugin identifier
2. Fill in the metadata from the flags
3. Add a stub script ready to be edited and compiled`,
		Args: cobra.ExactArgs(1),
		RunE: runCreatePlugin,
	}

	// Add flags.
	cmd.Flags().StringP("desc", "d", "", "Plugin description (default: \"<NAME> plugin\")")
	cmd.Flags().StringP("version", "v", "0.1", "Plugin version (major.minor)")
	cmd.Flags().StringP("author", "a", "EblanPlug Community", "Plugin author")
	cmd.Flags().StringP("dir", "o", ".", "Directory to create the document in")

	return cmd
}

func runCreatePlugin(cmd *cobra.Command, args []string) error {
	name := args[0]
	desc, _ := cmd.Flags().GetString("desc")
	version, _ := cmd.Flags().GetString("version")
	author, _ := cmd.Flags().GetString("author")
	dir, _ := cmd.Flags().GetString("dir")

	if desc == "" {
		desc = name + " plugin"
	}

	rec := eblp.Record{
		Name:        name,
		Version:     version,
		Description: desc,
		Author:      author,
		ID:          eblp.GenerateID(),
		Script:      fmt.Sprintf("// %s entry point.\nconsole.log(%q);", name, name+" loaded"),
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid plugin metadata: %w", err)
	}

	// 1. Make sure the target directory exists.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create plugin directory: %w", err)
	}

	// 2. Refuse to clobber an existing document.
	path := filepath.Join(dir, name+".txt")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("plugin document %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	// 3. Write the document in the same grammar the compiler reads.
	if err := os.WriteFile(path, []byte(eblp.Serialize(rec)+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to create plugin document: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created plugin document %s (ID: %s)\n", path, rec.ID)

	return nil
}
