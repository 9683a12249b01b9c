// Package ident provides the identifier generation command.
package ident

import (
	"fmt"

	"github.com/andrei-cloud/eblp/pkg/eblp"
	"github.com/spf13/cobra"
)

// NewIDCommand creates the id command.
func NewIDCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Generate plugin identifiers",
		Example: `  # One identifier
  eblp id

  # Five identifiers
  eblp id -n 5`,
		Args: cobra.NoArgs,
		RunE: runID,
	}

	cmd.Flags().IntP("count", "n", 1, "number of identifiers to generate")

	return cmd
}

func runID(cmd *cobra.Command, _ []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	for i := 0; i < count; i++ {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), eblp.GenerateID())
	}

	return nil
}
