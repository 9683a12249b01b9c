// Package compile provides the compile and check commands.
package compile

import (
	"errors"
	"fmt"

	"github.com/andrei-cloud/eblp/internal/config"
	"github.com/andrei-cloud/eblp/internal/errorcodes"
	"github.com/andrei-cloud/eblp/internal/session"
	"github.com/andrei-cloud/eblp/pkg/eblp"
	"github.com/spf13/cobra"
)

// ErrInvalidDocument is returned after the validation errors have been printed.
var ErrInvalidDocument = errors.New("plugin document is invalid")

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile INPUT",
		Short: "Compile a plugin document into a .eblp file",
		Long: `Parse and validate a plugin document, then write it in the .eblp format.
Every missing or malformed field is reported. A missing or malformed id is
replaced with a generated one.`,
		Example: `  # Compile next to the source file (plugin.eblp)
  eblp compile plugin.txt

  # Compile to an explicit destination (.eblp is appended when missing)
  eblp compile plugin.txt -o build/greeter`,
		Args: cobra.ExactArgs(1),
		RunE: runCompile,
	}

	cmd.Flags().StringP("output", "o", "", "destination file (default: INPUT with .eblp extension)")
	cmd.Flags().String("output-dir", "", "directory for compiled plugins when --output is not set")
	cmd.Flags().Bool("overwrite", true, "replace an existing .eblp file")

	return cmd
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check INPUT",
		Short: "Validate a plugin document without compiling it",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
}

func newSession() *session.Session {
	cfg := config.Get()

	return session.New(session.Options{
		OutputDir: cfg.Compiler.OutputDir,
		Overwrite: cfg.Compiler.Overwrite,
	})
}

func runCompile(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	sess := newSession()
	rec, err := open(cmd, sess, args[0])
	if err != nil {
		return err
	}

	written, err := sess.Compile(output)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Compiled %s (ID: %s) -> %s\n", rec.Name, rec.ID, written)

	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	rec, err := open(cmd, newSession(), args[0])
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "OK %s %s (ID: %s)\n", rec.Name, rec.Version, rec.ID)

	return nil
}

// open parses path and prints each validation error as "<code>: <message>".
func open(cmd *cobra.Command, sess *session.Session, path string) (eblp.Record, error) {
	rec, err := sess.Open(path)
	if err == nil {
		return rec, nil
	}

	var verr *eblp.ValidationError
	if !errors.As(err, &verr) {
		return eblp.Record{}, err
	}

	for _, ce := range errorcodes.FromValidation(verr) {
		cmd.PrintErrln(ce.Error())
	}

	return eblp.Record{}, fmt.Errorf("%w: %s", ErrInvalidDocument, path)
}
