// Package session holds the compiler state between opening a plugin document
// and compiling it: the current source file and the validated record.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrei-cloud/eblp/internal/errorcodes"
	"github.com/andrei-cloud/eblp/internal/logging"
	"github.com/andrei-cloud/eblp/pkg/eblp"
)

// Options tune where and how compiled plugins are written.
type Options struct {
	// OutputDir receives compiled plugins when no explicit destination is given.
	// Empty means next to the source file.
	OutputDir string
	// Overwrite allows replacing an existing .eblp file.
	Overwrite bool
	// NewID generates identifiers for documents without a valid id.
	NewID eblp.IDGenerator
}

// Session is the controller behind every front end. It is not safe for
// concurrent use; each caller owns its own Session.
type Session struct {
	opts   Options
	file   string
	record *eblp.Record
}

// New creates an empty session.
func New(opts Options) *Session {
	if opts.NewID == nil {
		opts.NewID = eblp.GenerateID
	}

	return &Session{opts: opts}
}

// Open reads and parses the document at path. Any previously held record is
// dropped first, so a failed open leaves nothing to compile. Validation
// failures are returned as *eblp.ValidationError, read failures wrap ErrE20.
func (s *Session) Open(path string) (eblp.Record, error) {
	s.file = path
	s.record = nil

	data, err := os.ReadFile(path)
	if err != nil {
		return eblp.Record{}, fmt.Errorf("%w: %w", errorcodes.ErrE20, err)
	}

	rec, err := eblp.ParseWith(string(data), s.opts.NewID)
	if err != nil {
		var verr *eblp.ValidationError
		if errors.As(err, &verr) {
			logging.LogRejected(path, errorcodes.FromValidation(verr))
		}

		return eblp.Record{}, err
	}

	s.record = &rec
	logging.LogParsed(path, rec)

	return rec, nil
}

// Compile writes the held record to dst, or to the default destination when
// dst is empty. The .eblp extension is appended when missing. A record that
// would not read back unchanged is refused with ErrE15. On success the record
// is consumed and the written path is returned.
func (s *Session) Compile(dst string) (string, error) {
	if s.record == nil {
		return "", errorcodes.ErrE30
	}
	if err := s.record.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", errorcodes.ErrE15, err)
	}

	if dst == "" {
		dst = s.DefaultOutput()
	}
	dst = eblp.EnsureExtension(dst)

	if !s.opts.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return "", fmt.Errorf("%w: %s", errorcodes.ErrE22, dst)
		}
	}

	written, err := eblp.WriteFile(dst, *s.record)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errorcodes.ErrE21, err)
	}

	logging.LogCompiled(s.file, written, *s.record)
	s.record = nil

	return written, nil
}

// DefaultOutput derives the destination for the current file: same base name
// with the .eblp extension, placed in OutputDir when configured.
func (s *Session) DefaultOutput() string {
	if s.file == "" {
		return ""
	}

	out := strings.TrimSuffix(s.file, filepath.Ext(s.file)) + eblp.Extension
	if s.opts.OutputDir != "" {
		out = filepath.Join(s.opts.OutputDir, filepath.Base(out))
	}

	return out
}

// CanCompile reports whether a valid record is held.
func (s *Session) CanCompile() bool {
	return s.record != nil
}

// Record returns the held record, if any.
func (s *Session) Record() (eblp.Record, bool) {
	if s.record == nil {
		return eblp.Record{}, false
	}

	return *s.record, true
}

// File returns the path of the last opened document.
func (s *Session) File() string {
	return s.file
}
