// Package catalog indexes compiled plugins found in a directory.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andrei-cloud/eblp/pkg/eblp"
	"github.com/rs/zerolog/log"
)

// ErrDuplicateID marks a file whose identifier is already taken by another file.
var ErrDuplicateID = errors.New("duplicate id")

// Entry is one .eblp file and what parsing it produced.
type Entry struct {
	Path   string
	Record eblp.Record
	Err    error
}

// Valid reports whether the file parsed into a record.
func (e Entry) Valid() bool {
	return e.Err == nil
}

// Catalog maps plugin identifiers to their entries. Files that fail to
// parse are kept aside so they can still be reported.
type Catalog struct {
	plugins map[string]*Entry
	invalid []*Entry
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		plugins: make(map[string]*Entry),
	}
}

// Register adds or replaces the entry for rec.ID.
func (c *Catalog) Register(path string, rec eblp.Record) {
	c.plugins[rec.ID] = &Entry{Path: path, Record: rec}
}

// Get retrieves an entry by plugin identifier.
func (c *Catalog) Get(id string) (*Entry, bool) {
	e, ok := c.plugins[id]
	return e, ok
}

// List returns all valid entries ordered by name, then identifier.
func (c *Catalog) List() []*Entry {
	result := make([]*Entry, 0, len(c.plugins))
	for _, e := range c.plugins {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Record.Name != result[j].Record.Name {
			return result[i].Record.Name < result[j].Record.Name
		}
		return result[i].Record.ID < result[j].Record.ID
	})

	return result
}

// Invalid returns the files that could not be parsed or lost their
// identifier to an earlier file, in path order.
func (c *Catalog) Invalid() []*Entry {
	return c.invalid
}

// LoadDir parses every .eblp file directly inside dir. Unparsable files and
// duplicate identifiers are recorded, not fatal; only a failure to read dir
// itself is returned.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read plugin directory: %w", err)
	}

	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), eblp.Extension) {
			continue
		}

		path := filepath.Join(dir, de.Name())
		rec, err := eblp.ParseFile(path)
		if err != nil {
			log.Debug().Str("path", path).Err(err).Msg("skipping invalid plugin")
			c.invalid = append(c.invalid, &Entry{Path: path, Err: err})
			continue
		}

		// The first file in path order keeps the identifier.
		if prev, ok := c.plugins[rec.ID]; ok {
			log.Warn().
				Str("id", rec.ID).
				Str("path", path).
				Str("previous", prev.Path).
				Msg("duplicate plugin identifier")
			c.invalid = append(c.invalid, &Entry{
				Path:   path,
				Record: rec,
				Err:    fmt.Errorf("%w of %s", ErrDuplicateID, prev.Path),
			})
			continue
		}
		c.Register(path, rec)
	}

	return nil
}
