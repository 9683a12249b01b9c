package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrei-cloud/eblp/internal/errorcodes"
	"github.com/andrei-cloud/eblp/pkg/eblp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = "name=[Foo]\nver=[2.3]\ndescription=[Does things]\nauthor=[Bob]\njs=[console.log(1)]"

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newSession(opts Options) *Session {
	opts.NewID = func() string { return "eblan.feedbeef" }
	return New(opts)
}

func TestOpenAndCompile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeDoc(t, dir, "foo.txt", doc)
	s := newSession(Options{Overwrite: true})

	require.False(t, s.CanCompile())

	rec, err := s.Open(src)
	require.NoError(t, err)
	assert.Equal(t, "eblan.feedbeef", rec.ID)
	assert.True(t, s.CanCompile())
	assert.Equal(t, src, s.File())

	out, err := s.Compile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "foo.eblp"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, eblp.Serialize(rec), string(data))

	// One record, one write.
	assert.False(t, s.CanCompile())
	_, held := s.Record()
	assert.False(t, held)

	_, err = s.Compile(out)
	assert.ErrorIs(t, err, errorcodes.ErrE30)
}

func TestCompileWithoutRecord(t *testing.T) {
	t.Parallel()

	s := newSession(Options{})
	_, err := s.Compile(filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, errorcodes.ErrE30)
}

func TestCompileAppendsExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := newSession(Options{Overwrite: true})
	_, err := s.Open(writeDoc(t, dir, "foo.txt", doc))
	require.NoError(t, err)

	out, err := s.Compile(filepath.Join(dir, "custom"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.eblp"), out)
	assert.FileExists(t, out)
}

func TestFailedOpenClearsRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := newSession(Options{Overwrite: true})

	_, err := s.Open(writeDoc(t, dir, "good.txt", doc))
	require.NoError(t, err)
	require.True(t, s.CanCompile())

	_, err = s.Open(writeDoc(t, dir, "bad.txt", "name=[Only a name]"))
	var verr *eblp.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors, 4)
	assert.False(t, s.CanCompile())

	_, err = s.Open(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, errorcodes.ErrE20)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, s.CanCompile())
}

func TestCompileOutputDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outDir := t.TempDir()
	s := newSession(Options{OutputDir: outDir, Overwrite: true})

	_, err := s.Open(writeDoc(t, dir, "plugin.source.txt", doc))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "plugin.source.eblp"), s.DefaultOutput())

	out, err := s.Compile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "plugin.source.eblp"), out)
}

func TestCompileRefusesOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := writeDoc(t, dir, "foo.eblp", "old")
	s := newSession(Options{Overwrite: false})

	_, err := s.Open(writeDoc(t, dir, "foo.txt", doc))
	require.NoError(t, err)

	_, err = s.Compile("")
	assert.ErrorIs(t, err, errorcodes.ErrE22)
	assert.True(t, s.CanCompile(), "record is kept when nothing was written")

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestCompileUnwritable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := newSession(Options{Overwrite: true})
	_, err := s.Open(writeDoc(t, dir, "foo.txt", doc))
	require.NoError(t, err)

	_, err = s.Compile(filepath.Join(dir, "no", "such", "dir", "foo"))
	assert.ErrorIs(t, err, errorcodes.ErrE21)
	assert.True(t, s.CanCompile())
}

func TestOpenRejectsTrailingBackslash(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := newSession(Options{Overwrite: true})

	_, err := s.Open(writeDoc(t, dir, "foo.txt",
		"name=[Foo]\nver=[2.3]\ndescription=[D]\nauthor=[Bob\\ ]\nid=[eblan.abc]\njs=[x()]"))
	var verr *eblp.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"author ends with an unpaired backslash"}, verr.Messages())
	assert.False(t, s.CanCompile())
}

func TestCompileRefusesUnserializableRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := newSession(Options{Overwrite: true})
	s.file = filepath.Join(dir, "foo.txt")
	s.record = &eblp.Record{
		Name:        "Foo",
		Version:     "2.3",
		Description: "D",
		Author:      `Bob\`,
		ID:          "eblan.abc",
		Script:      "x()",
	}

	_, err := s.Compile("")
	assert.ErrorIs(t, err, errorcodes.ErrE15)
	assert.NoFileExists(t, filepath.Join(dir, "foo.eblp"))
	assert.True(t, s.CanCompile())
}
