package eblp

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Serialize renders r in the .eblp layout. The output never ends with a newline.
func Serialize(r Record) string {
	var b strings.Builder
	b.WriteString("name=[" + r.Name + "]\n")
	b.WriteString("ver=[" + r.Version + "]\n")
	b.WriteString("description=[" + r.Description + "]\n")
	b.WriteString("author=[" + r.Author + "]\n")
	b.WriteString("id=[" + r.ID + "]\n")
	b.WriteString("js=[\n" + r.Script + "\n]")

	return b.String()
}

// WriteTo streams the serialized record to w.
func WriteTo(w io.Writer, r Record) (int64, error) {
	n, err := io.WriteString(w, Serialize(r))

	return int64(n), err
}

// EnsureExtension appends .eblp to path unless it already ends with it.
func EnsureExtension(path string) string {
	if strings.HasSuffix(path, Extension) {
		return path
	}

	return path + Extension
}

// WriteFile serializes r into path, adding the .eblp extension when needed,
// and returns the path actually written.
func WriteFile(path string, r Record) (string, error) {
	path = EnsureExtension(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := WriteTo(f, r); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, nil
}
