package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei-cloud/eblp/internal/session"
)

const doc = "name=[Foo]\nver=[2.3]\ndescription=[Does things]\nauthor=[Bob]\njs=[console.log(1)]"

func typeText(t *testing.T, m compilerModel, text string) compilerModel {
	t.Helper()

	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(compilerModel)
	}

	return m
}

func press(m compilerModel, k tea.KeyType) (compilerModel, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(compilerModel), cmd
}

func lastLine(m compilerModel) consoleLine {
	return m.console[len(m.console)-1]
}

func TestCompileDisabledWithoutRecord(t *testing.T) {
	t.Parallel()

	m := newCompilerModel(session.New(session.Options{Overwrite: true}), "")
	m, _ = press(m, tea.KeyCtrlS)

	assert.Equal(t, levelError, lastLine(m).level)
	assert.Equal(t, "Nothing to compile", lastLine(m).text)
	assert.Contains(t, m.View(), "(disabled)")
}

func TestOpenThenCompile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "foo.txt")
	require.NoError(t, os.WriteFile(src, []byte(doc), 0o600))

	m := newCompilerModel(session.New(session.Options{Overwrite: true}), "")
	m = typeText(t, m, src)
	assert.Equal(t, src, m.source)

	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, levelSuccess, lastLine(m).level)
	assert.True(t, strings.HasPrefix(lastLine(m).text, "Opened "))
	assert.Equal(t, filepath.Join(dir, "foo.eblp"), m.output)
	assert.Equal(t, "Ready to compile", m.status)
	assert.Contains(t, m.View(), "Loaded: Foo 2.3 (eblan.")

	m, _ = press(m, tea.KeyCtrlS)
	assert.Equal(t, levelSuccess, lastLine(m).level)
	assert.Equal(t, "Plugin compiled: "+filepath.Join(dir, "foo.eblp"), lastLine(m).text)
	assert.FileExists(t, filepath.Join(dir, "foo.eblp"))
	assert.False(t, m.sess.CanCompile())
	assert.NotContains(t, m.View(), "Loaded:")
}

func TestOpenInvalidDocument(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(src, []byte(""), 0o600))

	m := newCompilerModel(session.New(session.Options{}), src)

	errorLines := 0
	for _, l := range m.console {
		if l.level == levelError {
			errorLines++
		}
	}
	assert.Equal(t, 5, errorLines)
	assert.Equal(t, levelError, m.statusLevel)
	assert.True(t, strings.HasPrefix(m.status, "Error: name is missing or empty"))
	assert.False(t, m.sess.CanCompile())
}

func TestEditingAndFocus(t *testing.T) {
	t.Parallel()

	m := newCompilerModel(session.New(session.Options{}), "")
	m = typeText(t, m, "ab")
	m, _ = press(m, tea.KeySpace)
	m, _ = press(m, tea.KeyBackspace)
	m, _ = press(m, tea.KeyBackspace)
	assert.Equal(t, "a", m.source)

	m, _ = press(m, tea.KeyTab)
	m = typeText(t, m, "out")
	assert.Equal(t, "out", m.output)
	assert.Equal(t, "a", m.source)

	m, _ = press(m, tea.KeyShiftTab)
	assert.Equal(t, focusSource, m.focus)

	m, cmd := press(m, tea.KeyEsc)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, "Bye.\n", m.View())
}

func TestOpenWithoutPath(t *testing.T) {
	t.Parallel()

	m := newCompilerModel(session.New(session.Options{}), "")
	m, _ = press(m, tea.KeyCtrlO)
	assert.Equal(t, "Enter the path of a plugin document first", lastLine(m).text)
}
