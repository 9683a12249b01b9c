package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andrei-cloud/eblp/internal/session"
	"github.com/andrei-cloud/eblp/pkg/eblp"
)

const (
	levelInfo = iota
	levelError
	levelSuccess
)

const (
	focusSource = iota
	focusOutput
)

// consoleLines is how many log lines the view keeps on screen.
const consoleLines = 10

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	infoStyle    = lipgloss.NewStyle()
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type consoleLine struct {
	level int
	text  string
}

type compilerModel struct {
	sess        *session.Session
	focus       int
	source      string
	output      string
	status      string
	statusLevel int
	console     []consoleLine
	quitting    bool
}

// newCompilerModel creates the interactive compiler. A non-empty source is opened right away.
func newCompilerModel(sess *session.Session, source string) compilerModel {
	m := compilerModel{
		sess:   sess,
		status: "Status: waiting for a plugin document",
	}
	m.log(levelSuccess, "Welcome to the EblanPlug plugin compiler.")

	if source != "" {
		m.source = source
		m.open()
	}

	return m
}

// Init initializes the model.
func (m compilerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m compilerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab:
		if m.focus == focusSource {
			m.focus = focusOutput
		} else {
			m.focus = focusSource
		}
	case tea.KeyCtrlO:
		m.open()
	case tea.KeyCtrlS:
		m.compile()
	case tea.KeyEnter:
		if m.focus == focusSource {
			m.open()
		} else {
			m.compile()
		}
	case tea.KeyBackspace:
		field := m.focused()
		if n := len(*field); n > 0 {
			r := []rune(*field)
			*field = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		*m.focused() += " "
	case tea.KeyRunes:
		*m.focused() += string(key.Runes)
	}

	return m, nil
}

func (m *compilerModel) focused() *string {
	if m.focus == focusOutput {
		return &m.output
	}

	return &m.source
}

// open parses the source path through the session.
func (m *compilerModel) open() {
	path := strings.TrimSpace(m.source)
	if path == "" {
		m.log(levelError, "Enter the path of a plugin document first")
		return
	}

	rec, err := m.sess.Open(path)
	if err != nil {
		var verr *eblp.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages() {
				m.log(levelError, msg)
			}
			m.setStatus(levelError, "Error: "+verr.Error())

			return
		}

		m.log(levelError, "Failed to read file: "+err.Error())
		m.setStatus(levelError, "Error reading file")

		return
	}

	m.log(levelSuccess, fmt.Sprintf("Opened %s: %s (ID: %s)", path, rec.Name, rec.ID))
	m.setStatus(levelSuccess, "Ready to compile")
	if m.output == "" {
		m.output = m.sess.DefaultOutput()
	}
}

// compile writes the held record; it is a no-op with an error line when nothing is held.
func (m *compilerModel) compile() {
	if !m.sess.CanCompile() {
		m.log(levelError, "Nothing to compile")
		m.setStatus(levelError, "Nothing to compile")

		return
	}

	out, err := m.sess.Compile(strings.TrimSpace(m.output))
	if err != nil {
		m.log(levelError, "Failed to save: "+err.Error())
		m.setStatus(levelError, "Error saving file")

		return
	}

	m.log(levelSuccess, "Plugin compiled: "+out)
	m.setStatus(levelSuccess, "Done")
}

func (m *compilerModel) log(level int, text string) {
	m.console = append(m.console, consoleLine{level: level, text: text})
}

func (m *compilerModel) setStatus(level int, text string) {
	m.status = text
	m.statusLevel = level
}

func styleFor(level int) lipgloss.Style {
	switch level {
	case levelError:
		return errorStyle
	case levelSuccess:
		return successStyle
	}

	return infoStyle
}

func levelName(level int) string {
	switch level {
	case levelError:
		return "ERROR"
	case levelSuccess:
		return "SUCCESS"
	}

	return "INFO"
}

// View renders the current state of the model.
func (m compilerModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("EblanPlug - .eblp plugin compiler") + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	b.WriteString(styleFor(m.statusLevel).Render(m.status) + "\n\n")

	fields := []struct {
		label string
		value string
	}{
		{"Source", m.source},
		{"Output", m.output},
	}
	for i, f := range fields {
		cursor := "  "
		if i == m.focus {
			cursor = "▶ "
		}
		fmt.Fprintf(&b, "%s%s: %s\n", cursor, f.label, f.value)
	}
	if rec, ok := m.sess.Record(); ok {
		fmt.Fprintf(&b, "  Loaded: %s %s (%s)\n", rec.Name, rec.Version, rec.ID)
	}
	b.WriteString("\n")

	compileHint := "[ctrl+s] compile"
	if !m.sess.CanCompile() {
		compileHint = mutedStyle.Render(compileHint + " (disabled)")
	}
	fmt.Fprintf(&b, "[ctrl+o] open  %s  [tab] switch field  [esc] quit\n\n", compileHint)

	start := 0
	if len(m.console) > consoleLines {
		start = len(m.console) - consoleLines
	}
	for _, l := range m.console[start:] {
		b.WriteString(styleFor(l.level).Render(fmt.Sprintf("[%s] %s", levelName(l.level), l.text)) + "\n")
	}

	return b.String()
}

// runCompilerTUI runs the interactive compiler until the user quits.
func runCompilerTUI(sess *session.Session, source string) error {
	p := tea.NewProgram(newCompilerModel(sess, source))
	_, err := p.Run()

	return err
}
