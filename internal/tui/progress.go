package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// RowMsg reports row-level progress for one record type. It is sent from the
// pipeline's progress callback.
type RowMsg struct {
	Type       nasr.RecordType
	Rows       int64
	BytesRead  int64
	TotalBytes int64
}

// TypeDoneMsg reports that one record type's pass finished.
type TypeDoneMsg struct {
	Type    nasr.RecordType
	Records int
	Skipped int64
	Err     error
}

// RunDoneMsg reports that every record type finished; the display quits.
type RunDoneMsg struct{}

type typeState struct {
	rows       int64
	bytesRead  int64
	totalBytes int64
	records    int
	skipped    int64
	done       bool
	err        error
}

// ProgressModel is the live parse display: one line per record type with a
// spinner while streaming and a final status once the pass finishes.
type ProgressModel struct {
	spinner  spinner.Model
	keys     KeyMap
	order    []nasr.RecordType
	states   map[nasr.RecordType]*typeState
	quitting bool
}

// NewProgress creates the display for the given record types, in the order
// they should be listed.
func NewProgress(types []nasr.RecordType) ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	states := make(map[nasr.RecordType]*typeState, len(types))
	for _, rt := range types {
		states[rt] = &typeState{}
	}
	return ProgressModel{
		spinner: s,
		keys:    DefaultKeyMap(),
		order:   types,
		states:  states,
	}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case RowMsg:
		if st, ok := m.states[msg.Type]; ok {
			st.rows = msg.Rows
			st.bytesRead = msg.BytesRead
			st.totalBytes = msg.TotalBytes
		}
		return m, nil

	case TypeDoneMsg:
		if st, ok := m.states[msg.Type]; ok {
			st.done = true
			st.records = msg.Records
			st.skipped = msg.Skipped
			st.err = msg.Err
		}
		return m, nil

	case RunDoneMsg:
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Parsing distribution"))
	b.WriteString("\n")

	for _, rt := range m.order {
		st := m.states[rt]
		switch {
		case st.done && st.err != nil:
			b.WriteString(ErrorStyle.Render(fmt.Sprintf("%s %s: %v", SymbolCross, rt, st.err)))
		case st.done:
			line := fmt.Sprintf("%s %s: %d records", SymbolCheck, rt, st.records)
			if st.skipped > 0 {
				line += fmt.Sprintf(" (%d rows skipped)", st.skipped)
			}
			b.WriteString(SuccessStyle.Render(line))
		default:
			b.WriteString(m.spinner.View())
			b.WriteString(TypeStyle.Render(string(rt)))
			b.WriteString(CountStyle.Render(fmt.Sprintf(" %d rows%s", st.rows, percent(st))))
		}
		b.WriteString("\n")
	}

	if !m.quitting {
		b.WriteString(HelpStyle.Render(m.keys.HelpText()))
		b.WriteString("\n")
	}
	return b.String()
}

// percent formats byte progress when the file size is known.
func percent(st *typeState) string {
	if st.totalBytes <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%d%%)", st.bytesRead*100/st.totalBytes)
}
