package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ragtui/internal/styles"
)

// Model is a labeled single-line text input. The app uses three of
// these: the selection input (whose value IS the document selection),
// the media path input, and the general question input.
type Model struct {
	textinput textinput.Model
	label     string
	width     int
}

// New creates an input with a label and placeholder.
func New(label, placeholder string, width int) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 2048
	ti.Width = width - 6
	return Model{textinput: ti, label: label, width: width}
}

// Init initializes the input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages while the input is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	return m, cmd
}

// View renders the label and the bordered input line.
func (m Model) View() string {
	border := styles.InputBorderBlurred
	if m.textinput.Focused() {
		border = styles.InputBorder
	}
	return styles.InputLabel.Render(m.label) + "\n" +
		border.Width(m.width-2).Render(m.textinput.View())
}

// Focus gives the input keyboard focus.
func (m *Model) Focus() tea.Cmd {
	return m.textinput.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.textinput.Blur()
}

// Focused reports whether the input has focus.
func (m Model) Focused() bool {
	return m.textinput.Focused()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.textinput.Value()
}

// SetValue replaces the current text.
func (m *Model) SetValue(v string) {
	m.textinput.SetValue(v)
}

// Clear empties the input.
func (m *Model) Clear() {
	m.textinput.SetValue("")
}

// SetWidth resizes the input.
func (m *Model) SetWidth(w int) {
	m.width = w
	m.textinput.Width = w - 6
}
