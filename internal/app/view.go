package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ragtui/internal/session"
	"ragtui/internal/styles"
)

// View renders the whole application from session state.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, styles.Header.Render("Multimodal RAG"))
	sections = append(sections, styles.StatusBar.Render("Upload documents, select content, and ask questions."))
	sections = append(sections, m.renderTabs())

	if line := m.renderStatusLine(); line != "" {
		sections = append(sections, line)
	}

	sections = append(sections, m.renderSection())

	switch m.focus {
	case focusPath:
		sections = append(sections, m.pathInput.View())
	case focusSelection:
		sections = append(sections, m.selectionInput.View())
	}
	sections = append(sections, m.questionInput.View())

	if answerView := m.answer.View(m.store.LastResponse); answerView != "" {
		sections = append(sections, answerView)
	}

	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabs draws the section selector.
func (m Model) renderTabs() string {
	pdf := styles.TabInactive.Render("PDF")
	video := styles.TabInactive.Render("Video")
	if m.store.ActiveSection == session.SectionPDF {
		pdf = styles.TabActive.Render("PDF")
	} else {
		video = styles.TabActive.Render("Video")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pdf, " ", video)
}

// renderStatusLine draws the spinner while a call is in flight, or the
// transient status message.
func (m Model) renderStatusLine() string {
	if m.statusIsErr && m.statusMsg != "" {
		return styles.StatusBarError.Render(m.statusMsg)
	}
	if m.busy() {
		return m.spinner.View()
	}
	if m.statusMsg == "" {
		return ""
	}
	return styles.StatusBarSuccess.Render(m.statusMsg)
}

// renderSection draws the active viewer.
func (m Model) renderSection() string {
	if m.store.ActiveSection == session.SectionVideo {
		if m.store.Video.Path == "" {
			return styles.StatusBar.Render("No video loaded. Press u to upload an MP4 file.")
		}
		return m.videoViewer.View(m.store.Video)
	}

	if m.store.PDF.Path == "" {
		return styles.StatusBar.Render("No document loaded. Press u to upload a PDF file.")
	}

	view := m.pdfViewer.View(m.store.PDF)
	if m.store.PDF.SelectedText != "" {
		view += "\n" + styles.InputLabel.Render("Selection: ") + m.store.PDF.SelectedText
	}
	return view
}

// renderStatusBar draws the key help line.
func (m Model) renderStatusBar() string {
	if m.focus != focusNone {
		return styles.StatusBar.Render("enter: apply • esc: cancel")
	}

	keys := []string{"tab: section", "u: upload", "a: ask selection", "/: ask", "r: reset", "esc: quit"}
	if m.store.ActiveSection == session.SectionPDF {
		keys = append([]string{"←/→: page", "s: select text"}, keys...)
	} else {
		keys = append([]string{"↑/↓: segments", "enter: choose segment"}, keys...)
	}

	left := styles.StatusBar.Render(strings.Join(keys, " • "))
	if m.busy() {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			styles.StatusBarBusy.Render("Working..."), left)
	}
	return left
}
