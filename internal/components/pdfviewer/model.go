package pdfviewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"ragtui/internal/media"
	"ragtui/internal/session"
	"ragtui/internal/styles"
)

// Model renders the current document page with the selection's matches
// highlighted. The page body scrolls inside a viewport; everything it
// shows is read from the session on Sync, never cached between
// selections.
type Model struct {
	viewport viewport.Model
	width    int
	height   int
}

// New creates a PDF viewer.
func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		width:    width,
		height:   height,
	}
}

// SetSize resizes the viewer.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// Sync rebuilds the page body from the session's PDF slots. Must be
// called after any mutation of page index, selection, or document
// content: the highlight search always runs against the current
// selection, with no match cache.
func (m *Model) Sync(pdf session.PDFState) {
	doc := media.NewDocument(pdf.FullText)
	page := doc.Page(pdf.PageIndex)
	if strings.TrimSpace(page) == "" {
		m.viewport.SetContent(styles.WarningBox.Render("No text could be extracted"))
		return
	}
	body := highlightPage(page, pdf.SelectedText)
	m.viewport.SetContent(wordwrap.String(body, m.width-2))
}

// Update handles viewport scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page header and the scrollable page body.
func (m Model) View(pdf session.PDFState) string {
	doc := media.NewDocument(pdf.FullText)
	header := styles.ViewerTitle.Render(
		fmt.Sprintf("Page %d of %d", pdf.PageIndex+1, doc.PageCount()),
	)
	return header + "\n" + styles.PageText.Render(m.viewport.View())
}

// highlightPage styles every literal occurrence of every selection
// token. Best effort: tokens absent from the page contribute nothing.
func highlightPage(page, selection string) string {
	spans := media.MergeSpans(media.FindMatches(page, selection))
	if len(spans) == 0 {
		return page
	}

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		b.WriteString(page[prev:s.Start])
		b.WriteString(styles.Highlight.Render(page[s.Start:s.End]))
		prev = s.End
	}
	b.WriteString(page[prev:])
	return b.String()
}
