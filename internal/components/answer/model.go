package answer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"ragtui/internal/backend"
	"ragtui/internal/session"
	"ragtui/internal/styles"
)

// Model renders the last query outcome: the answer as the primary
// result, or a visible error state. It never renders nothing for a
// present response.
type Model struct {
	width    int
	renderer *glamour.TermRenderer

	// Citation display is deliberately inert: the backend does not emit
	// sources yet. The sources kept here render only when enabled.
	showSources bool
	sources     []backend.Source
}

// New creates an answer panel.
func New(width int) Model {
	m := Model{width: width}
	m.renderer = newRenderer(width)
	return m
}

// SetWidth resizes the panel and its markdown renderer.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.renderer = newRenderer(width)
}

// SetSources stores citation excerpts from the latest result.
func (m *Model) SetSources(sources []backend.Source) {
	m.sources = sources
}

// View renders the response. A nil response renders nothing (no query
// has completed yet); a response always produces visible output.
func (m Model) View(resp *session.Response) string {
	if resp == nil {
		return ""
	}

	if resp.Err != "" {
		return styles.AnswerTitle.Render("Answer") + "\n" +
			styles.AnswerError.Render(resp.Err)
	}

	body := m.renderMarkdown(resp.Answer)
	out := styles.AnswerTitle.Render("Answer") + "\n" + body

	if m.showSources && len(m.sources) > 0 {
		out += "\n" + m.renderSources()
	}
	return out
}

// renderMarkdown renders the answer through glamour, falling back to
// wrapped plain text if rendering fails.
func (m Model) renderMarkdown(text string) string {
	if m.renderer != nil {
		if out, err := m.renderer.Render(text); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return wordwrap.String(text, m.width-2)
}

// renderSources renders medium-tagged citation excerpts: page numbers
// for documents, timestamps for video segments.
func (m Model) renderSources() string {
	var b strings.Builder
	b.WriteString(styles.AnswerTitle.Render("Sources") + "\n")
	for _, src := range m.sources {
		switch src.Type {
		case "pdf":
			b.WriteString(styles.SourceTag.Render("PDF") +
				fmt.Sprintf(" %s, page %d\n", src.Source, src.Page))
		case "video":
			b.WriteString(styles.SourceTag.Render("Video") +
				fmt.Sprintf(" %s at %s\n", src.Source, src.Timestamp))
		default:
			b.WriteString(styles.SourceTag.Render("Source") + " " + src.Source + "\n")
		}
		b.WriteString(wordwrap.String(src.Content, m.width-4) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func newRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		return nil
	}
	return r
}
