package videoviewer

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"ragtui/internal/media"
	"ragtui/internal/session"
	"ragtui/internal/styles"
)

// maxVisibleChunks bounds the segment list to a sliding window around
// the cursor so long transcripts fit the screen.
const maxVisibleChunks = 8

// maxTranscriptLines bounds the full-transcript block; anything beyond
// it is cut with a visible marker.
const maxTranscriptLines = 6

// Model renders the playback position and the navigable transcript
// segment list. Only the cursor is viewer-local state; the timestamp
// and selection live in the session.
type Model struct {
	width  int
	cursor int
}

// New creates a video viewer.
func New(width int) Model {
	return Model{width: width}
}

// SetWidth resizes the viewer.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Cursor returns the index of the focused transcript row.
func (m Model) Cursor() int {
	return m.cursor
}

// MoveCursor shifts the focused row by delta, clamped to the chunk
// list bounds.
func (m *Model) MoveCursor(delta, chunkCount int) {
	if chunkCount == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= chunkCount {
		m.cursor = chunkCount - 1
	}
}

// View renders the video section from the session's video slots.
func (m Model) View(video session.VideoState) string {
	var sections []string

	position := styles.ViewerTitle.Render("Playing from " + media.FormatTimestamp(video.TimestampSeconds))
	sections = append(sections, position)

	if len(video.Chunks) == 0 {
		sections = append(sections, styles.WarningBox.Render(
			"Transcript data not available. Ensure video is processed by the backend."))
		return strings.Join(sections, "\n")
	}

	if video.FullTranscript != "" {
		sections = append(sections, styles.InputLabel.Render("Full Transcript"))
		sections = append(sections, m.renderTranscript(video.FullTranscript))
	}

	sections = append(sections, styles.InputLabel.Render("Transcript Segments"))
	sections = append(sections, m.renderChunkList(video.Chunks))

	if video.SelectedChunk != "" {
		sections = append(sections, styles.InputLabel.Render("Selected Segment"))
		sections = append(sections, styles.PageText.Render(wordwrap.String(video.SelectedChunk, m.width-2)))
	}

	return strings.Join(sections, "\n")
}

// renderTranscript wraps the full transcript and caps it at
// maxTranscriptLines wrapped lines, marking the cut.
func (m Model) renderTranscript(text string) string {
	lines := strings.Split(wordwrap.String(text, m.width-2), "\n")
	if len(lines) <= maxTranscriptLines {
		return styles.PageText.Render(strings.Join(lines, "\n"))
	}
	return styles.PageText.Render(strings.Join(lines[:maxTranscriptLines], "\n")) +
		"\n" + styles.InputLabel.Render("  … transcript continues")
}

// renderChunkList draws a window of timestamped rows around the cursor.
func (m Model) renderChunkList(chunks []media.TranscriptChunk) string {
	start := 0
	if m.cursor >= maxVisibleChunks {
		start = m.cursor - maxVisibleChunks + 1
	}
	end := start + maxVisibleChunks
	if end > len(chunks) {
		end = len(chunks)
	}

	var rows []string
	for i := start; i < end; i++ {
		chunk := chunks[i]
		if i == m.cursor {
			rows = append(rows, styles.ChunkRowActive.Render("> "+chunk.Timestamp+"  "+chunk.Preview()))
			continue
		}
		rows = append(rows, "  "+styles.ChunkTimestamp.Render(chunk.Timestamp)+"  "+styles.ChunkRow.Render(chunk.Preview()))
	}
	if end < len(chunks) {
		rows = append(rows, styles.InputLabel.Render("  …"))
	}
	return strings.Join(rows, "\n")
}
