package videoviewer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ragtui/internal/components/videoviewer"
	"ragtui/internal/media"
	"ragtui/internal/session"
)

func TestViewShortTranscriptShownWhole(t *testing.T) {
	m := videoviewer.New(40)
	out := m.View(session.VideoState{
		Chunks:         []media.TranscriptChunk{{Timestamp: "00:00", Text: "intro"}},
		FullTranscript: "just a few words",
	})
	assert.Contains(t, out, "just a few words")
	assert.NotContains(t, out, "transcript continues")
}

func TestViewLongTranscriptMarksCut(t *testing.T) {
	m := videoviewer.New(40)
	out := m.View(session.VideoState{
		Chunks:         []media.TranscriptChunk{{Timestamp: "00:00", Text: "intro"}},
		FullTranscript: strings.TrimSpace(strings.Repeat("word ", 300)),
	})
	assert.Contains(t, out, "transcript continues")
}

func TestViewWithoutChunksWarns(t *testing.T) {
	m := videoviewer.New(40)
	out := m.View(session.VideoState{})
	assert.Contains(t, out, "Transcript data not available")
}

func TestMoveCursorClampsToShrunkList(t *testing.T) {
	m := videoviewer.New(40)
	m.MoveCursor(4, 5)
	assert.Equal(t, 4, m.Cursor())

	// The list shrank under the cursor; a zero-delta move snaps it back
	// into range.
	m.MoveCursor(0, 1)
	assert.Equal(t, 0, m.Cursor())

	m.MoveCursor(0, 0)
	assert.Equal(t, 0, m.Cursor())
}
