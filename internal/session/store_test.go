package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragtui/internal/media"
	"ragtui/internal/session"
)

func populated() *session.Store {
	s := session.New()
	s.PDF = session.PDFState{
		PageIndex:    2,
		SelectedText: "neural retrieval",
		FileID:       "abc",
		Path:         "/tmp/media-1.pdf",
		FullText:     "one\ftwo\fthree",
	}
	s.Video = session.VideoState{
		TimestampSeconds: 65,
		Chunks:           []media.TranscriptChunk{{Timestamp: "01:05", Text: "hello world"}},
		FullTranscript:   "hello world and more",
		SelectedChunk:    "hello world",
		FileID:           "vid-1",
		Path:             "/tmp/media-2.mp4",
	}
	s.LastResponse = &session.Response{Answer: "42"}
	return s
}

func TestResetClearsDerivedSlots(t *testing.T) {
	s := populated()
	s.Reset()

	assert.Empty(t, s.PDF.FileID)
	assert.Empty(t, s.PDF.FullText)
	assert.Empty(t, s.Video.FileID)
	assert.Nil(t, s.Video.Chunks)
	assert.Nil(t, s.LastResponse)
}

func TestResetPreservesStickySlots(t *testing.T) {
	s := populated()
	s.ActiveSection = session.SectionVideo
	s.Reset()

	assert.Equal(t, session.SectionVideo, s.ActiveSection)
	assert.Equal(t, 2, s.PDF.PageIndex)
	assert.Equal(t, "neural retrieval", s.PDF.SelectedText)
	assert.Equal(t, "/tmp/media-1.pdf", s.PDF.Path)
	assert.Equal(t, 65, s.Video.TimestampSeconds)
	assert.Equal(t, "hello world", s.Video.SelectedChunk)
	assert.Equal(t, "/tmp/media-2.mp4", s.Video.Path)
	assert.Equal(t, "hello world and more", s.Video.FullTranscript)
}

func TestResetIsIdempotent(t *testing.T) {
	once := populated()
	once.Reset()

	twice := populated()
	twice.Reset()
	twice.Reset()

	assert.Equal(t, once, twice)
}

func TestToggleSectionPreservesViewerState(t *testing.T) {
	s := populated()
	require.Equal(t, session.SectionPDF, s.ActiveSection)

	s.ToggleSection()
	assert.Equal(t, session.SectionVideo, s.ActiveSection)
	assert.Equal(t, "neural retrieval", s.PDF.SelectedText)
	assert.Equal(t, 2, s.PDF.PageIndex)

	s.ToggleSection()
	assert.Equal(t, session.SectionPDF, s.ActiveSection)
	assert.Equal(t, 65, s.Video.TimestampSeconds)
	assert.Equal(t, "hello world", s.Video.SelectedChunk)
}

func TestActiveScopeFollowsSection(t *testing.T) {
	s := populated()

	ctx, src, ok := s.ActiveScope()
	require.True(t, ok)
	assert.Equal(t, "neural retrieval", ctx)
	assert.Equal(t, session.SectionPDF, src)

	s.ToggleSection()
	ctx, src, ok = s.ActiveScope()
	require.True(t, ok)
	assert.Equal(t, "hello world", ctx)
	assert.Equal(t, session.SectionVideo, src)
}

func TestActiveScopeWithoutSelection(t *testing.T) {
	s := session.New()
	_, _, ok := s.ActiveScope()
	assert.False(t, ok)

	// A loaded video with no chosen segment still has no scope.
	s.ToggleSection()
	s.Video.Chunks = []media.TranscriptChunk{{Timestamp: "00:00", Text: "intro"}}
	_, _, ok = s.ActiveScope()
	assert.False(t, ok)
}
