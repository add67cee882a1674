package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragtui/internal/backend"
	"ragtui/internal/media"
	"ragtui/internal/session"
	"ragtui/internal/upload"
)

func newModel(t *testing.T) (Model, *session.Store) {
	t.Helper()
	store := session.New()
	client := backend.NewClient("http://backend.invalid")
	uploader := upload.NewCoordinator(client, t.TempDir(), nil)
	m := New(store, client, uploader, nil)

	// Size the view so it renders.
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return sized.(Model), store
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

func TestScopedAskRequiresSelection(t *testing.T) {
	m, _ := newModel(t)

	m, cmd := press(m, "a")
	assert.Nil(t, cmd)
	assert.Equal(t, StateIdle, m.State())
	assert.Contains(t, m.View(), "Type a text selection first")
}

func TestScopedAskDispatchesWhenSelected(t *testing.T) {
	m, store := newModel(t)
	store.PDF.SelectedText = "neural retrieval"

	m, cmd := press(m, "a")
	require.NotNil(t, cmd)
	assert.Equal(t, StateQuerying, m.State())
}

func TestScopedRequestShape(t *testing.T) {
	m, store := newModel(t)
	store.PDF.SelectedText = "neural retrieval"

	req, ok := m.scopedRequest()
	require.True(t, ok)
	assert.Equal(t, pdfScopedQuestion, req.Question)
	assert.Equal(t, "neural retrieval", req.Context)
	assert.Equal(t, "pdf", req.SourceType)

	store.ToggleSection()
	store.Video.SelectedChunk = "hello world"
	req, ok = m.scopedRequest()
	require.True(t, ok)
	assert.Equal(t, videoScopedQuestion, req.Question)
	assert.Equal(t, "hello world", req.Context)
	assert.Equal(t, "video", req.SourceType)
}

func TestSingleFlightBlocksSecondQuery(t *testing.T) {
	m, store := newModel(t)
	store.PDF.SelectedText = "neural retrieval"

	m, cmd := press(m, "a")
	require.NotNil(t, cmd)

	// A second trigger while the first is outstanding is refused.
	m, cmd = press(m, "a")
	assert.Nil(t, cmd)
	assert.Equal(t, StateQuerying, m.State())
	assert.Contains(t, m.View(), "Another request is still in progress")
}

func TestQueryResultAppliesToStore(t *testing.T) {
	m, store := newModel(t)
	store.PDF.SelectedText = "topic"
	m, _ = press(m, "a")

	next, _ := m.Update(queryResultMsg{result: &backend.QueryResult{Answer: "the answer"}})
	m = next.(Model)

	require.NotNil(t, store.LastResponse)
	assert.Equal(t, "the answer", store.LastResponse.Answer)
	assert.Equal(t, StateIdle, m.State())
}

func TestQueryFailureRendersNoAnswerMessage(t *testing.T) {
	m, store := newModel(t)
	store.PDF.SelectedText = "topic"
	m, _ = press(m, "a")

	next, _ := m.Update(queryFailedMsg{err: backend.ErrNoAnswer})
	m = next.(Model)

	require.NotNil(t, store.LastResponse)
	assert.Contains(t, store.LastResponse.Err, "No answer available")
	assert.Equal(t, StateIdle, m.State())
	assert.Contains(t, m.View(), "No answer available")
}

func TestUploadFailureShowsBackendDetail(t *testing.T) {
	m, _ := newModel(t)

	next, _ := m.Update(uploadFailedMsg{err: &backend.APIError{StatusCode: 422, Detail: "not a pdf"}})
	m = next.(Model)

	assert.Equal(t, StateIdle, m.State())
	assert.Contains(t, m.View(), "Backend error: not a pdf")
}

func TestUploadResultMergesIntoStore(t *testing.T) {
	m, store := newModel(t)

	next, _ := m.Update(pdfUploadedMsg{staged: &upload.StagedPDF{
		Path:   "/scratch/media-1.pdf",
		Result: &backend.PDFUploadResult{FileID: "abc", FullText: "one\ftwo\fthree"},
	}})
	m = next.(Model)

	assert.Equal(t, "abc", store.PDF.FileID)
	assert.Equal(t, "one\ftwo\fthree", store.PDF.FullText)
	assert.Equal(t, StateIdle, m.State())
	assert.Contains(t, m.View(), "File ID: abc")
}

func TestChunkActivation(t *testing.T) {
	m, store := newModel(t)
	store.ToggleSection()
	store.Video.Path = "/scratch/media-1.mp4"
	store.Video.Chunks = []media.TranscriptChunk{
		{Timestamp: "01:05", Text: "hello world"},
	}

	m, _ = press(m, "enter")
	assert.Equal(t, 65, store.Video.TimestampSeconds)
	assert.Equal(t, "hello world", store.Video.SelectedChunk)
}

func TestChunkActivationAfterShorterTranscript(t *testing.T) {
	m, store := newModel(t)
	store.ToggleSection()
	store.Video.Path = "/scratch/media-1.mp4"
	store.Video.FileID = "vid-1"
	store.Video.Chunks = []media.TranscriptChunk{
		{Timestamp: "00:00", Text: "a"},
		{Timestamp: "00:10", Text: "b"},
		{Timestamp: "00:20", Text: "c"},
		{Timestamp: "00:30", Text: "d"},
		{Timestamp: "00:40", Text: "e"},
	}
	m, _ = press(m, "j", "j", "j", "j")

	// A new upload replaces the transcript with a shorter one; the
	// cursor must not keep pointing past its end.
	next, _ := m.Update(videoUploadedMsg{staged: &upload.StagedVideo{
		Path: "/scratch/media-2.mp4",
		Result: &backend.VideoUploadResult{
			FileID:           "vid-2",
			FullTranscript:   "only",
			TranscriptChunks: []media.TranscriptChunk{{Timestamp: "00:10", Text: "only"}},
		},
	}})
	m = next.(Model)

	m, _ = press(m, "enter")
	assert.Equal(t, 10, store.Video.TimestampSeconds)
	assert.Equal(t, "only", store.Video.SelectedChunk)
}

func TestChunkActivationMalformedTimestamp(t *testing.T) {
	m, store := newModel(t)
	store.ToggleSection()
	store.Video.Path = "/scratch/media-1.mp4"
	store.Video.Chunks = []media.TranscriptChunk{
		{Timestamp: "oops", Text: "hello"},
	}

	m, _ = press(m, "enter")
	// The bad label is reported, not silently mapped to zero.
	assert.Equal(t, 0, store.Video.TimestampSeconds)
	assert.Empty(t, store.Video.SelectedChunk)
	assert.Contains(t, m.View(), "Transcript data error")
}

func TestSectionToggleKeepsPDFState(t *testing.T) {
	m, store := newModel(t)
	store.PDF.SelectedText = "sticky"
	store.PDF.PageIndex = 2

	m, _ = press(m, "tab")
	assert.Equal(t, session.SectionVideo, store.ActiveSection)
	assert.Equal(t, "sticky", store.PDF.SelectedText)
	assert.Equal(t, 2, store.PDF.PageIndex)

	m, _ = press(m, "tab")
	assert.Equal(t, session.SectionPDF, store.ActiveSection)
}

func TestPageNavigationClamps(t *testing.T) {
	m, store := newModel(t)
	store.PDF.Path = "/scratch/media-1.pdf"
	store.PDF.FullText = "one\ftwo\fthree"
	store.PDF.PageIndex = 2

	// Already on the last page of a 3-page document.
	m, _ = press(m, "right")
	assert.Equal(t, 2, store.PDF.PageIndex)

	m, _ = press(m, "left", "left", "left", "left")
	assert.Equal(t, 0, store.PDF.PageIndex)
}

func TestResetClearsResultsKeepsAnchors(t *testing.T) {
	m, store := newModel(t)
	store.PDF.SelectedText = "anchor"
	store.PDF.PageIndex = 1
	store.PDF.FileID = "abc"
	store.PDF.FullText = "one\ftwo"
	store.LastResponse = &session.Response{Answer: "stale"}

	m, _ = press(m, "r")
	assert.Empty(t, store.PDF.FileID)
	assert.Empty(t, store.PDF.FullText)
	assert.Nil(t, store.LastResponse)
	assert.Equal(t, "anchor", store.PDF.SelectedText)
	assert.Equal(t, 1, store.PDF.PageIndex)
	assert.Contains(t, m.View(), "Previous results cleared")
}

func TestGeneralQuestionDispatch(t *testing.T) {
	m, _ := newModel(t)

	m, _ = press(m, "/")
	m, _ = press(m, "what is this about?")
	m, cmd := press(m, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, StateQuerying, m.State())
}

func TestSelectionInputCommits(t *testing.T) {
	m, store := newModel(t)
	store.PDF.Path = "/scratch/media-1.pdf"
	store.PDF.FullText = "the cat sat"

	m, _ = press(m, "s")
	m, _ = press(m, "cat")
	m, _ = press(m, "enter")
	assert.Equal(t, "cat", store.PDF.SelectedText)
	assert.Equal(t, StateIdle, m.State())
}
