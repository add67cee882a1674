package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"ragtui/internal/backend"
	"ragtui/internal/session"
)

// Fixed questions for the two scoped triggers. Both paths share the
// query contract with the general ask; only the scope differs.
const (
	pdfScopedQuestion   = "About the selected text"
	videoScopedQuestion = "About the selected video segment"
)

// submitPDFCmd uploads a PDF in the background. No mid-flight
// cancellation exists, so the command runs on a background context.
func (m Model) submitPDFCmd(path string) tea.Cmd {
	return func() tea.Msg {
		staged, err := m.uploader.SubmitPDF(context.Background(), path)
		if err != nil {
			return uploadFailedMsg{err: err}
		}
		return pdfUploadedMsg{staged: staged}
	}
}

// submitVideoCmd uploads a video in the background.
func (m Model) submitVideoCmd(path string) tea.Cmd {
	return func() tea.Msg {
		staged, err := m.uploader.SubmitVideo(context.Background(), path)
		if err != nil {
			return uploadFailedMsg{err: err}
		}
		return videoUploadedMsg{staged: staged}
	}
}

// queryCmd dispatches a question. The client bounds the whole call,
// retries included, with its own deadline.
func (m Model) queryCmd(req *backend.QueryRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.Query(context.Background(), req)
		if err != nil {
			return queryFailedMsg{err: err}
		}
		return queryResultMsg{result: result}
	}
}

// scopedRequest builds the request for an ask bound to the active
// viewer's selection. ok is false when that viewer has no selection.
func (m Model) scopedRequest() (*backend.QueryRequest, bool) {
	contextText, sourceType, ok := m.store.ActiveScope()
	if !ok {
		return nil, false
	}
	question := pdfScopedQuestion
	if sourceType == session.SectionVideo {
		question = videoScopedQuestion
	}
	return &backend.QueryRequest{
		Question:   question,
		Context:    contextText,
		SourceType: string(sourceType),
	}, true
}
