package app

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ragtui/internal/backend"
	"ragtui/internal/components/spinner"
	"ragtui/internal/media"
	"ragtui/internal/session"
)

// Update applies one message. All session store mutations happen here,
// before the next View reads them.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		viewerHeight := msg.Height - 18
		if viewerHeight < 5 {
			viewerHeight = 5
		}
		m.pdfViewer.SetSize(msg.Width-2, viewerHeight)
		m.pdfViewer.Sync(m.store.PDF)
		m.videoViewer.SetWidth(msg.Width - 2)
		m.answer.SetWidth(msg.Width - 2)
		m.pathInput.SetWidth(msg.Width)
		m.selectionInput.SetWidth(msg.Width)
		m.questionInput.SetWidth(msg.Width)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pdfUploadedMsg:
		m.uploader.MergePDF(m.store, msg.staged)
		m.pdfViewer.Sync(m.store.PDF)
		m.state = StateIdle
		m.spinner.Stop()
		m.setStatus(fmt.Sprintf("PDF processed successfully! File ID: %s", msg.staged.Result.FileID), false)
		return m, nil

	case videoUploadedMsg:
		m.uploader.MergeVideo(m.store, msg.staged)
		// The new transcript may be shorter than the cursor position.
		m.videoViewer.MoveCursor(0, len(m.store.Video.Chunks))
		m.state = StateIdle
		m.spinner.Stop()
		m.setStatus(fmt.Sprintf("Video processed successfully! File ID: %s", msg.staged.Result.FileID), false)
		return m, nil

	case uploadFailedMsg:
		m.state = StateIdle
		m.spinner.Stop()
		m.setStatus(uploadErrorMessage(msg.err), true)
		m.logger.Warn("upload failed", zap.Error(msg.err))
		return m, nil

	case queryResultMsg:
		m.store.LastResponse = &session.Response{Answer: msg.result.Answer}
		m.answer.SetSources(msg.result.Sources)
		m.state = StateIdle
		m.spinner.Stop()
		return m, nil

	case queryFailedMsg:
		m.store.LastResponse = &session.Response{Err: queryErrorMessage(msg.err)}
		m.state = StateIdle
		m.spinner.Stop()
		m.logger.Warn("query failed", zap.Error(msg.err))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (mouse wheel and friends) scrolls the active
	// document page.
	if m.store.ActiveSection == session.SectionPDF {
		var cmd tea.Cmd
		m.pdfViewer, cmd = m.pdfViewer.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes key presses. A focused input owns the keyboard
// except for ctrl+c.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.focus != focusNone {
		return m.handleFocusedKey(msg)
	}

	switch msg.String() {
	case "esc", "q":
		return m, tea.Quit

	case "tab":
		// Toggling sections never clears the other viewer's state.
		m.store.ToggleSection()
		return m, nil

	case "u":
		m.focus = focusPath
		return m, m.pathInput.Focus()

	case "s":
		if m.store.ActiveSection == session.SectionPDF {
			m.selectionInput.SetValue(m.store.PDF.SelectedText)
			m.focus = focusSelection
			return m, m.selectionInput.Focus()
		}
		return m, nil

	case "/":
		m.focus = focusQuestion
		return m, m.questionInput.Focus()

	case "a":
		return m.askSelection()

	case "r":
		if m.busy() {
			return m, nil
		}
		m.store.Reset()
		m.pdfViewer.Sync(m.store.PDF)
		m.answer.SetSources(nil)
		m.setStatus("Previous results cleared", false)
		return m, nil

	case "left", "h":
		return m.turnPage(-1), nil

	case "right", "l":
		return m.turnPage(1), nil

	case "up", "k":
		if m.store.ActiveSection == session.SectionVideo {
			m.videoViewer.MoveCursor(-1, len(m.store.Video.Chunks))
			return m, nil
		}

	case "down", "j":
		if m.store.ActiveSection == session.SectionVideo {
			m.videoViewer.MoveCursor(1, len(m.store.Video.Chunks))
			return m, nil
		}

	case "enter":
		if m.store.ActiveSection == session.SectionVideo {
			return m.activateChunk(), nil
		}
		return m, nil
	}

	// Remaining keys (pgup/pgdn, arrows on the pdf section) scroll the
	// page viewport.
	if m.store.ActiveSection == session.SectionPDF {
		var cmd tea.Cmd
		m.pdfViewer, cmd = m.pdfViewer.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleFocusedKey feeds keys to the focused input, committing on
// enter and releasing focus on esc.
func (m Model) handleFocusedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blurAll()
		return m, nil
	case "enter":
		return m.commitFocusedInput()
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusPath:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case focusSelection:
		m.selectionInput, cmd = m.selectionInput.Update(msg)
	case focusQuestion:
		m.questionInput, cmd = m.questionInput.Update(msg)
	}
	return m, cmd
}

// commitFocusedInput applies the focused input's value.
func (m Model) commitFocusedInput() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusPath:
		path := strings.TrimSpace(m.pathInput.Value())
		m.blurAll()
		if path == "" {
			return m, nil
		}
		return m.startUpload(path)

	case focusSelection:
		// The input's value IS the selection.
		m.store.PDF.SelectedText = m.selectionInput.Value()
		m.pdfViewer.Sync(m.store.PDF)
		m.blurAll()
		return m, nil

	case focusQuestion:
		question := strings.TrimSpace(m.questionInput.Value())
		m.blurAll()
		if question == "" {
			return m, nil
		}
		if m.busy() {
			m.setStatus("Another request is still in progress", true)
			return m, nil
		}
		m.questionInput.Clear()
		m.state = StateQuerying
		m.setStatus("", false)
		// General questions carry no scope: just the question.
		return m, tea.Batch(
			m.spinner.Start("Searching for answers..."),
			m.queryCmd(&backend.QueryRequest{Question: question}),
		)
	}
	return m, nil
}

// startUpload kicks off the single in-flight upload for the active
// section.
func (m Model) startUpload(path string) (tea.Model, tea.Cmd) {
	if m.busy() {
		m.setStatus("Another request is still in progress", true)
		return m, nil
	}

	m.state = StateUploading
	m.setStatus("", false)
	if m.store.ActiveSection == session.SectionVideo {
		return m, tea.Batch(
			m.spinner.Start("Processing Video..."),
			m.submitVideoCmd(path),
		)
	}
	return m, tea.Batch(
		m.spinner.Start("Processing PDF..."),
		m.submitPDFCmd(path),
	)
}

// askSelection dispatches the scoped ask for the active viewer's
// current selection.
func (m Model) askSelection() (tea.Model, tea.Cmd) {
	if m.busy() {
		m.setStatus("Another request is still in progress", true)
		return m, nil
	}

	req, ok := m.scopedRequest()
	if !ok {
		if m.store.ActiveSection == session.SectionVideo {
			m.setStatus("Choose a transcript segment first", true)
		} else {
			m.setStatus("Type a text selection first (press s)", true)
		}
		return m, nil
	}

	m.state = StateQuerying
	m.setStatus("", false)
	return m, tea.Batch(
		m.spinner.Start("Searching for answers..."),
		m.queryCmd(req),
	)
}

// turnPage moves the document one page, clamped to its bounds.
func (m Model) turnPage(delta int) Model {
	if m.store.ActiveSection != session.SectionPDF || m.store.PDF.FullText == "" {
		return m
	}
	doc := media.NewDocument(m.store.PDF.FullText)
	m.store.PDF.PageIndex = doc.ClampPage(m.store.PDF.PageIndex + delta)
	m.pdfViewer.Sync(m.store.PDF)
	return m
}

// activateChunk applies the focused transcript segment: the playback
// position seeks to its timestamp and its full text becomes the
// selection. A malformed timestamp is surfaced, never treated as 0.
func (m Model) activateChunk() Model {
	chunks := m.store.Video.Chunks
	if len(chunks) == 0 {
		return m
	}
	cursor := m.videoViewer.Cursor()
	if cursor >= len(chunks) {
		cursor = len(chunks) - 1
	}
	chunk := chunks[cursor]

	seconds, err := chunk.Seconds()
	if err != nil {
		m.setStatus(fmt.Sprintf("Transcript data error: %v", err), true)
		return m
	}

	m.store.Video.TimestampSeconds = seconds
	m.store.Video.SelectedChunk = chunk.Text
	return m
}

func (m *Model) blurAll() {
	m.pathInput.Blur()
	m.selectionInput.Blur()
	m.questionInput.Blur()
	m.focus = focusNone
}

// uploadErrorMessage maps an upload failure to its display text,
// preferring the backend-provided detail.
func uploadErrorMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Backend error: %s", apiErr.Detail)
	}
	var malformed *backend.MalformedResponseError
	if errors.As(err, &malformed) {
		return fmt.Sprintf("Failed to process upload: %v", malformed)
	}
	return fmt.Sprintf("Failed to process upload: %v", err)
}

// queryErrorMessage maps a query failure to its display text.
func queryErrorMessage(err error) string {
	if errors.Is(err, backend.ErrNoAnswer) {
		return "No answer available in the response. Check backend logs for details."
	}
	return fmt.Sprintf("Search failed: %v", err)
}
