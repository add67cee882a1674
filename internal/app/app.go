package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ragtui/internal/backend"
	"ragtui/internal/components/answer"
	"ragtui/internal/components/input"
	"ragtui/internal/components/pdfviewer"
	"ragtui/internal/components/spinner"
	"ragtui/internal/components/videoviewer"
	"ragtui/internal/session"
	"ragtui/internal/upload"
)

// State is the interaction state. Exactly one network call may be in
// flight: while Uploading or Querying the rest of the UI stays
// readable but no second call can be triggered.
type State int

const (
	StateIdle State = iota
	StateUploading
	StateQuerying
)

// focusTarget identifies which text input owns the keyboard.
type focusTarget int

const (
	focusNone focusTarget = iota
	focusPath
	focusSelection
	focusQuestion
)

// Model is the main application model. Every user action runs through
// Update synchronously; the session store is mutated there and only
// there, so each render reads fully applied state.
type Model struct {
	store    *session.Store
	client   *backend.Client
	uploader *upload.Coordinator
	logger   *zap.Logger

	pdfViewer      pdfviewer.Model
	videoViewer    videoviewer.Model
	answer         answer.Model
	pathInput      input.Model
	selectionInput input.Model
	questionInput  input.Model
	spinner        spinner.Model

	state  State
	focus  focusTarget
	width  int
	height int
	ready  bool

	// Transient status line (upload outcomes, selection hints).
	statusMsg   string
	statusIsErr bool
}

// New creates the application model.
func New(store *session.Store, client *backend.Client, uploader *upload.Coordinator, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		store:          store,
		client:         client,
		uploader:       uploader,
		logger:         logger,
		pdfViewer:      pdfviewer.New(80, 16),
		videoViewer:    videoviewer.New(80),
		answer:         answer.New(80),
		pathInput:      input.New("Media file path", "/path/to/file.pdf or .mp4", 80),
		selectionInput: input.New("Highlight text (type or copy from the page)", "", 80),
		questionInput:  input.New("Ask a general question about the uploaded content", "", 80),
		spinner:        spinner.New(),
		state:          StateIdle,
		focus:          focusNone,
	}
}

// Store exposes the session store.
func (m Model) Store() *session.Store {
	return m.store
}

// State exposes the interaction state.
func (m Model) State() State {
	return m.state
}

// Init initializes the application.
func (m Model) Init() tea.Cmd {
	return nil
}

// busy reports whether a network call is outstanding.
func (m Model) busy() bool {
	return m.state != StateIdle
}

// setStatus replaces the transient status line.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}
