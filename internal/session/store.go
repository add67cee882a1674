package session

import "ragtui/internal/media"

// Section identifies which viewer drives the query target.
type Section string

const (
	SectionPDF   Section = "pdf"
	SectionVideo Section = "video"
)

// PDFState holds the document viewer's slots.
type PDFState struct {
	PageIndex    int    // 0-based; user-facing navigation is 1-based
	SelectedText string // typed or pasted selection, used as query scope
	FileID       string
	Path         string // staged copy of the uploaded file
	FullText     string // backend-extracted text, form-feed page delimiters
}

// VideoState holds the video viewer's slots.
type VideoState struct {
	TimestampSeconds int
	Chunks           []media.TranscriptChunk
	FullTranscript   string
	SelectedChunk    string // full text of the activated transcript segment
	FileID           string
	Path             string
}

// Response is the last query outcome, either an answer or a display
// error. Exactly one field is set.
type Response struct {
	Answer string
	Err    string
}

// Store holds all mutable interaction state for one session. It is
// owned by the app model and passed by reference into the components;
// each component mutates only the slots it owns (the upload coordinator
// owns ids and extracted content, the viewers own navigation and
// selection, the query path owns LastResponse). Mutations happen on the
// update loop only, so no locking is needed.
type Store struct {
	ActiveSection Section
	PDF           PDFState
	Video         VideoState
	LastResponse  *Response
}

// New creates an empty store. The PDF section is active first, matching
// the initial render.
func New() *Store {
	return &Store{ActiveSection: SectionPDF}
}

// ToggleSection switches the active viewer. The inactive viewer's state
// is left untouched: switching back restores its page, timestamp, and
// selection exactly.
func (s *Store) ToggleSection() {
	if s.ActiveSection == SectionPDF {
		s.ActiveSection = SectionVideo
	} else {
		s.ActiveSection = SectionPDF
	}
}

// ActiveScope returns the (contextText, sourceType) pair for a scoped
// question, taken from whichever viewer is active. ok is false when the
// active viewer has no selection.
func (s *Store) ActiveScope() (contextText string, sourceType Section, ok bool) {
	switch s.ActiveSection {
	case SectionVideo:
		return s.Video.SelectedChunk, SectionVideo, s.Video.SelectedChunk != ""
	default:
		return s.PDF.SelectedText, SectionPDF, s.PDF.SelectedText != ""
	}
}

// Reset clears the derived slots while preserving the sticky ones, so
// the view does not jump after clearing backend results.
//
// Derived (cleared): both file ids, the PDF's extracted text, the
// transcript chunk index, and the last response.
// Sticky (preserved): the active section, page index, both selections,
// both staged media paths, the playback timestamp, and the full video
// transcript.
//
// Reset is idempotent: applying it twice leaves the same slots.
func (s *Store) Reset() {
	s.PDF.FileID = ""
	s.PDF.FullText = ""
	s.Video.FileID = ""
	s.Video.Chunks = nil
	s.LastResponse = nil
}
