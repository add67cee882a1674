package backend

import "ragtui/internal/media"

// PDFUploadResult is the 200 body of POST /upload/pdf/.
type PDFUploadResult struct {
	FileID   string `json:"file_id"`
	FullText string `json:"full_text"`
}

// VideoUploadResult is the 200 body of POST /upload/video/.
type VideoUploadResult struct {
	FileID           string                  `json:"file_id"`
	FullTranscript   string                  `json:"full_transcript"`
	TranscriptChunks []media.TranscriptChunk `json:"transcript_chunks"`
}

// QueryRequest is the body of POST /query/. Context and SourceType are
// sent only for scoped questions; a general question carries neither
// key.
type QueryRequest struct {
	Question   string `json:"question"`
	Context    string `json:"context,omitempty"`
	SourceType string `json:"source_type,omitempty"`
}

// QueryResult is a successful answer from the backend.
type QueryResult struct {
	Answer  string
	Sources []Source
}

// Source is one citation excerpt attached to an answer. The backend
// does not emit these yet; the type exists so the renderer's citation
// path has a shape to grow into.
type Source struct {
	Type      string `json:"type"` // "pdf" or "video"
	Source    string `json:"source"`
	Page      int    `json:"page,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Content   string `json:"content"`
}
