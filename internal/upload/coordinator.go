package upload

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"ragtui/internal/backend"
	"ragtui/internal/session"
)

// Coordinator drives file submission to the backend. A submit stages
// the picked file into the scratch directory, performs the single
// blocking upload, and hands back everything the session needs. The
// staged file deliberately outlives the call: the viewer needs a
// stable path for the rest of the session.
type Coordinator struct {
	client     *backend.Client
	scratchDir string
	logger     *zap.Logger
}

// StagedPDF is a completed PDF submission.
type StagedPDF struct {
	Path   string
	Result *backend.PDFUploadResult
}

// StagedVideo is a completed video submission.
type StagedVideo struct {
	Path   string
	Result *backend.VideoUploadResult
}

// NewCoordinator creates an upload coordinator writing staged media
// into scratchDir.
func NewCoordinator(client *backend.Client, scratchDir string, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{client: client, scratchDir: scratchDir, logger: logger}
}

// SubmitPDF stages and uploads a PDF. On any failure nothing is merged
// into the session; the caller surfaces the error.
func (c *Coordinator) SubmitPDF(ctx context.Context, srcPath string) (*StagedPDF, error) {
	staged, err := c.stage(srcPath, ".pdf")
	if err != nil {
		return nil, err
	}
	result, err := c.client.UploadPDF(ctx, staged)
	if err != nil {
		return nil, err
	}
	c.logger.Info("pdf processed", zap.String("file_id", result.FileID))
	return &StagedPDF{Path: staged, Result: result}, nil
}

// SubmitVideo stages and uploads a video.
func (c *Coordinator) SubmitVideo(ctx context.Context, srcPath string) (*StagedVideo, error) {
	staged, err := c.stage(srcPath, ".mp4")
	if err != nil {
		return nil, err
	}
	result, err := c.client.UploadVideo(ctx, staged)
	if err != nil {
		return nil, err
	}
	c.logger.Info("video processed",
		zap.String("file_id", result.FileID),
		zap.Int("chunks", len(result.TranscriptChunks)),
	)
	return &StagedVideo{Path: staged, Result: result}, nil
}

// MergePDF writes a completed submission into the session's PDF slots.
// Switching to a different file drops the old selection and returns to
// the first page; re-processing the same file keeps both.
func (c *Coordinator) MergePDF(s *session.Store, staged *StagedPDF) {
	if s.PDF.FileID != "" && s.PDF.FileID != staged.Result.FileID {
		s.PDF.SelectedText = ""
		s.PDF.PageIndex = 0
	}
	s.PDF.Path = staged.Path
	s.PDF.FileID = staged.Result.FileID
	s.PDF.FullText = staged.Result.FullText
}

// MergeVideo writes a completed submission into the session's video
// slots, with the same file-switch semantics as MergePDF.
func (c *Coordinator) MergeVideo(s *session.Store, staged *StagedVideo) {
	if s.Video.FileID != "" && s.Video.FileID != staged.Result.FileID {
		s.Video.SelectedChunk = ""
		s.Video.TimestampSeconds = 0
	}
	s.Video.Path = staged.Path
	s.Video.FileID = staged.Result.FileID
	s.Video.FullTranscript = staged.Result.FullTranscript
	s.Video.Chunks = staged.Result.TranscriptChunks
}

// stage copies the source file into the scratch directory and returns
// the stable path.
func (c *Coordinator) stage(srcPath, suffix string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open media file: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(c.scratchDir, 0o755); err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}

	dst, err := os.CreateTemp(c.scratchDir, "media-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("stage media file: %w", err)
	}
	return dst.Name(), nil
}
