package media

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"
)

// PreviewLength is how many characters of a chunk's text appear in its
// transcript row.
const PreviewLength = 50

// TranscriptChunk is one timestamp-labeled segment of a video's
// speech-to-text output, as returned by the backend.
type TranscriptChunk struct {
	Timestamp string `json:"timestamp"` // "MM:SS"
	Text      string `json:"text"`
}

// Seconds converts the chunk's timestamp label to whole seconds.
func (c TranscriptChunk) Seconds() (int, error) {
	return ParseTimestamp(c.Timestamp)
}

// Preview returns the first PreviewLength characters of the chunk text,
// with an ellipsis tail when truncated.
func (c TranscriptChunk) Preview() string {
	return truncate.StringWithTail(c.Text, PreviewLength, "...")
}

// ParseTimestamp parses an "MM:SS" label into whole seconds
// (60*MM + SS). A malformed label is a data error: it is reported,
// never silently treated as zero.
func ParseTimestamp(label string) (int, error) {
	parts := strings.Split(label, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed timestamp %q: want MM:SS", label)
	}

	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("malformed timestamp %q: bad minutes", label)
	}

	seconds, err := strconv.Atoi(parts[1])
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("malformed timestamp %q: seconds must be in [0,59]", label)
	}

	return minutes*60 + seconds, nil
}

// FormatTimestamp renders whole seconds back to an "MM:SS" label.
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ValidateChunks checks that every chunk label parses and that the
// sequence is ordered by ascending timestamp.
func ValidateChunks(chunks []TranscriptChunk) error {
	prev := -1
	for i, c := range chunks {
		secs, err := c.Seconds()
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
		if secs < prev {
			return fmt.Errorf("chunk %d: timestamp %s out of order", i, c.Timestamp)
		}
		prev = secs
	}
	return nil
}
