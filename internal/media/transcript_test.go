package media_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragtui/internal/media"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"00:00", 0},
		{"01:05", 65},
		{"10:59", 659},
		{"99:01", 5941},
	}
	for _, tt := range tests {
		got, err := media.ParseTimestamp(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}

func TestParseTimestampMalformed(t *testing.T) {
	// A bad label is a data error, never a silent zero.
	for _, label := range []string{"", "105", "1:2:3", "aa:bb", "01:60", "-1:30", "01:-5"} {
		_, err := media.ParseTimestamp(label)
		assert.Error(t, err, label)
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "01:05", media.FormatTimestamp(65))
	assert.Equal(t, "00:00", media.FormatTimestamp(0))
	assert.Equal(t, "00:00", media.FormatTimestamp(-3))
	assert.Equal(t, "12:34", media.FormatTimestamp(754))
}

func TestChunkSeconds(t *testing.T) {
	chunk := media.TranscriptChunk{Timestamp: "01:05", Text: "hello world"}
	secs, err := chunk.Seconds()
	require.NoError(t, err)
	assert.Equal(t, 65, secs)
}

func TestChunkPreview(t *testing.T) {
	short := media.TranscriptChunk{Text: "hello world"}
	assert.Equal(t, "hello world", short.Preview())

	long := media.TranscriptChunk{Text: strings.Repeat("x", 80)}
	preview := long.Preview()
	assert.Equal(t, 50, len(preview))
	assert.True(t, strings.HasSuffix(preview, "..."))
}

func TestValidateChunks(t *testing.T) {
	ok := []media.TranscriptChunk{
		{Timestamp: "00:00", Text: "a"},
		{Timestamp: "00:30", Text: "b"},
		{Timestamp: "01:05", Text: "c"},
	}
	assert.NoError(t, media.ValidateChunks(ok))
	assert.NoError(t, media.ValidateChunks(nil))

	outOfOrder := []media.TranscriptChunk{
		{Timestamp: "01:00", Text: "a"},
		{Timestamp: "00:30", Text: "b"},
	}
	assert.Error(t, media.ValidateChunks(outOfOrder))

	malformed := []media.TranscriptChunk{
		{Timestamp: "00:00", Text: "a"},
		{Timestamp: "later", Text: "b"},
	}
	assert.Error(t, media.ValidateChunks(malformed))
}
