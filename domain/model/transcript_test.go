package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscriptJoin(t *testing.T) {
	tests := []struct {
		name     string
		segments []TranscriptSegment
		expected string
	}{
		{
			name: "segments joined with single spaces",
			segments: []TranscriptSegment{
				{Text: "Hello", Start: 0, Duration: 1.5},
				{Text: "world", Start: 1.5, Duration: 1.2},
			},
			expected: "Hello world",
		},
		{
			name:     "single segment",
			segments: []TranscriptSegment{{Text: "only one"}},
			expected: "only one",
		},
		{
			name:     "no segments",
			segments: nil,
			expected: "",
		},
		{
			name: "order is preserved",
			segments: []TranscriptSegment{
				{Text: "first", Start: 0},
				{Text: "second", Start: 4.2},
				{Text: "third", Start: 9.7},
			},
			expected: "first second third",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcript := &Transcript{VideoID: "abc123", Segments: tt.segments}
			assert.Equal(t, tt.expected, transcript.Join())
		})
	}
}
