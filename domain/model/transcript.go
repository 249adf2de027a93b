package model

import "strings"

// TranscriptSegment represents a single timed caption fragment of a video
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript represents a caption track fetched for one video
type Transcript struct {
	VideoID      string              `json:"video_id"`
	Language     string              `json:"language"`
	LanguageCode string              `json:"language_code"`
	IsGenerated  bool                `json:"is_generated"`
	Segments     []TranscriptSegment `json:"segments"`
}

// Join concatenates the segment texts with single spaces, preserving the
// original chronological order.
func (t *Transcript) Join() string {
	texts := make([]string, 0, len(t.Segments))
	for _, segment := range t.Segments {
		texts = append(texts, segment.Text)
	}
	return strings.Join(texts, " ")
}
