package repository

import (
	"context"

	"video-summarizer/domain/model"
)

// ITranscript defines the interface for transcript retrieval operations
type ITranscript interface {
	// Fetch returns the transcript for videoID in the first language from
	// the preference chain that has a caption track.
	Fetch(ctx context.Context, videoID string, languages []string) (*model.Transcript, error)
}
