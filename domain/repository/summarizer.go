package repository

import "context"

// ISummarizer defines the interface for summary generation operations
type ISummarizer interface {
	// Summarize produces summary text for the given transcript text.
	Summarize(ctx context.Context, transcript string) (string, error)
}
