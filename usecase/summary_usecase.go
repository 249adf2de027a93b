package usecase

import (
	"context"

	"video-summarizer/domain/apperror"
	"video-summarizer/domain/repository"
	"video-summarizer/infrastructure/clients/transcript"
	"video-summarizer/infrastructure/logger"
)

// ISummaryUseCase defines the interface for summary use case operations
type ISummaryUseCase interface {
	// Summarize resolves a video URL to a bullet-point summary of its
	// transcript.
	Summarize(ctx context.Context, videoURL string) (string, error)
}

// SummaryUseCase implements the summary use case operations
type SummaryUseCase struct {
	transcriptRepo repository.ITranscript
	summarizer     repository.ISummarizer
	languages      []string
}

// NewSummaryUseCase creates a new summary use case instance
func NewSummaryUseCase(transcriptRepo repository.ITranscript, summarizer repository.ISummarizer, languages []string) ISummaryUseCase {
	return &SummaryUseCase{
		transcriptRepo: transcriptRepo,
		summarizer:     summarizer,
		languages:      languages,
	}
}

// Summarize extracts the video id, fetches the transcript over the language
// preference chain, and asks the model for a summary. Failures come back as
// tagged apperror values for the HTTP layer to translate.
func (u *SummaryUseCase) Summarize(ctx context.Context, videoURL string) (string, error) {
	videoID, ok := transcript.ExtractVideoID(videoURL)
	if !ok {
		logger.GetLogger().WithField("video_url", videoURL).Info("No video id found in URL")
		return "", apperror.InvalidInput("usecase.Summarize", "no video id in url", nil)
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"video_url": videoURL,
		"video_id":  videoID,
	}).Info("Video id extracted")

	fetched, err := u.transcriptRepo.Fetch(ctx, videoID, u.languages)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"video_id":  videoID,
			"languages": u.languages,
			"error":     err,
		}).Error("Failed to fetch transcript")
		return "", apperror.TranscriptUnavailable("usecase.Summarize", "transcript unavailable", err)
	}

	transcriptText := fetched.Join()
	logger.GetLogger().WithFields(map[string]interface{}{
		"video_id":   videoID,
		"language":   fetched.LanguageCode,
		"characters": len(transcriptText),
	}).Info("Transcript fetched")

	summary, err := u.summarizer.Summarize(ctx, transcriptText)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"video_id": videoID,
			"error":    err,
		}).Error("Failed to summarize transcript")
		return "", apperror.Summarization("usecase.Summarize", "summarization failed", err)
	}

	logger.GetLogger().WithField("video_id", videoID).Info("Summary generated")
	return summary, nil
}
