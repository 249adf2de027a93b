package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"video-summarizer/domain/apperror"
	"video-summarizer/domain/model"
	"video-summarizer/usecase"
)

// Mock implementations
type MockTranscriptRepository struct {
	mock.Mock
}

func (m *MockTranscriptRepository) Fetch(ctx context.Context, videoID string, languages []string) (*model.Transcript, error) {
	args := m.Called(ctx, videoID, languages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcript), args.Error(1)
}

type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	args := m.Called(ctx, transcript)
	return args.String(0), args.Error(1)
}

var preferenceChain = []string{"en-IN", "hi", "en"}

func TestSummaryUsecase_Summarize(t *testing.T) {
	mockTranscript := new(MockTranscriptRepository)
	mockSummarizer := new(MockSummarizer)

	fetched := &model.Transcript{
		VideoID:      "abc123",
		LanguageCode: "en-IN",
		Segments: []model.TranscriptSegment{
			{Text: "Hello", Start: 0, Duration: 1.5},
			{Text: "world", Start: 1.5, Duration: 1.2},
		},
	}

	mockTranscript.On("Fetch", mock.Anything, "abc123", preferenceChain).
		Return(fetched, nil).
		Once()

	// The summarizer must receive the space-joined transcript text
	mockSummarizer.On("Summarize", mock.Anything, "Hello world").
		Return("- point one", nil).
		Once()

	summaryUsecase := usecase.NewSummaryUseCase(mockTranscript, mockSummarizer, preferenceChain)

	summary, err := summaryUsecase.Summarize(context.Background(), "https://www.youtube.com/watch?v=abc123")

	assert.NoError(t, err)
	assert.Equal(t, "- point one", summary)

	mockTranscript.AssertExpectations(t)
	mockSummarizer.AssertExpectations(t)
}

func TestSummaryUsecase_Summarize_ShortLink(t *testing.T) {
	mockTranscript := new(MockTranscriptRepository)
	mockSummarizer := new(MockSummarizer)

	fetched := &model.Transcript{
		VideoID:      "abc123",
		LanguageCode: "hi",
		Segments:     []model.TranscriptSegment{{Text: "namaste"}},
	}

	mockTranscript.On("Fetch", mock.Anything, "abc123", preferenceChain).
		Return(fetched, nil).
		Once()
	mockSummarizer.On("Summarize", mock.Anything, "namaste").
		Return("- greeting", nil).
		Once()

	summaryUsecase := usecase.NewSummaryUseCase(mockTranscript, mockSummarizer, preferenceChain)

	summary, err := summaryUsecase.Summarize(context.Background(), "https://youtu.be/abc123?si=share")

	assert.NoError(t, err)
	assert.Equal(t, "- greeting", summary)

	mockTranscript.AssertExpectations(t)
	mockSummarizer.AssertExpectations(t)
}

func TestSummaryUsecase_Summarize_InvalidURL(t *testing.T) {
	mockTranscript := new(MockTranscriptRepository)
	mockSummarizer := new(MockSummarizer)

	// No expectations: extraction fails before any collaborator is called

	summaryUsecase := usecase.NewSummaryUseCase(mockTranscript, mockSummarizer, preferenceChain)

	_, err := summaryUsecase.Summarize(context.Background(), "not a url")

	assert.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))

	mockTranscript.AssertExpectations(t)
	mockSummarizer.AssertExpectations(t)
}

func TestSummaryUsecase_Summarize_TranscriptError(t *testing.T) {
	mockTranscript := new(MockTranscriptRepository)
	mockSummarizer := new(MockSummarizer)

	mockTranscript.On("Fetch", mock.Anything, "abc123", preferenceChain).
		Return(nil, assert.AnError).
		Once()

	// No summarizer expectations because the flow short-circuits on fetch failure

	summaryUsecase := usecase.NewSummaryUseCase(mockTranscript, mockSummarizer, preferenceChain)

	_, err := summaryUsecase.Summarize(context.Background(), "https://www.youtube.com/watch?v=abc123")

	assert.Error(t, err)
	assert.Equal(t, apperror.KindTranscriptUnavailable, apperror.KindOf(err))
	assert.True(t, errors.Is(err, assert.AnError), "the underlying cause should stay in the chain")

	mockTranscript.AssertExpectations(t)
	mockSummarizer.AssertExpectations(t)
}

func TestSummaryUsecase_Summarize_SummarizerError(t *testing.T) {
	mockTranscript := new(MockTranscriptRepository)
	mockSummarizer := new(MockSummarizer)

	fetched := &model.Transcript{
		VideoID:      "abc123",
		LanguageCode: "en",
		Segments:     []model.TranscriptSegment{{Text: "Hello"}},
	}

	mockTranscript.On("Fetch", mock.Anything, "abc123", preferenceChain).
		Return(fetched, nil).
		Once()
	mockSummarizer.On("Summarize", mock.Anything, "Hello").
		Return("", assert.AnError).
		Once()

	summaryUsecase := usecase.NewSummaryUseCase(mockTranscript, mockSummarizer, preferenceChain)

	_, err := summaryUsecase.Summarize(context.Background(), "https://www.youtube.com/watch?v=abc123")

	assert.Error(t, err)
	assert.Equal(t, apperror.KindSummarization, apperror.KindOf(err))

	mockTranscript.AssertExpectations(t)
	mockSummarizer.AssertExpectations(t)
}
