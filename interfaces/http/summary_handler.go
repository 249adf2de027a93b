package http

import (
	"fmt"
	"net/http"

	"video-summarizer/domain/apperror"
	"video-summarizer/domain/dto"
	"video-summarizer/infrastructure/logger"
	"video-summarizer/interfaces/middleware"
	"video-summarizer/usecase"

	"github.com/gin-gonic/gin"
)

// ISummaryHandler defines the interface for summary HTTP handlers
type ISummaryHandler interface {
	Summarize(ctx *gin.Context)
}

// SummaryHandler implements the summary HTTP handlers
type SummaryHandler struct {
	summaryUseCase usecase.ISummaryUseCase
}

// NewSummaryHandler creates a new summary handler instance
func NewSummaryHandler(summaryUseCase usecase.ISummaryUseCase) ISummaryHandler {
	return &SummaryHandler{summaryUseCase: summaryUseCase}
}

// statusByKind and detailByKind translate tagged failures into the wire
// contract. Kinds missing from the tables fall through to the internal
// branch.
var statusByKind = map[apperror.Kind]int{
	apperror.KindInvalidInput:          http.StatusBadRequest,
	apperror.KindTranscriptUnavailable: http.StatusBadRequest,
	apperror.KindSummarization:         http.StatusBadRequest,
}

var detailByKind = map[apperror.Kind]string{
	apperror.KindInvalidInput:          "Invalid YouTube URL. Could not find video ID.",
	apperror.KindTranscriptUnavailable: "Could not fetch transcript. The video may not have one, or it's disabled.",
	apperror.KindSummarization:         "Error from summarization model.",
}

// Summarize handles POST /summarize
func (h *SummaryHandler) Summarize(ctx *gin.Context) {
	var req dto.SummarizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"request_id": ctx.GetString(middleware.RequestIDKey),
			"error":      err,
		}).Info("Rejected unreadable request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid request body."})
		return
	}

	summary, err := h.summaryUseCase.Summarize(ctx.Request.Context(), req.VideoURL)
	if err != nil {
		kind := apperror.KindOf(err)
		status, ok := statusByKind[kind]
		detail := detailByKind[kind]
		if !ok {
			status = http.StatusInternalServerError
			detail = fmt.Sprintf("An internal error occurred: %v", err)
		}
		logger.GetLogger().WithFields(map[string]interface{}{
			"request_id": ctx.GetString(middleware.RequestIDKey),
			"video_url":  req.VideoURL,
			"kind":       kind.String(),
			"error":      err,
		}).Error("Summarize request failed")
		ctx.JSON(status, dto.ErrorResponse{Detail: detail})
		return
	}

	ctx.JSON(http.StatusOK, dto.SummaryResponse{Summary: summary})
}
