package handlers

import (
	"log"
	"net/http"

	"github.com/video-nlp/backend/internal/pipeline"
	"github.com/video-nlp/backend/internal/transcript"
)

const (
	defaultMinLength = 150
	defaultMaxLength = 300
)

type SummaryHandler struct {
	pipeline *pipeline.Pipeline
}

func NewSummaryHandler(p *pipeline.Pipeline) *SummaryHandler {
	return &SummaryHandler{pipeline: p}
}

type summarizeRequest struct {
	VideoID   string `json:"videoId"`
	MinLength *int   `json:"minLength"`
	MaxLength *int   `json:"maxLength"`
}

type summarizeResponse struct {
	Status     string  `json:"status"`
	VideoID    string  `json:"videoId"`
	Summary    string  `json:"summary"`
	Transcript string  `json:"transcript"`
	Timestamp  float64 `json:"timestamp"`
}

// Summarize handles POST /api/summarize.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.VideoID == "" {
		jsonError(w, "", "No video ID provided", http.StatusBadRequest)
		return
	}

	videoID := transcript.ParseVideoID(req.VideoID)
	minLength := defaultMinLength
	maxLength := defaultMaxLength
	if req.MinLength != nil {
		minLength = *req.MinLength
	}
	if req.MaxLength != nil {
		maxLength = *req.MaxLength
	}

	result, err := h.pipeline.Summarize(r.Context(), videoID, minLength, maxLength)
	if err != nil {
		log.Printf("[api] summarize %s failed: %v", videoID, err)
		jsonError(w, videoID, err.Error(), statusFor(err))
		return
	}

	jsonResponse(w, summarizeResponse{
		Status:     "success",
		VideoID:    videoID,
		Summary:    result.Summary,
		Transcript: result.Transcript,
		Timestamp:  result.CreatedAt,
	}, http.StatusOK)
}
