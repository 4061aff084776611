package handlers

import (
	"log"
	"net/http"

	"github.com/video-nlp/backend/internal/pipeline"
	"github.com/video-nlp/backend/internal/segmenter"
	"github.com/video-nlp/backend/internal/transcript"
)

type TimestampsHandler struct {
	pipeline *pipeline.Pipeline
}

func NewTimestampsHandler(p *pipeline.Pipeline) *TimestampsHandler {
	return &TimestampsHandler{pipeline: p}
}

type timestampsRequest struct {
	VideoID string `json:"videoId"`
}

type timestampsResponse struct {
	Status     string              `json:"status"`
	VideoID    string              `json:"videoId"`
	Timestamps []segmenter.Segment `json:"timestamps"`
	Timestamp  float64             `json:"timestamp"`
}

// Timestamps handles POST /api/timestamps.
func (h *TimestampsHandler) Timestamps(w http.ResponseWriter, r *http.Request) {
	var req timestampsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.VideoID == "" {
		jsonError(w, "", "No video ID provided", http.StatusBadRequest)
		return
	}

	videoID := transcript.ParseVideoID(req.VideoID)

	result, err := h.pipeline.Timestamps(r.Context(), videoID)
	if err != nil {
		log.Printf("[api] timestamps %s failed: %v", videoID, err)
		jsonError(w, videoID, err.Error(), statusFor(err))
		return
	}

	jsonResponse(w, timestampsResponse{
		Status:     "success",
		VideoID:    videoID,
		Timestamps: result.Segments,
		Timestamp:  result.CreatedAt,
	}, http.StatusOK)
}
