package handlers

import (
	"log"
	"net/http"

	"github.com/video-nlp/backend/internal/pipeline"
	"github.com/video-nlp/backend/internal/transcript"
)

type SegmentHandler struct {
	pipeline *pipeline.Pipeline
}

func NewSegmentHandler(p *pipeline.Pipeline) *SegmentHandler {
	return &SegmentHandler{pipeline: p}
}

type segmentSummaryRequest struct {
	VideoID   string `json:"videoId"`
	SegmentID *int   `json:"segmentId"`
}

type segmentSummaryResponse struct {
	Status        string  `json:"status"`
	VideoID       string  `json:"videoId"`
	SegmentID     int     `json:"segmentId"`
	Summary       string  `json:"summary"`
	Timestamp     float64 `json:"timestamp"` // segment start, seconds
	FormattedTime string  `json:"formatted_time"`
	Title         string  `json:"title"`
}

// SegmentSummary handles POST /api/segment_summary.
func (h *SegmentHandler) SegmentSummary(w http.ResponseWriter, r *http.Request) {
	var req segmentSummaryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.VideoID == "" || req.SegmentID == nil {
		jsonError(w, req.VideoID, "Missing required parameters", http.StatusBadRequest)
		return
	}

	videoID := transcript.ParseVideoID(req.VideoID)
	segmentID := *req.SegmentID

	result, err := h.pipeline.SegmentSummary(r.Context(), videoID, segmentID)
	if err != nil {
		log.Printf("[api] segment summary %s/%d failed: %v", videoID, segmentID, err)
		jsonSegmentError(w, videoID, segmentID, err.Error(), statusFor(err))
		return
	}

	jsonResponse(w, segmentSummaryResponse{
		Status:        "success",
		VideoID:       videoID,
		SegmentID:     segmentID,
		Summary:       result.Summary,
		Timestamp:     result.Time,
		FormattedTime: result.FormattedTime,
		Title:         result.Title,
	}, http.StatusOK)
}
