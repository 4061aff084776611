package handlers

import (
	"log"
	"net/http"

	"github.com/video-nlp/backend/internal/pipeline"
	"github.com/video-nlp/backend/internal/transcript"
)

const defaultNumTerms = 8

type KeyPointsHandler struct {
	pipeline *pipeline.Pipeline
}

func NewKeyPointsHandler(p *pipeline.Pipeline) *KeyPointsHandler {
	return &KeyPointsHandler{pipeline: p}
}

type keyPointsRequest struct {
	VideoID  string `json:"videoId"`
	NumTerms *int   `json:"numTerms"`
}

type keyPointsResponse struct {
	Status    string   `json:"status"`
	VideoID   string   `json:"videoId"`
	KeyPoints []string `json:"keyPoints"`
	Timestamp float64  `json:"timestamp"`
}

// KeyPoints handles POST /api/keypoints: bullet points from the video summary.
func (h *KeyPointsHandler) KeyPoints(w http.ResponseWriter, r *http.Request) {
	var req keyPointsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.VideoID == "" {
		jsonError(w, "", "No video ID provided", http.StatusBadRequest)
		return
	}

	videoID := transcript.ParseVideoID(req.VideoID)

	result, err := h.pipeline.KeyPoints(r.Context(), videoID)
	if err != nil {
		log.Printf("[api] keypoints %s failed: %v", videoID, err)
		jsonError(w, videoID, err.Error(), statusFor(err))
		return
	}
	points := result.Points
	if points == nil {
		points = []string{}
	}

	jsonResponse(w, keyPointsResponse{
		Status:    "success",
		VideoID:   videoID,
		KeyPoints: points,
		Timestamp: result.CreatedAt,
	}, http.StatusOK)
}

// KeyTerms handles POST /api/keypoints_wiki: top transcript terms with
// encyclopedia extracts.
func (h *KeyPointsHandler) KeyTerms(w http.ResponseWriter, r *http.Request) {
	var req keyPointsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.VideoID == "" {
		jsonError(w, "", "No video ID provided", http.StatusBadRequest)
		return
	}

	videoID := transcript.ParseVideoID(req.VideoID)
	numTerms := defaultNumTerms
	if req.NumTerms != nil {
		numTerms = *req.NumTerms
	}
	if numTerms <= 0 {
		jsonError(w, videoID, "numTerms must be positive", http.StatusBadRequest)
		return
	}

	result, err := h.pipeline.KeyTerms(r.Context(), videoID, numTerms)
	if err != nil {
		log.Printf("[api] keypoints_wiki %s failed: %v", videoID, err)
		jsonError(w, videoID, err.Error(), statusFor(err))
		return
	}

	jsonResponse(w, keyPointsResponse{
		Status:    "success",
		VideoID:   videoID,
		KeyPoints: result.Terms,
		Timestamp: result.CreatedAt,
	}, http.StatusOK)
}
