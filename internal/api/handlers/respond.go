package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/video-nlp/backend/internal/pipeline"
)

func jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// errorEnvelope is the uniform error shape every endpoint returns.
type errorEnvelope struct {
	Status    string `json:"status"`
	VideoID   string `json:"videoId,omitempty"`
	SegmentID *int   `json:"segmentId,omitempty"`
	Error     string `json:"error"`
}

func jsonError(w http.ResponseWriter, videoID, msg string, status int) {
	jsonResponse(w, errorEnvelope{Status: "error", VideoID: videoID, Error: msg}, status)
}

func jsonSegmentError(w http.ResponseWriter, videoID string, segmentID int, msg string, status int) {
	jsonResponse(w, errorEnvelope{Status: "error", VideoID: videoID, SegmentID: &segmentID, Error: msg}, status)
}

// statusFor maps classified pipeline errors to HTTP statuses. Anything
// unclassified is a pipeline failure.
func statusFor(err error) int {
	var perr *pipeline.Error
	if errors.As(err, &perr) {
		switch perr.Kind {
		case pipeline.KindInput:
			return http.StatusBadRequest
		case pipeline.KindNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		jsonError(w, "", "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
