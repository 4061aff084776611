package handlers

import "net/http"

// Health handles GET /api/health.
func Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{
		"status":  "ok",
		"message": "API is running",
	}, http.StatusOK)
}

// Sentiment handles POST /api/sentiment. Placeholder until the analysis
// backend exists.
func Sentiment(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{
		"status":  "success",
		"message": "Sentiment analysis feature coming soon",
	}, http.StatusOK)
}
