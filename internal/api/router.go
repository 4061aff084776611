package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/video-nlp/backend/internal/api/handlers"
	"github.com/video-nlp/backend/internal/api/middleware"
	"github.com/video-nlp/backend/internal/config"
	"github.com/video-nlp/backend/internal/pipeline"
)

// maxBodyBytes caps JSON request bodies; every payload here is a video id
// plus a couple of numeric knobs.
const maxBodyBytes = 64 << 10

func NewRouter(p *pipeline.Pipeline, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(middleware.CORSHandler(cfg.CORSOrigins)))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Handlers
	summaryHandler := handlers.NewSummaryHandler(p)
	timestampsHandler := handlers.NewTimestampsHandler(p)
	segmentHandler := handlers.NewSegmentHandler(p)
	keyPointsHandler := handlers.NewKeyPointsHandler(p)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/summarize", summaryHandler.Summarize)
		r.Post("/timestamps", timestampsHandler.Timestamps)
		r.Post("/segment_summary", segmentHandler.SegmentSummary)
		r.Post("/keypoints", keyPointsHandler.KeyPoints)
		r.Post("/keypoints_wiki", keyPointsHandler.KeyTerms)
		r.Post("/sentiment", handlers.Sentiment)
	})

	return r
}
