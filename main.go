package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/video-nlp/backend/internal/api"
	"github.com/video-nlp/backend/internal/config"
	"github.com/video-nlp/backend/internal/keypoints"
	"github.com/video-nlp/backend/internal/pipeline"
	"github.com/video-nlp/backend/internal/summarize"
	"github.com/video-nlp/backend/internal/transcript"
)

func main() {
	// Load .env file if present (silently ignore if missing)
	godotenv.Load()

	cfg := config.Load()

	fetcher := transcript.NewYouTubeClient(cfg.TranscriptURL, cfg.TranscriptLang)
	model := summarize.NewInferenceClient(cfg.ModelURL, cfg.ModelAPIKey, cfg.ModelName)
	engine := summarize.NewEngine(model)
	wiki := keypoints.NewWikiClient(cfg.WikiURL)

	p, err := pipeline.New(fetcher, engine, wiki, cfg.CacheSize)
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}

	router := api.NewRouter(p, cfg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting server on %s", addr)
	log.Printf("Summarization model: %s via %s", cfg.ModelName, cfg.ModelURL)
	log.Printf("Transcript source: %s (lang=%s)", cfg.TranscriptURL, cfg.TranscriptLang)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		os.Exit(0)
	}()

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
