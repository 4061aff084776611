package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           int
	TranscriptURL  string
	TranscriptLang string
	ModelURL       string
	ModelAPIKey    string
	ModelName      string
	WikiURL        string
	CacheSize      int
	CORSOrigins    []string
}

func Load() *Config {
	port, _ := strconv.Atoi(getEnv("PORT", "5000"))
	cacheSize, _ := strconv.Atoi(getEnv("CACHE_SIZE", "256"))

	// CORS origins: comma-separated list or "*" (default)
	corsOrigins := []string{"*"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		corsOrigins = make([]string, 0, len(origins))
		for _, o := range origins {
			o = strings.TrimSpace(o)
			if o != "" {
				corsOrigins = append(corsOrigins, o)
			}
		}
	}

	return &Config{
		Port:           port,
		TranscriptURL:  getEnv("TRANSCRIPT_URL", "https://www.youtube.com"),
		TranscriptLang: getEnv("TRANSCRIPT_LANG", "en"),
		ModelURL:       getEnv("MODEL_URL", "https://api-inference.huggingface.co"),
		ModelAPIKey:    os.Getenv("MODEL_API_KEY"),
		ModelName:      getEnv("MODEL_NAME", "facebook/bart-large-cnn"),
		WikiURL:        getEnv("WIKI_URL", "https://en.wikipedia.org"),
		CacheSize:      cacheSize,
		CORSOrigins:    corsOrigins,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
