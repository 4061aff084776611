package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// YouTubeClient fetches captions from YouTube's timedtext endpoint (json3
// format). The base URL is configurable so tests and proxy deployments can
// point it elsewhere.
type YouTubeClient struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// NewYouTubeClient creates a timedtext client. language is the preferred
// caption track, e.g. "en".
func NewYouTubeClient(baseURL, language string) *YouTubeClient {
	return &YouTubeClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// timedTextResponse mirrors the json3 timedtext payload. Events without segs
// (window styling/positioning events) carry no caption text.
type timedTextResponse struct {
	Events []struct {
		StartMs    int64 `json:"tStartMs"`
		DurationMs int64 `json:"dDurationMs"`
		Segs       []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// Fetch retrieves the caption track for videoID. Every failure mode maps to
// ErrNoTranscript; the underlying cause is logged, not propagated.
func (c *YouTubeClient) Fetch(ctx context.Context, videoID string) (Transcript, error) {
	reqURL := fmt.Sprintf("%s/api/timedtext?v=%s&lang=%s&fmt=json3",
		c.baseURL, url.QueryEscape(videoID), url.QueryEscape(c.language))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		log.Printf("[transcript] build request for %s: %v", videoID, err)
		return nil, ErrNoTranscript
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[transcript] fetch %s: %v", videoID, err)
		return nil, ErrNoTranscript
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[transcript] read response for %s: %v", videoID, err)
		return nil, ErrNoTranscript
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[transcript] timedtext returned status %d for %s", resp.StatusCode, videoID)
		return nil, ErrNoTranscript
	}

	// YouTube answers 200 with an empty body when the track does not exist.
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, ErrNoTranscript
	}

	var tt timedTextResponse
	if err := json.Unmarshal(body, &tt); err != nil {
		log.Printf("[transcript] parse timedtext for %s: %v", videoID, err)
		return nil, ErrNoTranscript
	}

	var fragments Transcript
	for _, ev := range tt.Events {
		var sb strings.Builder
		for _, seg := range ev.Segs {
			sb.WriteString(seg.UTF8)
		}
		text := strings.Join(strings.Fields(sb.String()), " ")
		if text == "" {
			continue
		}
		fragments = append(fragments, Fragment{
			Text:     text,
			Start:    float64(ev.StartMs) / 1000,
			Duration: float64(ev.DurationMs) / 1000,
		})
	}

	if len(fragments) == 0 {
		return nil, ErrNoTranscript
	}

	return fragments, nil
}
