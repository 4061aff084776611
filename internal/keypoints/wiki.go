package keypoints

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

// Enricher annotates a key term with contextual information. Lookups are
// best-effort: on failure the caller falls back to the bare term.
type Enricher interface {
	Lookup(ctx context.Context, term string) (string, error)
}

// WikiClient fetches one-paragraph extracts from a MediaWiki REST API
// (page/summary endpoint).
type WikiClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewWikiClient(baseURL string) *WikiClient {
	return &WikiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type wikiSummary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// Lookup returns the first sentence of the encyclopedia extract for term.
func (c *WikiClient) Lookup(ctx context.Context, term string) (string, error) {
	reqURL := fmt.Sprintf("%s/api/rest_v1/page/summary/%s", c.baseURL, url.PathEscape(term))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wiki lookup for %q: status %d", term, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var summary wikiSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return "", fmt.Errorf("parse wiki summary for %q: %w", term, err)
	}
	// Extract can be whitespace-only, which splits into zero sentences.
	sentences := SplitSentences(summary.Extract)
	if len(sentences) == 0 {
		return "", fmt.Errorf("no extract for %q", term)
	}
	return sentences[0], nil
}

// Enrich formats each term as "term: extract", falling back to the bare term
// when the lookup fails.
func Enrich(ctx context.Context, enricher Enricher, terms []string) []string {
	points := make([]string, 0, len(terms))
	for _, term := range terms {
		if enricher == nil {
			points = append(points, term)
			continue
		}
		extract, err := enricher.Lookup(ctx, term)
		if err != nil {
			log.Printf("[keypoints] wiki lookup failed for %q: %v", term, err)
			points = append(points, term)
			continue
		}
		points = append(points, term+": "+extract)
	}
	return points
}
