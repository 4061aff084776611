package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// InferenceClient talks to a HuggingFace-style summarization inference server
// (text-generation endpoint for seq2seq models such as bart-large-cnn).
type InferenceClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewInferenceClient creates a client for the inference server. apiKey may be
// empty for unauthenticated local servers.
func NewInferenceClient(baseURL, apiKey, model string) *InferenceClient {
	return &InferenceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 10 * time.Minute, // model inference on long chunks can be slow
		},
	}
}

func (c *InferenceClient) Name() string {
	return c.model
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MinLength  int  `json:"min_length"`
	MaxLength  int  `json:"max_length"`
	DoSample   bool `json:"do_sample"`
	Truncation bool `json:"truncation"`
}

type inferenceResult struct {
	SummaryText string `json:"summary_text"`
}

// Summarize sends one summarization request and returns the summary text.
func (c *InferenceClient) Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error) {
	reqBody := inferenceRequest{
		Inputs: text,
		Parameters: inferenceParameters{
			MinLength:  minLength,
			MaxLength:  maxLength,
			DoSample:   false,
			Truncation: true,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference server error (status %d): %s", resp.StatusCode, string(body))
	}

	var results []inferenceResult
	if err := json.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(results) == 0 || results[0].SummaryText == "" {
		return "", fmt.Errorf("empty response from inference server")
	}

	log.Printf("[summarize] model=%s in=%d words out=%d words",
		c.model, len(strings.Fields(text)), len(strings.Fields(results[0].SummaryText)))

	return results[0].SummaryText, nil
}
