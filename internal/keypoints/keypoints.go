// Package keypoints turns summaries and transcripts into bullet-point key
// sentences and ranked key terms, optionally enriched with encyclopedia
// extracts.
package keypoints

import (
	"sort"
	"strings"

	"github.com/video-nlp/backend/internal/segmenter"
)

// minSentenceLength filters out fragments too short to stand as key points.
const minSentenceLength = 20

// FromSummary splits a summary into sentences and keeps the ones substantial
// enough to serve as bullet points.
func FromSummary(summary string) []string {
	var points []string
	for _, s := range SplitSentences(summary) {
		s = strings.TrimSpace(s)
		if len(s) > minSentenceLength {
			points = append(points, s)
		}
	}
	return points
}

// SplitSentences splits text on sentence-ending punctuation followed by
// whitespace, keeping the punctuation with the sentence.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			if i+1 == len(text) || text[i+1] == ' ' || text[i+1] == '\t' || text[i+1] == '\n' {
				if s := strings.TrimSpace(text[start : i+1]); s != "" {
					sentences = append(sentences, s)
				}
				start = i + 1
			}
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// Terms extracts up to max key terms from text, ranked by occurrence count.
// Stopwords and words of length <= 3 are ignored; ties keep first-seen order.
// max values below 1 yield no terms.
func Terms(text string, max int) []string {
	if max <= 0 {
		return nil
	}
	counts := make(map[string]int)
	var order []string

	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,!?;:\"'()[]")
		if len(w) <= 3 || segmenter.Stopword(w) {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	// order is in first-seen order; a stable sort keeps that for ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > max {
		order = order[:max]
	}
	return order
}
