package segmenter

import (
	"fmt"
	"strings"

	"github.com/video-nlp/backend/internal/transcript"
)

// gapThreshold is the time distance from a segment's start beyond which a
// fragment opens a new segment.
const gapThreshold = 60.0 // seconds

const (
	titleLength = 40
	maxKeywords = 3
)

// Segment is one topical time window of a transcript.
type Segment struct {
	Time          float64  `json:"time"` // start, seconds
	FormattedTime string   `json:"formatted_time"`
	Title         string   `json:"title"`
	Keywords      []string `json:"keywords"`
	Text          string   `json:"raw_text"`
}

// Segments groups transcript fragments into contiguous, non-overlapping time
// windows. A new window starts whenever a fragment begins more than
// gapThreshold seconds after the current window's start; the last window
// extends to the end of the transcript. Deterministic for a given transcript.
func Segments(t transcript.Transcript) []Segment {
	if len(t) == 0 {
		return nil
	}

	var segments []Segment
	start := t[0].Start
	var texts []string

	flush := func() {
		raw := strings.Join(texts, " ")
		segments = append(segments, Segment{
			Time:          start,
			FormattedTime: FormatTime(start),
			Title:         makeTitle(len(segments)+1, raw),
			Keywords:      Keywords(raw, maxKeywords),
			Text:          raw,
		})
	}

	for _, f := range t {
		if f.Start-start > gapThreshold {
			flush()
			start = f.Start
			texts = texts[:0]
		}
		texts = append(texts, f.Text)
	}
	flush()

	return segments
}

// FormatTime renders elapsed seconds as "M:SS", floor-truncated.
func FormatTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// makeTitle derives a display title: 1-based ordinal, then the first
// titleLength characters of the raw text, with an ellipsis when truncated.
func makeTitle(ordinal int, raw string) string {
	runes := []rune(raw)
	if len(runes) > titleLength {
		return fmt.Sprintf("%d. %s...", ordinal, string(runes[:titleLength]))
	}
	return fmt.Sprintf("%d. %s", ordinal, raw)
}

// Keywords picks up to max representative words from raw text: lowercase,
// stopwords and words of length <= 3 removed, deduplicated, ranked by
// descending length with encounter order breaking ties.
func Keywords(raw string, max int) []string {
	seen := make(map[string]bool)
	var candidates []string

	for _, w := range strings.Fields(strings.ToLower(raw)) {
		w = strings.Trim(w, ".,!?;:\"'()[]")
		if len(w) <= 3 || stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		candidates = append(candidates, w)
	}

	// Stable selection sort keeps encounter order on equal lengths.
	keywords := make([]string, 0, max)
	used := make([]bool, len(candidates))
	for len(keywords) < max {
		best := -1
		for i, w := range candidates {
			if used[i] {
				continue
			}
			if best == -1 || len(w) > len(candidates[best]) {
				best = i
			}
		}
		if best == -1 {
			break
		}
		used[best] = true
		keywords = append(keywords, candidates[best])
	}

	return keywords
}
