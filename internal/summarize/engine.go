package summarize

import (
	"context"
	"log"
	"strings"
)

const (
	// chunkWords is the most words one model request carries.
	chunkWords = 1000
	// minChunkWords is the viability threshold: chunks below it carry too
	// little content to usefully summarize and are skipped.
	minChunkWords = 50
	// metaThresholdWords triggers the meta-summarization pass when the
	// concatenated chunk summaries exceed it.
	metaThresholdWords = 200
)

// TooShortSentinel is returned when no chunk of the input is long enough to
// summarize. It is a valid result, not an error.
const TooShortSentinel = "Text is too short to summarize."

// Engine produces abstractive summaries of arbitrarily long text by chunking
// it to fit the model's input window, summarizing each chunk, and running one
// meta pass over the concatenation when it is long enough to lose coherence.
type Engine struct {
	model Model
}

func NewEngine(model Model) *Engine {
	return &Engine{model: model}
}

// Summarize generates a summary of text within the given length bounds.
// Individual chunk failures are logged and skipped; the call fails only if
// the model cannot produce a single chunk summary from viable input.
func (e *Engine) Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error) {
	chunks := Chunks(text, chunkWords)
	if len(chunks) == 0 {
		return TooShortSentinel, nil
	}

	var summaries []string
	var lastErr error
	viable := 0

	for i, chunk := range chunks {
		if len(strings.Fields(chunk)) < minChunkWords {
			continue
		}
		viable++

		log.Printf("[summarize] chunk %d/%d (model=%s)", i+1, len(chunks), e.model.Name())

		summary, err := e.model.Summarize(ctx, chunk, minLength, maxLength)
		if err != nil {
			// One failed chunk must not abort the rest.
			log.Printf("[summarize] chunk %d/%d failed: %v", i+1, len(chunks), err)
			lastErr = err
			continue
		}
		summaries = append(summaries, summary)
	}

	if viable == 0 {
		return TooShortSentinel, nil
	}
	if len(summaries) == 0 {
		return "", lastErr
	}

	combined := strings.Join(summaries, " ")
	combinedWords := len(strings.Fields(combined))

	if len(summaries) > 1 && combinedWords > metaThresholdWords {
		log.Printf("[summarize] meta pass over %d chunk summaries (%d words)", len(summaries), combinedWords)

		// Enlarge the max bound so the meta pass does not truncate a
		// combined summary that is already longer than maxLength.
		metaMax := maxLength
		if half := combinedWords / 2; half > metaMax {
			metaMax = half
		}

		meta, err := e.model.Summarize(ctx, combined, minLength, metaMax)
		if err != nil {
			log.Printf("[summarize] meta pass failed, returning combined summary: %v", err)
			return combined, nil
		}
		return meta, nil
	}

	return combined, nil
}
