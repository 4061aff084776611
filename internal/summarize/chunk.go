package summarize

import "strings"

// Chunks splits text into word-bounded pieces of at most maxWords words each.
// Words are never split or reordered and none are dropped; the final chunk
// may be shorter. Empty or whitespace-only input yields no chunks.
func Chunks(text string, maxWords int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	for start := 0; start < len(words); start += maxWords {
		end := start + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
