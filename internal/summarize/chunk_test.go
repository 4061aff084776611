package summarize

import (
	"fmt"
	"strings"
	"testing"
)

func TestChunksEmptyInput(t *testing.T) {
	if got := Chunks("", 100); got != nil {
		t.Errorf("expected no chunks for empty input, got %v", got)
	}
	if got := Chunks("   \n\t ", 100); got != nil {
		t.Errorf("expected no chunks for whitespace input, got %v", got)
	}
}

func TestChunksSizes(t *testing.T) {
	words := make([]string, 250)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	text := strings.Join(words, " ")

	chunks := Chunks(text, 100)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}

	// Every chunk except the last has exactly maxWords words.
	for i, c := range chunks[:len(chunks)-1] {
		if n := len(strings.Fields(c)); n != 100 {
			t.Errorf("chunk %d has %d words, want 100", i, n)
		}
	}
	if n := len(strings.Fields(chunks[2])); n != 50 {
		t.Errorf("last chunk has %d words, want 50", n)
	}
}

func TestChunksReconstruction(t *testing.T) {
	inputs := []string{
		"one two three",
		"  leading and   trailing whitespace  gets normalized ",
		strings.Repeat("word ", 1000),
	}
	for _, text := range inputs {
		for _, maxWords := range []int{1, 7, 100, 5000} {
			chunks := Chunks(text, maxWords)
			joined := strings.Join(chunks, " ")
			normalized := strings.Join(strings.Fields(text), " ")
			if joined != normalized {
				t.Errorf("maxWords=%d: reconstruction mismatch\ngot:  %q\nwant: %q", maxWords, joined, normalized)
			}
		}
	}
}

func TestChunksShortInputSingleChunk(t *testing.T) {
	chunks := Chunks("just a few words", 100)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "just a few words" {
		t.Errorf("unexpected chunk content: %q", chunks[0])
	}
}
