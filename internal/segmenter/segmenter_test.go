package segmenter

import (
	"strings"
	"testing"

	"github.com/video-nlp/backend/internal/transcript"
)

func TestSegmentsEmptyTranscript(t *testing.T) {
	if got := Segments(nil); got != nil {
		t.Errorf("expected no segments for empty transcript, got %v", got)
	}
}

func TestSegmentsGapRule(t *testing.T) {
	tr := transcript.Transcript{
		{Text: "intro part one", Start: 0},
		{Text: "intro part two", Start: 30},
		{Text: "second topic begins", Start: 65},
		{Text: "second topic continues", Start: 90},
	}

	segs := Segments(tr)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}

	// Fragment at 30s stays: 30 - 0 <= 60. Fragment at 65s starts a new
	// segment: 65 - 0 > 60. Fragment at 90s stays: 90 - 65 <= 60.
	if segs[0].Time != 0 {
		t.Errorf("segment 0 starts at %v, want 0", segs[0].Time)
	}
	if segs[1].Time != 65 {
		t.Errorf("segment 1 starts at %v, want 65", segs[1].Time)
	}
	if segs[0].Text != "intro part one intro part two" {
		t.Errorf("segment 0 text = %q", segs[0].Text)
	}
	if segs[1].Text != "second topic begins second topic continues" {
		t.Errorf("segment 1 text = %q", segs[1].Text)
	}
}

func TestSegmentsExactGapDoesNotSplit(t *testing.T) {
	tr := transcript.Transcript{
		{Text: "a", Start: 0},
		{Text: "b", Start: 60}, // exactly 60s: gap must be strictly greater
	}
	if segs := Segments(tr); len(segs) != 1 {
		t.Fatalf("gap of exactly 60s split the transcript into %d segments", len(segs))
	}

	tr[1].Start = 60.1
	if segs := Segments(tr); len(segs) != 2 {
		t.Fatalf("gap of 60.1s produced %d segments, want 2", len(segs))
	}
}

func TestSegmentsTimeOrderedNonOverlapping(t *testing.T) {
	tr := transcript.Transcript{
		{Text: "a", Start: 0},
		{Text: "b", Start: 70},
		{Text: "c", Start: 150},
		{Text: "d", Start: 151},
		{Text: "e", Start: 290},
	}
	segs := Segments(tr)
	for i := 1; i < len(segs); i++ {
		if segs[i].Time <= segs[i-1].Time {
			t.Errorf("segments out of order: %v then %v", segs[i-1].Time, segs[i].Time)
		}
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59.9, "0:59"}, // floor, not round
		{60, "1:00"},
		{125.0, "2:05"},
		{3605, "60:05"},
	}
	for _, c := range cases {
		if got := FormatTime(c.seconds); got != c.want {
			t.Errorf("FormatTime(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestSegmentTitles(t *testing.T) {
	short := "a short opening line"
	long := strings.Repeat("x", 45)

	tr := transcript.Transcript{
		{Text: short, Start: 0},
		{Text: long, Start: 100},
	}
	segs := Segments(tr)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}

	if segs[0].Title != "1. "+short {
		t.Errorf("short title = %q", segs[0].Title)
	}
	if want := "2. " + strings.Repeat("x", 40) + "..."; segs[1].Title != want {
		t.Errorf("long title = %q, want %q", segs[1].Title, want)
	}
}

func TestKeywords(t *testing.T) {
	t.Run("filters stopwords and short words", func(t *testing.T) {
		got := Keywords("the cat and the big elephant ran", 3)
		for _, w := range got {
			if w == "the" || w == "and" || w == "cat" || w == "big" || w == "ran" {
				t.Errorf("keyword %q should have been filtered", w)
			}
		}
		if len(got) != 1 || got[0] != "elephant" {
			t.Errorf("got %v, want [elephant]", got)
		}
	})

	t.Run("ranks by length with stable ties", func(t *testing.T) {
		got := Keywords("zebra under apple melon grape", 3)
		// All length 5, none are stopwords: encounter order wins.
		want := []string{"zebra", "under", "apple"}
		if len(got) != 3 {
			t.Fatalf("got %v", got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("keyword %d = %q, want %q (stable tie-break)", i, got[i], want[i])
			}
		}
	})

	t.Run("deduplicates", func(t *testing.T) {
		got := Keywords("engine engine engine turbine", 3)
		if len(got) != 2 {
			t.Errorf("got %v, want two distinct keywords", got)
		}
	})

	t.Run("longest first", func(t *testing.T) {
		got := Keywords("ant mosquito bird spider", 2)
		if len(got) != 2 || got[0] != "mosquito" {
			t.Errorf("got %v, want mosquito first", got)
		}
	})
}
