package transcript

import "strings"

// Fragment is a single timed caption line as returned by the platform.
type Fragment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`    // seconds
	Duration float64 `json:"duration"` // seconds
}

// Transcript is an ordered sequence of fragments (ascending start time).
type Transcript []Fragment

// Text joins all fragment texts with single spaces, preserving order.
func (t Transcript) Text() string {
	parts := make([]string, 0, len(t))
	for _, f := range t {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " ")
}
