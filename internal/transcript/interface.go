package transcript

import (
	"context"
	"errors"
)

// ErrNoTranscript is returned for any retrieval failure: network errors,
// disabled captions, unknown video ids. Callers treat transcript absence as
// an expected, reportable condition rather than a fatal one.
var ErrNoTranscript = errors.New("no transcript available for this video")

// Fetcher retrieves the caption transcript for a video.
type Fetcher interface {
	// Fetch returns the transcript fragments in platform order.
	// The video id is passed through opaquely, without format validation.
	Fetch(ctx context.Context, videoID string) (Transcript, error)
}
