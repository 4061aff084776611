package summarize

import "context"

// Model is an abstractive seq2seq summarizer. Length bounds are passed
// through to the backing model verbatim, in whatever unit it uses.
type Model interface {
	Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error)
	// Name returns the model/engine name for logging.
	Name() string
}
