package pipeline

import "fmt"

// Kind classifies pipeline failures so the API layer can map them to HTTP
// statuses without matching on message text.
type Kind int

const (
	// KindPipeline covers transcript retrieval and model failures.
	KindPipeline Kind = iota
	// KindInput covers invalid or missing request parameters.
	KindInput
	// KindNotFound covers requests for data that does not exist, such as a
	// segment with no transcript text.
	KindNotFound
)

// Error is a classified pipeline failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func inputError(format string, args ...interface{}) error {
	return &Error{Kind: KindInput, Err: fmt.Errorf(format, args...)}
}

func notFoundError(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Err: fmt.Errorf(format, args...)}
}

func pipelineError(err error) error {
	return &Error{Kind: KindPipeline, Err: err}
}
