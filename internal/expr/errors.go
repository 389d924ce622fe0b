package expr

import "errors"

var (
	// ErrEval is returned when an expression fails to compile or run.
	ErrEval = errors.New("expression evaluation failed")

	// ErrTimeout is returned when evaluation exceeds its deadline.
	ErrTimeout = errors.New("expression evaluation timed out")

	// ErrUnsupportedResult is returned for values that have no text form.
	ErrUnsupportedResult = errors.New("unsupported expression result")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("evaluator is closed")
)
