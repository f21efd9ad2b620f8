package app

import "errors"

// Sentinel kinds for session errors.
var (
	// ErrInterrupted is returned when the lesson context is cancelled.
	ErrInterrupted = errors.New("lesson interrupted")
	// ErrInputClosed is returned when the answer stream ends.
	ErrInputClosed = errors.New("input closed")

	// errAborted marks an exercise abandoned by the learner; the lesson continues.
	errAborted = errors.New("exercise aborted")
	// errOutsidePrompt marks an interrupt received while no answer was awaited.
	errOutsidePrompt = errors.New("interrupt outside an answer prompt")
)
