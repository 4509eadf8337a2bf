package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C) or
	// declined the final submit confirmation.
	ErrAborted = errors.New("prompt: aborted")
)
