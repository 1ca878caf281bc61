package service

import "errors"

var (
	// ErrInvalidTeil rejects section indicators other than 1 or 2.
	ErrInvalidTeil = errors.New("invalid 'teil' (must be 1 or 2)")
	// ErrTaskNotFound marks an evaluation against a task id that does not exist.
	ErrTaskNotFound = errors.New("task not found")
)
