package worker

import "errors"

var (
	ErrNotFound       = errors.New("worker not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrInactiveWorker = errors.New("worker account is deactivated")
)
