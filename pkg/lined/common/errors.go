package common

import "errors"

// Standard errors for use with errors.Is.
var (
	ErrPoolClosed = errors.New("worker pool closed")
	ErrQueueFull  = errors.New("task queue full")
)
