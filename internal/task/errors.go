package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput          = errors.New("input text is empty")
	ErrParseFailed         = errors.New("failed to parse task")
	ErrRateLimited         = errors.New("too many requests")
	ErrUpstreamRateLimited = errors.New("task parser is busy, try again later")
	ErrUpstreamAuth        = errors.New("task parser is misconfigured")
	ErrDateNotRecognized   = errors.New("could not understand the date")
	ErrEmptyOrganization   = errors.New("organization id is required")
	ErrTaskNotFound        = errors.New("task not found")
)
