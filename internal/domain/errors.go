package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// address or job does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails validation (missing required
// field, malformed value, out-of-range paging parameter).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrPreconditionFailed is returned by the update path when the caller's
// If-Match value does not equal the current resource's ETag.
// Handlers should map this to HTTP 412 and leave the stored row untouched.
var ErrPreconditionFailed = errors.New("precondition failed")
