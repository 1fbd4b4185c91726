package story

import "errors"

// Sentinel errors for the story domain. Handlers map these to HTTP
// status codes with errors.Is / errors.As.
var (
	// ErrNotFound - no story matches the requested id or slug.
	ErrNotFound = errors.New("story not found")

	// ErrSlugTaken - the storage unique index rejected a write because
	// the slug is already in use. Distinct from a generic write error
	// because the service retries the whole operation once on it (the
	// resolver's pre-check can lose a race).
	ErrSlugTaken = errors.New("slug already exists")

	// ErrSlugExhausted - the resolver gave up after its attempt cap.
	// Only reachable under pathological contention on one title.
	ErrSlugExhausted = errors.New("unable to allocate a unique slug")
)

// ValidationError is a rejected write payload. Message identifies the
// field and the violated constraint.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
