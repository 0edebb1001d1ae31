package ledger

import "errors"

// Error taxonomy shared by actions, services, and handlers. Callers
// classify with errors.Is; wrapping with fmt.Errorf("...: %w", Err...)
// preserves the class.
var (
	// ErrNotFound marks a referenced entity that does not exist or is
	// not owned by the caller.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed input: non-positive magnitude,
	// missing required field, invalid enum value.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a uniqueness rejection, e.g. a duplicate
	// budget for the same category and period.
	ErrConflict = errors.New("conflict")
)
