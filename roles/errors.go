package roles

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a user has no stored custom role record.
	ErrNotFound = errors.New("roles: no custom role record")

	// ErrDuplicateRole is returned by Create when the user already owns a role.
	ErrDuplicateRole = errors.New("roles: user already has a custom role")

	// ErrRoleNotFound is returned when a stored role ID is missing from the
	// live guild hierarchy. The record referencing it is stale.
	ErrRoleNotFound = errors.New("roles: role missing from guild hierarchy")

	// ErrPositionDenied is returned when Discord rejects a role reorder,
	// usually because the role sits above the bot's own highest role.
	ErrPositionDenied = errors.New("roles: role position change denied")

	// ErrPlatformTimeout is returned when a Discord API call exceeds the
	// gateway's per-call deadline.
	ErrPlatformTimeout = errors.New("roles: discord request timed out")
)

// ValidationError reports rejected user input. It is always returned before
// any Discord API call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("roles: invalid %s: %s", e.Field, e.Reason)
}

// StorageError reports a persistence failure. Partial is set when the failure
// happened after a Discord mutation already succeeded, meaning the store and
// the guild have diverged until reconciliation runs.
type StorageError struct {
	Op      string
	Partial bool
	Err     error
}

func (e *StorageError) Error() string {
	if e.Partial {
		return fmt.Sprintf("roles: %s partially applied: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("roles: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
