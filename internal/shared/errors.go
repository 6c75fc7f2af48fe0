package shared

import "errors"

var (
	// ErrInvariantViolation marks broken internal consistency. A round that hits it is aborted.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrIllegalMove marks a collaborator answer outside of what it was offered.
	ErrIllegalMove = errors.New("illegal move")
)
