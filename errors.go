package bstindex

import "github.com/ajwerner/bstindex/internal/abstract"

var (
	// ErrUniqueViolated is matched by the error returned from inserting an
	// existing key into a unique tree.
	ErrUniqueViolated = abstract.ErrUniqueViolated

	// ErrInvariantViolated is matched by the errors returned from CheckIsBST.
	ErrInvariantViolated = abstract.ErrInvariantViolated
)

// UniqueViolationError carries the key rejected by a unique tree.
type UniqueViolationError = abstract.UniqueViolationError
