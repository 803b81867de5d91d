package usecase

import "github.com/m-mizutani/goerr/v2"

// Query result errors. These are expected, non-exceptional outcomes: a
// missing ID or an undefined depth is part of normal incremental authoring,
// so they are sentinel values for callers to branch on, never panics.
var (
	// ErrRecordNotFound is returned by FindByID when the ID does not exist.
	// Distinct from a dangling cross-reference, which is a corpus-wide
	// consistency problem caught at validation time.
	ErrRecordNotFound = goerr.New("record not found")

	// ErrNoLevelAvailable is returned when a record defines no level at or
	// below the requested depth. Callers render an empty state, they do
	// not crash.
	ErrNoLevelAvailable = goerr.New("no level available at or below requested depth")

	// ErrInvalidDepth is returned for depth requests outside 1..5.
	ErrInvalidDepth = goerr.New("requested depth is out of range")
)

// Context keys for error values
const (
	RecordIDKey = "record_id"
	DepthKey    = "depth"
)
