package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// RecordStatus represents the editorial lifecycle state of a record.
// Records are authored out-of-band; the store only checks the stamp.
type RecordStatus string

const (
	RecordStatusDraft     RecordStatus = "draft"
	RecordStatusPublished RecordStatus = "published"
	RecordStatusArchived  RecordStatus = "archived"
)

// IsValid checks if the RecordStatus is a known lifecycle state
func (x RecordStatus) IsValid() bool {
	switch x {
	case RecordStatusDraft, RecordStatusPublished, RecordStatusArchived:
		return true
	}
	return false
}

// Validate checks if the RecordStatus is valid
func (x RecordStatus) Validate() error {
	if !x.IsValid() {
		return goerr.New("invalid record status", goerr.V("status", x))
	}
	return nil
}

// String returns the string representation of RecordStatus
func (x RecordStatus) String() string {
	return string(x)
}
