package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// RecordID identifies a content record. Uniqueness is corpus-wide, across
// every registered domain, not per domain file.
type RecordID string

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks if the RecordID is valid
func (x RecordID) Validate() error {
	if x == "" {
		return goerr.New("record ID cannot be empty")
	}
	if !idPattern.MatchString(string(x)) {
		return goerr.New("record ID must be lowercase alphanumeric with hyphens", goerr.V("id", x))
	}
	return nil
}

// String returns the string representation of RecordID
func (x RecordID) String() string {
	return string(x)
}
