package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// RecordType is an informational tag distinguishing record kinds. The core
// never branches on it; any type-specific rendering belongs to consumers.
type RecordType string

const (
	RecordTypeConcept    RecordType = "concept"
	RecordTypeCondition  RecordType = "condition"
	RecordTypeTopic      RecordType = "topic"
	RecordTypeProcedure  RecordType = "procedure"
	RecordTypeAssessment RecordType = "assessment"
)

// IsValid checks if the RecordType is one of the known kinds
func (x RecordType) IsValid() bool {
	switch x {
	case RecordTypeConcept, RecordTypeCondition, RecordTypeTopic,
		RecordTypeProcedure, RecordTypeAssessment:
		return true
	}
	return false
}

// Validate checks if the RecordType is valid
func (x RecordType) Validate() error {
	if !x.IsValid() {
		return goerr.New("invalid record type", goerr.V("type", x))
	}
	return nil
}

// String returns the string representation of RecordType
func (x RecordType) String() string {
	return string(x)
}
