package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Relationship classifies a cross-reference edge. It is an open enum: the
// constants below cover the relationships used by the bundled corpora, but
// authors may introduce new values without a schema change.
type Relationship string

const (
	RelationshipParent  Relationship = "parent"
	RelationshipChild   Relationship = "child"
	RelationshipSibling Relationship = "sibling"
	RelationshipRelated Relationship = "related"
	RelationshipSeeAlso Relationship = "see-also"
)

// Validate checks if the Relationship is valid. Unknown values are allowed,
// only the empty string is rejected.
func (x Relationship) Validate() error {
	if x == "" {
		return goerr.New("relationship cannot be empty")
	}
	return nil
}

// String returns the string representation of Relationship
func (x Relationship) String() string {
	return string(x)
}
