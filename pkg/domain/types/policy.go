package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// ValidationPolicy controls how dangling cross-references are classified.
// Under strict policy they are errors and the corpus fails closed at load
// time; under permissive policy they are demoted to warnings so content can
// reference not-yet-written topics during incremental authoring.
type ValidationPolicy string

const (
	PolicyStrict     ValidationPolicy = "strict"
	PolicyPermissive ValidationPolicy = "permissive"
)

// IsValid checks if the ValidationPolicy is valid
func (x ValidationPolicy) IsValid() bool {
	switch x {
	case PolicyStrict, PolicyPermissive:
		return true
	}
	return false
}

// String returns the string representation of ValidationPolicy
func (x ValidationPolicy) String() string {
	return string(x)
}

// ParseValidationPolicy converts a string into a ValidationPolicy
func ParseValidationPolicy(s string) (ValidationPolicy, error) {
	p := ValidationPolicy(s)
	if !p.IsValid() {
		return "", goerr.New("invalid validation policy", goerr.V("policy", s))
	}
	return p, nil
}
