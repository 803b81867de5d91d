package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// ClinicalRelevance grades how important a topic is in clinical practice.
type ClinicalRelevance string

const (
	ClinicalRelevanceLow      ClinicalRelevance = "low"
	ClinicalRelevanceMedium   ClinicalRelevance = "medium"
	ClinicalRelevanceHigh     ClinicalRelevance = "high"
	ClinicalRelevanceCritical ClinicalRelevance = "critical"
)

// IsValid checks if the ClinicalRelevance is one of the fixed grades
func (x ClinicalRelevance) IsValid() bool {
	switch x {
	case ClinicalRelevanceLow, ClinicalRelevanceMedium,
		ClinicalRelevanceHigh, ClinicalRelevanceCritical:
		return true
	}
	return false
}

// Validate checks if the ClinicalRelevance is valid
func (x ClinicalRelevance) Validate() error {
	if !x.IsValid() {
		return goerr.New("invalid clinical relevance", goerr.V("relevance", x))
	}
	return nil
}

// String returns the string representation of ClinicalRelevance
func (x ClinicalRelevance) String() string {
	return string(x)
}
