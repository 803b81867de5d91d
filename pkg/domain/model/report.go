package model

import (
	"github.com/medref-lab/medcorpus/pkg/domain/types"
)

// Violation is one invariant breach found by the validator.
type Violation struct {
	RecordID types.RecordID `json:"recordId"`
	Rule     types.Rule     `json:"rule"`
	Message  string         `json:"message"`
}

// ValidationReport is the complete result of validating a corpus snapshot.
// The validator never stops at the first problem: authors need the full
// list to fix content in bulk. Validation is deterministic, so two runs
// over the same snapshot produce identical reports.
type ValidationReport struct {
	Errors   []Violation `json:"errors"`
	Warnings []Violation `json:"warnings"`
}

// HasErrors reports whether the corpus must not be published.
func (x *ValidationReport) HasErrors() bool {
	return len(x.Errors) > 0
}

// AddError appends a fatal violation to the report.
func (x *ValidationReport) AddError(v Violation) {
	x.Errors = append(x.Errors, v)
}

// AddWarning appends a non-fatal violation to the report.
func (x *ValidationReport) AddWarning(v Violation) {
	x.Warnings = append(x.Warnings, v)
}

// ByRule returns the fatal violations matching the given rule.
func (x *ValidationReport) ByRule(rule types.Rule) []Violation {
	var out []Violation
	for _, v := range x.Errors {
		if v.Rule == rule {
			out = append(out, v)
		}
	}
	return out
}
