package model

import (
	"fmt"

	"github.com/medref-lab/medcorpus/pkg/domain/types"
)

// CorpusValidator checks corpus-wide invariants and reports every violation
// it finds. It runs at load time only; query paths assume a corpus that
// already passed. Validation is a pure function of the snapshot: no record
// is mutated and repeated runs yield identical reports.
type CorpusValidator struct {
	policy types.ValidationPolicy
}

// NewCorpusValidator creates a validator with the given cross-reference
// policy. Strict policy treats dangling cross-references as errors;
// permissive policy demotes them to warnings.
func NewCorpusValidator(policy types.ValidationPolicy) *CorpusValidator {
	return &CorpusValidator{policy: policy}
}

// Validate checks all records in corpus order and returns the complete
// report. Two passes: the first collects IDs and runs per-record checks,
// the second resolves cross-references against the collected ID set, so the
// cost is O(records + references).
func (v *CorpusValidator) Validate(records []*ContentRecord) *ValidationReport {
	report := &ValidationReport{}

	// Pass 1: ID collection and per-record shape checks
	seen := make(map[types.RecordID]bool, len(records))
	for _, rec := range records {
		if err := rec.ID.Validate(); err != nil {
			report.AddError(Violation{
				RecordID: rec.ID,
				Rule:     types.RuleSchemaViolation,
				Message:  fmt.Sprintf("invalid record ID: %v", err),
			})
		} else if seen[rec.ID] {
			report.AddError(Violation{
				RecordID: rec.ID,
				Rule:     types.RuleDuplicateID,
				Message:  fmt.Sprintf("record ID %q is defined more than once", rec.ID),
			})
		} else {
			seen[rec.ID] = true
		}

		v.validateShape(rec, report)
		v.validateLevels(rec, report)
		v.validateTags(rec, report)
	}

	// Pass 2: cross-reference resolution against the full ID set
	for _, rec := range records {
		for _, cr := range rec.CrossReferences {
			if cr.TargetID == "" {
				report.AddError(Violation{
					RecordID: rec.ID,
					Rule:     types.RuleSchemaViolation,
					Message:  "cross-reference has empty target ID",
				})
				continue
			}
			if err := cr.Relationship.Validate(); err != nil {
				report.AddError(Violation{
					RecordID: rec.ID,
					Rule:     types.RuleSchemaViolation,
					Message:  fmt.Sprintf("cross-reference to %q has empty relationship", cr.TargetID),
				})
			}
			if seen[cr.TargetID] {
				continue
			}

			dangling := Violation{
				RecordID: rec.ID,
				Rule:     types.RuleDanglingCrossRef,
				Message:  fmt.Sprintf("cross-reference target %q does not exist in the corpus", cr.TargetID),
			}
			if v.policy == types.PolicyPermissive {
				report.AddWarning(dangling)
			} else {
				report.AddError(dangling)
			}
		}
	}

	return report
}

func (v *CorpusValidator) validateShape(rec *ContentRecord, report *ValidationReport) {
	addError := func(format string, args ...any) {
		report.AddError(Violation{
			RecordID: rec.ID,
			Rule:     types.RuleSchemaViolation,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if rec.Name == "" {
		addError("record name is required")
	}
	if err := rec.Type.Validate(); err != nil {
		addError("unknown record type %q", rec.Type)
	}
	if err := rec.Status.Validate(); err != nil {
		addError("unknown record status %q", rec.Status)
	}
	if rec.Version < 1 {
		addError("record version must be at least 1, got %d", rec.Version)
	}
	if rec.CreatedAt.IsZero() || rec.UpdatedAt.IsZero() {
		addError("record must carry createdAt and updatedAt stamps")
	}
}

func (v *CorpusValidator) validateLevels(rec *ContentRecord, report *ValidationReport) {
	for _, depth := range rec.DefinedLevels() {
		lv := rec.Levels[depth]

		if depth < MinLevelDepth || depth > MaxLevelDepth {
			report.AddError(Violation{
				RecordID: rec.ID,
				Rule:     types.RuleSchemaViolation,
				Message:  fmt.Sprintf("level key %d is outside the valid range %d..%d", depth, MinLevelDepth, MaxLevelDepth),
			})
			continue
		}

		if lv.Level != depth {
			report.AddError(Violation{
				RecordID: rec.ID,
				Rule:     types.RuleLevelKeyMismatch,
				Message:  fmt.Sprintf("level stored under key %d declares level %d", depth, lv.Level),
			})
		}
		if lv.Summary == "" {
			report.AddError(Violation{
				RecordID: rec.ID,
				Rule:     types.RuleSchemaViolation,
				Message:  fmt.Sprintf("level %d is missing a summary", depth),
			})
		}
		if lv.Explanation == "" {
			report.AddError(Violation{
				RecordID: rec.ID,
				Rule:     types.RuleSchemaViolation,
				Message:  fmt.Sprintf("level %d is missing an explanation", depth),
			})
		}

		v.validateKeyTerms(rec, depth, lv, report)
	}
}

func (v *CorpusValidator) validateKeyTerms(rec *ContentRecord, depth int, lv *Level, report *ValidationReport) {
	seen := make(map[string]bool, len(lv.KeyTerms))
	for _, kt := range lv.KeyTerms {
		if kt.Term == "" {
			report.AddError(Violation{
				RecordID: rec.ID,
				Rule:     types.RuleInvalidKeyTerm,
				Message:  fmt.Sprintf("level %d has a key term with an empty term", depth),
			})
			continue
		}
		if seen[kt.Term] {
			report.AddError(Violation{
				RecordID: rec.ID,
				Rule:     types.RuleInvalidKeyTerm,
				Message:  fmt.Sprintf("key term %q is duplicated within level %d", kt.Term, depth),
			})
		}
		seen[kt.Term] = true
	}
}

func (v *CorpusValidator) validateTags(rec *ContentRecord, report *ValidationReport) {
	addError := func(format string, args ...any) {
		report.AddError(Violation{
			RecordID: rec.ID,
			Rule:     types.RuleInvalidTags,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if err := rec.Tags.ClinicalRelevance.Validate(); err != nil {
		addError("unknown clinical relevance %q", rec.Tags.ClinicalRelevance)
	}
	for _, s := range rec.Tags.Systems {
		if s == "" {
			addError("tags.systems contains an empty entry")
		}
	}
	for _, tp := range rec.Tags.Topics {
		if tp == "" {
			addError("tags.topics contains an empty entry")
		}
	}
	for _, sh := range rec.Tags.ExamRelevance.Shelf {
		if sh == "" {
			addError("tags.examRelevance.shelf contains an empty entry")
		}
	}
}
