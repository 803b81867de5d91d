package types

// Rule identifies which corpus invariant a validation violation broke.
type Rule string

const (
	// RuleDuplicateID: a record ID appears more than once across the corpus.
	// Never downgradable: duplicates make lookups ambiguous.
	RuleDuplicateID Rule = "duplicate-id"

	// RuleSchemaViolation: a record does not match the content schema shape
	// (missing name, out-of-range level key, empty summary, and so on).
	RuleSchemaViolation Rule = "schema-violation"

	// RuleLevelKeyMismatch: the stored level field disagrees with its key in
	// the levels map. Indicates a copy-paste authoring error.
	RuleLevelKeyMismatch Rule = "level-key-mismatch"

	// RuleInvalidKeyTerm: a key term is empty or duplicated within its level.
	RuleInvalidKeyTerm Rule = "invalid-key-term"

	// RuleInvalidTags: the tags block carries an unknown relevance grade or
	// an empty classification entry.
	RuleInvalidTags Rule = "invalid-tags"

	// RuleDanglingCrossRef: a cross-reference targets an ID that does not
	// exist in the corpus. The only rule whose severity depends on the
	// validation policy.
	RuleDanglingCrossRef Rule = "dangling-crossref"
)

// String returns the string representation of Rule
func (x Rule) String() string {
	return string(x)
}
