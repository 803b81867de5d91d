package model

// Depth bounds for the tiered level map. Level 1 is the most accessible
// explanation, level 5 the most advanced.
const (
	MinLevelDepth = 1
	MaxLevelDepth = 5
)

// Level is one depth-tier of explanation within a record.
type Level struct {
	// Level repeats the key under which this tier is stored in the parent
	// map. The two must agree; the validator rejects mismatches.
	Level int `json:"level"`

	Summary     string `json:"summary"`
	Explanation string `json:"explanation"`

	KeyTerms  []KeyTerm `json:"keyTerms,omitempty"`
	Analogies []string  `json:"analogies,omitempty"`
	Examples  []string  `json:"examples,omitempty"`

	// ClinicalNotes appears mainly at the higher depth tiers.
	ClinicalNotes string `json:"clinicalNotes,omitempty"`

	// PatientCounselingPoints carries take-home advice for lay readers,
	// typically authored at levels 1 and 2.
	PatientCounselingPoints []string `json:"patientCounselingPoints,omitempty"`
}

// KeyTerm defines one term introduced at a level. Terms are unique within
// their level but may repeat across levels and records.
type KeyTerm struct {
	Term          string `json:"term"`
	Definition    string `json:"definition"`
	Pronunciation string `json:"pronunciation,omitempty"`
}

// DefinedLevels returns the depths this record defines, in ascending order.
func (x *ContentRecord) DefinedLevels() []int {
	depths := make([]int, 0, len(x.Levels))
	for d := MinLevelDepth; d <= MaxLevelDepth; d++ {
		if _, ok := x.Levels[d]; ok {
			depths = append(depths, d)
		}
	}
	// Out-of-range keys only survive in an unvalidated record, but keep the
	// result complete rather than silently dropping them.
	for d := range x.Levels {
		if d < MinLevelDepth || d > MaxLevelDepth {
			depths = append(depths, d)
		}
	}
	return depths
}

// LevelAt returns the level to render for the requested depth. When the
// exact depth is undefined it falls back to the nearest lower defined
// level; it never falls upward, since deeper tiers assume the reader has
// absorbed the shallower ones. The second return value is false when no
// level at or below the requested depth exists.
func (x *ContentRecord) LevelAt(depth int) (*Level, bool) {
	if depth < MinLevelDepth || depth > MaxLevelDepth {
		return nil, false
	}
	for d := depth; d >= MinLevelDepth; d-- {
		if lv, ok := x.Levels[d]; ok {
			return lv, true
		}
	}
	return nil, false
}

func (x *Level) clone() *Level {
	copied := *x
	copied.KeyTerms = append([]KeyTerm(nil), x.KeyTerms...)
	copied.Analogies = cloneStrings(x.Analogies)
	copied.Examples = cloneStrings(x.Examples)
	copied.PatientCounselingPoints = cloneStrings(x.PatientCounselingPoints)
	return &copied
}
