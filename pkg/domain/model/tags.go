package model

import (
	"github.com/medref-lab/medcorpus/pkg/domain/types"
)

// Tags is the flat classification block used for filtering. It is not a
// hierarchy: systems and topics are independent facets.
type Tags struct {
	Systems           []string                `json:"systems"`
	Topics            []string                `json:"topics"`
	Keywords          []string                `json:"keywords,omitempty"`
	ClinicalRelevance types.ClinicalRelevance `json:"clinicalRelevance"`
	ExamRelevance     ExamRelevance           `json:"examRelevance"`
}

// ExamRelevance marks which exams a topic matters for. The zero value
// (false flags, no shelves) is a valid, meaningful value; none of the
// fields may be null on the wire.
type ExamRelevance struct {
	USMLE bool     `json:"usmle"`
	NBME  bool     `json:"nbme"`
	Shelf []string `json:"shelf,omitempty"`
}

// TagFilter selects records by their tag facets. Every non-empty criterion
// must be satisfied; list criteria match when the record's corresponding
// tag list contains at least one of the requested values. The zero filter
// matches every record.
type TagFilter struct {
	Systems           []string
	Topics            []string
	Keywords          []string
	ClinicalRelevance []types.ClinicalRelevance
	Shelf             []string
	RequireUSMLE      bool
	RequireNBME       bool
}

// IsEmpty reports whether the filter has no criteria at all.
func (x TagFilter) IsEmpty() bool {
	return len(x.Systems) == 0 &&
		len(x.Topics) == 0 &&
		len(x.Keywords) == 0 &&
		len(x.ClinicalRelevance) == 0 &&
		len(x.Shelf) == 0 &&
		!x.RequireUSMLE &&
		!x.RequireNBME
}

// Match reports whether the tags satisfy every criterion of the filter.
func (x Tags) Match(f TagFilter) bool {
	if len(f.Systems) > 0 && !intersects(x.Systems, f.Systems) {
		return false
	}
	if len(f.Topics) > 0 && !intersects(x.Topics, f.Topics) {
		return false
	}
	if len(f.Keywords) > 0 && !intersects(x.Keywords, f.Keywords) {
		return false
	}
	if len(f.Shelf) > 0 && !intersects(x.ExamRelevance.Shelf, f.Shelf) {
		return false
	}
	if len(f.ClinicalRelevance) > 0 {
		found := false
		for _, r := range f.ClinicalRelevance {
			if x.ClinicalRelevance == r {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.RequireUSMLE && !x.ExamRelevance.USMLE {
		return false
	}
	if f.RequireNBME && !x.ExamRelevance.NBME {
		return false
	}
	return true
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (x Tags) clone() Tags {
	copied := x
	copied.Systems = cloneStrings(x.Systems)
	copied.Topics = cloneStrings(x.Topics)
	copied.Keywords = cloneStrings(x.Keywords)
	copied.ExamRelevance.Shelf = cloneStrings(x.ExamRelevance.Shelf)
	return copied
}
