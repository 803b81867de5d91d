package model

import (
	"time"

	"github.com/medref-lab/medcorpus/pkg/domain/types"
)

// ContentRecord is the unit of knowledge: one topic's full tiered content
// entry. Records are authored out-of-band and loaded as static domain
// arrays; once a corpus is built the record is never mutated. The field set
// is the wire contract for any system exchanging records with this store
// (JSON-serializable, level keys are integers 1..5, timestamps RFC3339).
type ContentRecord struct {
	ID             types.RecordID   `json:"id"`
	Type           types.RecordType `json:"type"`
	Name           string           `json:"name"`
	AlternateNames []string         `json:"alternateNames,omitempty"`

	// Levels maps depth (1..5) to that tier of explanation. A record may
	// legitimately define only a subset while higher-depth content is
	// being written; contiguity is not required.
	Levels map[int]*Level `json:"levels"`

	Media           []Media          `json:"media,omitempty"`
	Citations       []Citation       `json:"citations,omitempty"`
	CrossReferences []CrossReference `json:"crossReferences,omitempty"`
	Tags            Tags             `json:"tags"`

	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Version   int                `json:"version"`
	Status    types.RecordStatus `json:"status"`
}

// Media references an external diagram, animation, or similar asset.
// The store records the reference only; it never resolves the file or
// checks that it exists.
type Media struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Filename    string `json:"filename"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Citation is a bibliographic entry. The store applies no deduplication or
// formatting; bibliography export belongs to consumers.
type Citation struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Authors []string `json:"authors,omitempty"`
	Source  string   `json:"source,omitempty"`
	URL     string   `json:"url,omitempty"`
	Chapter string   `json:"chapter,omitempty"`
}

// CrossReference is a directed edge from the owning record to another
// record by ID.
type CrossReference struct {
	TargetID     types.RecordID     `json:"targetId"`
	TargetType   types.RecordType   `json:"targetType"`
	Relationship types.Relationship `json:"relationship"`
	Label        string             `json:"label"`
}

// SearchFields returns the fixed set of fields scanned by substring search:
// name, alternate names, and every defined level's summary, explanation,
// clinical notes, and key terms (term and definition). Changing this set
// changes the observable search contract, so additions go here and nowhere
// else.
func (x *ContentRecord) SearchFields() []string {
	fields := make([]string, 0, 2+len(x.AlternateNames)+len(x.Levels)*4)
	fields = append(fields, x.Name)
	fields = append(fields, x.AlternateNames...)

	for _, depth := range x.DefinedLevels() {
		lv := x.Levels[depth]
		fields = append(fields, lv.Summary, lv.Explanation)
		if lv.ClinicalNotes != "" {
			fields = append(fields, lv.ClinicalNotes)
		}
		for _, kt := range lv.KeyTerms {
			fields = append(fields, kt.Term, kt.Definition)
		}
	}

	return fields
}

// Clone returns a deep copy of the record. Builders clone registered
// records once so the published corpus cannot alias caller-held slices.
func (x *ContentRecord) Clone() *ContentRecord {
	copied := *x

	copied.AlternateNames = cloneStrings(x.AlternateNames)
	copied.Media = append([]Media(nil), x.Media...)
	copied.CrossReferences = append([]CrossReference(nil), x.CrossReferences...)
	copied.Tags = x.Tags.clone()

	if x.Levels != nil {
		copied.Levels = make(map[int]*Level, len(x.Levels))
		for depth, lv := range x.Levels {
			copied.Levels[depth] = lv.clone()
		}
	}

	if x.Citations != nil {
		copied.Citations = make([]Citation, len(x.Citations))
		for i, c := range x.Citations {
			copied.Citations[i] = c
			copied.Citations[i].Authors = cloneStrings(c.Authors)
		}
	}

	return &copied
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	return append([]string(nil), src...)
}
