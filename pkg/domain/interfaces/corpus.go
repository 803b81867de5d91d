package interfaces

import (
	"github.com/medref-lab/medcorpus/pkg/domain/model"
	"github.com/medref-lab/medcorpus/pkg/domain/types"
)

// Corpus is a validated, immutable collection of content records. A corpus
// is only ever published after its validation report passed the build
// policy, so query paths may assume every invariant holds and read without
// locks from any number of goroutines.
type Corpus interface {
	// Records returns every record in original corpus order: domains in
	// registration order, records in their authored array order.
	Records() []*model.ContentRecord

	// Record looks up a record by ID in constant time. The index is built
	// once at load time, never per call.
	Record(id types.RecordID) (*model.ContentRecord, bool)

	// Domains describes the registered domain sources.
	Domains() []model.DomainInfo

	// SnapshotID identifies this built corpus generation in logs.
	SnapshotID() string

	// Policy is the validation policy the corpus was built under.
	Policy() types.ValidationPolicy

	// Report is the validation report from build time. Under permissive
	// policy it may carry warnings; it never carries errors.
	Report() *model.ValidationReport
}
