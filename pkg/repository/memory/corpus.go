package memory

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/medref-lab/medcorpus/pkg/domain/interfaces"
	"github.com/medref-lab/medcorpus/pkg/domain/model"
	"github.com/medref-lab/medcorpus/pkg/domain/types"
)

// Builder assembles a corpus from registered domains and publishes it only
// after validation passes. This is the initialization barrier the query
// paths rely on: there is no way to obtain a Corpus that skipped
// validation.
type Builder struct {
	domains []*model.Domain
	names   map[string]bool
}

// NewBuilder creates an empty corpus builder.
func NewBuilder() *Builder {
	return &Builder{
		names: make(map[string]bool),
	}
}

// RegisterDomain adds one domain source. Called once per domain before
// Build; registering the same domain name twice is an error.
func (b *Builder) RegisterDomain(domain *model.Domain) error {
	if domain.Name == "" {
		return goerr.New("domain name is required")
	}
	if b.names[domain.Name] {
		return goerr.Wrap(model.ErrDuplicateDomain, "cannot register domain twice",
			goerr.V(model.DomainKey, domain.Name))
	}

	b.names[domain.Name] = true
	b.domains = append(b.domains, domain)
	return nil
}

// Build validates all registered records under the given policy and returns
// the immutable corpus. The report is always returned, even on failure, so
// callers can present the complete violation list. When the report contains
// errors the corpus is withheld and ErrCorpusInvalid is returned: a corpus
// that failed validation must never reach the query engine.
func (b *Builder) Build(policy types.ValidationPolicy) (*Corpus, *model.ValidationReport, error) {
	if !policy.IsValid() {
		return nil, nil, goerr.New("invalid validation policy", goerr.V("policy", policy))
	}

	var records []*model.ContentRecord
	infos := make([]model.DomainInfo, 0, len(b.domains))
	for _, d := range b.domains {
		for _, rec := range d.Records {
			records = append(records, rec.Clone())
		}
		infos = append(infos, model.DomainInfo{
			Name:        d.Name,
			RecordCount: len(d.Records),
		})
	}

	report := model.NewCorpusValidator(policy).Validate(records)
	if report.HasErrors() {
		return nil, report, goerr.Wrap(model.ErrCorpusInvalid, "corpus not published",
			goerr.V(model.ErrorCountKey, len(report.Errors)))
	}

	byID := make(map[types.RecordID]*model.ContentRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	return &Corpus{
		snapshotID: uuid.New().String(),
		policy:     policy,
		records:    records,
		byID:       byID,
		domains:    infos,
		report:     report,
	}, report, nil
}

// Corpus is the in-memory validated record collection. All fields are
// written once in Build and never mutated afterwards, so reads need no
// locking.
type Corpus struct {
	snapshotID string
	policy     types.ValidationPolicy
	records    []*model.ContentRecord
	byID       map[types.RecordID]*model.ContentRecord
	domains    []model.DomainInfo
	report     *model.ValidationReport
}

var _ interfaces.Corpus = &Corpus{}

// Records returns every record in original corpus order. The returned
// slice is fresh on each call; the records themselves are shared and must
// be treated as read-only.
func (c *Corpus) Records() []*model.ContentRecord {
	out := make([]*model.ContentRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Record looks up a record by ID.
func (c *Corpus) Record(id types.RecordID) (*model.ContentRecord, bool) {
	rec, ok := c.byID[id]
	return rec, ok
}

// Domains describes the registered domain sources in registration order.
func (c *Corpus) Domains() []model.DomainInfo {
	out := make([]model.DomainInfo, len(c.domains))
	copy(out, c.domains)
	return out
}

// SnapshotID identifies this corpus generation.
func (c *Corpus) SnapshotID() string {
	return c.snapshotID
}

// Policy is the validation policy the corpus was built under.
func (c *Corpus) Policy() types.ValidationPolicy {
	return c.policy
}

// Report is the build-time validation report.
func (c *Corpus) Report() *model.ValidationReport {
	return c.report
}
