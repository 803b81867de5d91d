package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/medref-lab/medcorpus/pkg/domain/interfaces"
	"github.com/medref-lab/medcorpus/pkg/domain/model"
	"github.com/medref-lab/medcorpus/pkg/domain/types"
)

// QueryUseCase exposes the read operations of the content store. All
// operations are pure reads over immutable data and safe for concurrent
// callers; none of them validate — that already happened before the corpus
// was published.
type QueryUseCase struct {
	corpus interfaces.Corpus
}

// NewQueryUseCase creates a QueryUseCase over a validated corpus.
func NewQueryUseCase(corpus interfaces.Corpus) *QueryUseCase {
	return &QueryUseCase{corpus: corpus}
}

// ResolvedReference pairs one outgoing cross-reference edge with its
// target. Target is nil when the edge is unresolved, which can only happen
// in a corpus built under permissive policy.
type ResolvedReference struct {
	Edge   model.CrossReference
	Target *model.ContentRecord
}

// Resolved reports whether the edge points at a record in the corpus.
func (x ResolvedReference) Resolved() bool {
	return x.Target != nil
}

// FindByID returns the record with the given ID. It is total over all
// string inputs: any miss, including the empty string, yields
// ErrRecordNotFound rather than a panic.
func (uc *QueryUseCase) FindByID(ctx context.Context, id types.RecordID) (*model.ContentRecord, error) {
	rec, ok := uc.corpus.Record(id)
	if !ok {
		return nil, goerr.Wrap(ErrRecordNotFound, "no record with given ID",
			goerr.V(RecordIDKey, id))
	}
	return rec, nil
}

// FilterByTag returns the records whose tags satisfy the filter, preserving
// original corpus order. The stable ordering is a deliberate simplicity
// contract: results are not ranked. An empty result is an empty slice,
// never nil.
func (uc *QueryUseCase) FilterByTag(ctx context.Context, filter model.TagFilter) []*model.ContentRecord {
	matched := []*model.ContentRecord{}
	for _, rec := range uc.corpus.Records() {
		if rec.Tags.Match(filter) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Search returns the records for which any scanned field (see
// ContentRecord.SearchFields) contains the query as a case-insensitive
// substring. Multi-word queries are treated as a single substring, not as
// AND/OR terms, and results keep original corpus order — both are
// documented contracts, not omissions. The empty query is a substring of
// every field and therefore matches every record.
func (uc *QueryUseCase) Search(ctx context.Context, query string) []*model.ContentRecord {
	q := strings.ToLower(query)

	matched := []*model.ContentRecord{}
	for _, rec := range uc.corpus.Records() {
		if recordMatches(rec, q) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func recordMatches(rec *model.ContentRecord, loweredQuery string) bool {
	for _, field := range rec.SearchFields() {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}

// ResolveCrossReferences returns every outgoing edge of the given record
// paired with its target. Unresolved targets are reported in the result,
// never as an error: consumers render them as disabled links.
func (uc *QueryUseCase) ResolveCrossReferences(ctx context.Context, id types.RecordID) ([]ResolvedReference, error) {
	rec, ok := uc.corpus.Record(id)
	if !ok {
		return nil, goerr.Wrap(ErrRecordNotFound, "no record with given ID",
			goerr.V(RecordIDKey, id))
	}

	resolved := make([]ResolvedReference, 0, len(rec.CrossReferences))
	for _, edge := range rec.CrossReferences {
		target, _ := uc.corpus.Record(edge.TargetID)
		resolved = append(resolved, ResolvedReference{
			Edge:   edge,
			Target: target,
		})
	}
	return resolved, nil
}

// SelectLevel returns the level to render for the requested depth,
// applying the downward fallback: the exact level when defined, otherwise
// the nearest lower one. It never selects a level above the request.
func (uc *QueryUseCase) SelectLevel(ctx context.Context, id types.RecordID, depth int) (*model.Level, error) {
	if depth < model.MinLevelDepth || depth > model.MaxLevelDepth {
		return nil, goerr.Wrap(ErrInvalidDepth, "depth must be between 1 and 5",
			goerr.V(DepthKey, depth))
	}

	rec, ok := uc.corpus.Record(id)
	if !ok {
		return nil, goerr.Wrap(ErrRecordNotFound, "no record with given ID",
			goerr.V(RecordIDKey, id))
	}

	lv, ok := rec.LevelAt(depth)
	if !ok {
		return nil, goerr.Wrap(ErrNoLevelAvailable, "record defines no level at or below depth",
			goerr.V(RecordIDKey, id),
			goerr.V(DepthKey, depth))
	}
	return lv, nil
}
