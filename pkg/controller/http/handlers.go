package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/medref-lab/medcorpus/pkg/domain/model"
	"github.com/medref-lab/medcorpus/pkg/domain/types"
	"github.com/medref-lab/medcorpus/pkg/usecase"
	"github.com/medref-lab/medcorpus/pkg/utils/errutil"
)

// recordSummary is the listing shape: everything a browsing client needs
// to render an index entry without pulling full level content.
type recordSummary struct {
	ID     types.RecordID     `json:"id"`
	Type   types.RecordType   `json:"type"`
	Name   string             `json:"name"`
	Status types.RecordStatus `json:"status"`
	Tags   model.Tags         `json:"tags"`
	Levels []int              `json:"definedLevels"`
}

func summarize(rec *model.ContentRecord) recordSummary {
	return recordSummary{
		ID:     rec.ID,
		Type:   rec.Type,
		Name:   rec.Name,
		Status: rec.Status,
		Tags:   rec.Tags,
		Levels: rec.DefinedLevels(),
	}
}

func summarizeAll(records []*model.ContentRecord) []recordSummary {
	summaries := make([]recordSummary, len(records))
	for i, rec := range records {
		summaries[i] = summarize(rec)
	}
	return summaries
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data) //nolint:errcheck // header already committed
}

// statusFor maps query errors to HTTP status codes. Misses are ordinary
// 404s; only a malformed request earns a 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidDepth):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrRecordNotFound),
		errors.Is(err, usecase.ErrNoLevelAvailable):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]any{
		"status":      "ok",
		"version":     s.version,
		"snapshotId":  s.corpus.SnapshotID(),
		"policy":      s.corpus.Policy(),
		"recordCount": len(s.corpus.Records()),
	})
}

func (s *Server) domainsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]any{
		"domains": s.corpus.Domains(),
	})
}

// tagFilterFromQuery builds a TagFilter from repeatable query parameters.
// Unknown parameters are ignored rather than rejected so that clients can
// evolve ahead of the server.
func tagFilterFromQuery(r *http.Request) (model.TagFilter, error) {
	q := r.URL.Query()

	filter := model.TagFilter{
		Systems:  q["system"],
		Topics:   q["topic"],
		Keywords: q["keyword"],
		Shelf:    q["shelf"],
	}
	for _, raw := range q["relevance"] {
		rel := types.ClinicalRelevance(raw)
		if err := rel.Validate(); err != nil {
			return model.TagFilter{}, goerr.Wrap(err, "invalid relevance parameter")
		}
		filter.ClinicalRelevance = append(filter.ClinicalRelevance, rel)
	}
	if q.Get("usmle") == "true" {
		filter.RequireUSMLE = true
	}
	if q.Get("nbme") == "true" {
		filter.RequireNBME = true
	}
	return filter, nil
}

func (s *Server) listRecordsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := tagFilterFromQuery(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	records := s.uc.Query.FilterByTag(r.Context(), filter)
	total := len(records)

	offset, limit, err := pagination(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	records = paginate(records, offset, limit)

	writeJSON(w, r, map[string]any{
		"records": summarizeAll(records),
		"total":   total,
	})
}

func (s *Server) getRecordHandler(w http.ResponseWriter, r *http.Request) {
	id := types.RecordID(chi.URLParam(r, "recordID"))

	rec, err := s.uc.Query.FindByID(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}
	writeJSON(w, r, rec)
}

func (s *Server) getLevelHandler(w http.ResponseWriter, r *http.Request) {
	id := types.RecordID(chi.URLParam(r, "recordID"))

	depth, err := strconv.Atoi(chi.URLParam(r, "depth"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "depth must be an integer"), http.StatusBadRequest)
		return
	}

	level, err := s.uc.Query.SelectLevel(r.Context(), id, depth)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}

	writeJSON(w, r, map[string]any{
		"recordId":       id,
		"requestedLevel": depth,
		"level":          level,
	})
}

func (s *Server) getCrossRefsHandler(w http.ResponseWriter, r *http.Request) {
	id := types.RecordID(chi.URLParam(r, "recordID"))

	refs, err := s.uc.Query.ResolveCrossReferences(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}

	type referenceResponse struct {
		TargetID     types.RecordID     `json:"targetId"`
		TargetType   types.RecordType   `json:"targetType"`
		Relationship types.Relationship `json:"relationship"`
		Label        string             `json:"label"`
		Resolved     bool               `json:"resolved"`
		TargetName   string             `json:"targetName,omitempty"`
	}

	resp := make([]referenceResponse, len(refs))
	for i, ref := range refs {
		resp[i] = referenceResponse{
			TargetID:     ref.Edge.TargetID,
			TargetType:   ref.Edge.TargetType,
			Relationship: ref.Edge.Relationship,
			Label:        ref.Edge.Label,
			Resolved:     ref.Resolved(),
		}
		if ref.Resolved() {
			resp[i].TargetName = ref.Target.Name
		}
	}

	writeJSON(w, r, map[string]any{
		"recordId":   id,
		"references": resp,
	})
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	records := s.uc.Query.Search(r.Context(), query)
	total := len(records)

	offset, limit, err := pagination(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	records = paginate(records, offset, limit)

	writeJSON(w, r, map[string]any{
		"query":   query,
		"records": summarizeAll(records),
		"total":   total,
	})
}

func pagination(r *http.Request) (offset, limit int, err error) {
	q := r.URL.Query()
	limit = -1

	if raw := q.Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, goerr.New("offset must be a non-negative integer")
		}
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, goerr.New("limit must be a non-negative integer")
		}
	}
	return offset, limit, nil
}

func paginate(records []*model.ContentRecord, offset, limit int) []*model.ContentRecord {
	if offset >= len(records) {
		return []*model.ContentRecord{}
	}
	records = records[offset:]
	if limit >= 0 && limit < len(records) {
		records = records[:limit]
	}
	return records
}
