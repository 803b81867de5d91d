package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/medref-lab/medcorpus/pkg/domain/interfaces"
	"github.com/medref-lab/medcorpus/pkg/domain/model"
	"github.com/medref-lab/medcorpus/pkg/domain/types"
	"github.com/medref-lab/medcorpus/pkg/repository/memory"
	"github.com/medref-lab/medcorpus/pkg/usecase"
)

func newRecord(id string, depths ...int) *model.ContentRecord {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	levels := make(map[int]*model.Level, len(depths))
	for _, d := range depths {
		levels[d] = &model.Level{Level: d, Summary: "summary", Explanation: "explanation"}
	}
	return &model.ContentRecord{
		ID:        types.RecordID(id),
		Type:      types.RecordTypeCondition,
		Name:      "Record " + id,
		Levels:    levels,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
		Status:    types.RecordStatusPublished,
		Tags: model.Tags{
			Systems:           []string{"neurological"},
			Topics:            []string{"general"},
			ClinicalRelevance: types.ClinicalRelevanceMedium,
		},
	}
}

func buildCorpus(t *testing.T, policy types.ValidationPolicy, records ...*model.ContentRecord) interfaces.Corpus {
	t.Helper()
	builder := memory.NewBuilder()
	gt.NoError(t, builder.RegisterDomain(&model.Domain{Name: "test", Records: records}))
	corpus, _, err := builder.Build(policy)
	gt.NoError(t, err).Required()
	return corpus
}

func TestQueryUseCase_FindByID(t *testing.T) {
	corpus := buildCorpus(t, types.PolicyStrict, newRecord("known", 1))
	uc := usecase.New(corpus)
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		rec, err := uc.Query.FindByID(ctx, "known")
		gt.NoError(t, err).Required()
		gt.Value(t, rec.ID).Equal(types.RecordID("known"))
	})

	t.Run("miss is a sentinel, not a failure", func(t *testing.T) {
		_, err := uc.Query.FindByID(ctx, "missing")
		gt.Error(t, err).Is(usecase.ErrRecordNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := uc.Query.FindByID(ctx, "")
		gt.Error(t, err).Is(usecase.ErrRecordNotFound)
	})
}

func TestQueryUseCase_Search(t *testing.T) {
	ams := newRecord("acute-mountain-sickness", 1, 2)
	ams.Name = "Acute Mountain Sickness"
	ams.Levels[1].Summary = "Acute mountain sickness causes headache and nausea after rapid ascent."
	ams.Tags.Systems = []string{"respiratory", "neurological"}

	bp := newRecord("blood-pressure", 1)
	bp.Name = "Blood Pressure Measurement"
	bp.Levels[1].KeyTerms = []model.KeyTerm{
		{Term: "sphygmomanometer", Definition: "Cuff device for measuring blood pressure"},
	}

	corpus := buildCorpus(t, types.PolicyStrict, ams, bp)
	uc := usecase.New(corpus)
	ctx := context.Background()

	t.Run("substring match in level summary", func(t *testing.T) {
		results := uc.Query.Search(ctx, "headache")
		gt.Array(t, results).Length(1)
		gt.Value(t, results[0].ID).Equal(types.RecordID("acute-mountain-sickness"))
	})

	t.Run("case-insensitive", func(t *testing.T) {
		lower := uc.Query.Search(ctx, "headache")
		upper := uc.Query.Search(ctx, "HEADACHE")
		gt.Value(t, upper).Equal(lower)
	})

	t.Run("match in key term", func(t *testing.T) {
		results := uc.Query.Search(ctx, "sphygmo")
		gt.Array(t, results).Length(1)
		gt.Value(t, results[0].ID).Equal(types.RecordID("blood-pressure"))
	})

	t.Run("multi-word query is one substring", func(t *testing.T) {
		// "headache ascent" appears in no single field even though both
		// words do; the query must not be split into terms.
		gt.Array(t, uc.Query.Search(ctx, "headache ascent")).Length(0)
		gt.Array(t, uc.Query.Search(ctx, "headache and nausea")).Length(1)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		results := uc.Query.Search(ctx, "zebra")
		// gt's NotNil treats empty slices as nil, so check directly.
		if results == nil {
			t.Error("expected not nil, but got nil")
		}
		gt.Array(t, results).Length(0)
	})

	t.Run("corpus order preserved", func(t *testing.T) {
		results := uc.Query.Search(ctx, "record")
		gt.Array(t, results).Length(0)

		// Both names contain "s"; order must follow registration order
		results = uc.Query.Search(ctx, "s")
		gt.Array(t, results).Length(2)
		gt.Value(t, results[0].ID).Equal(types.RecordID("acute-mountain-sickness"))
		gt.Value(t, results[1].ID).Equal(types.RecordID("blood-pressure"))
	})

	t.Run("empty query matches every record", func(t *testing.T) {
		gt.Array(t, uc.Query.Search(ctx, "")).Length(2)
	})
}

func TestQueryUseCase_FilterByTag(t *testing.T) {
	resp := newRecord("respiratory-rate", 1)
	resp.Tags.Systems = []string{"respiratory"}
	resp.Tags.ClinicalRelevance = types.ClinicalRelevanceHigh

	cardio := newRecord("heart-rate", 1)
	cardio.Tags.Systems = []string{"cardiovascular"}

	both := newRecord("vital-signs", 1)
	both.Tags.Systems = []string{"respiratory", "cardiovascular"}

	corpus := buildCorpus(t, types.PolicyStrict, resp, cardio, both)
	uc := usecase.New(corpus)
	ctx := context.Background()

	t.Run("system filter preserves corpus order", func(t *testing.T) {
		results := uc.Query.FilterByTag(ctx, model.TagFilter{Systems: []string{"respiratory"}})
		gt.Array(t, results).Length(2)
		gt.Value(t, results[0].ID).Equal(types.RecordID("respiratory-rate"))
		gt.Value(t, results[1].ID).Equal(types.RecordID("vital-signs"))
	})

	t.Run("unused tag yields empty slice", func(t *testing.T) {
		results := uc.Query.FilterByTag(ctx, model.TagFilter{Systems: []string{"endocrine"}})
		// gt's NotNil treats empty slices as nil, so check directly.
		if results == nil {
			t.Error("expected not nil, but got nil")
		}
		gt.Array(t, results).Length(0)
	})

	t.Run("relevance filter", func(t *testing.T) {
		results := uc.Query.FilterByTag(ctx, model.TagFilter{
			ClinicalRelevance: []types.ClinicalRelevance{types.ClinicalRelevanceHigh},
		})
		gt.Array(t, results).Length(1)
		gt.Value(t, results[0].ID).Equal(types.RecordID("respiratory-rate"))
	})

	t.Run("empty filter returns all records", func(t *testing.T) {
		gt.Array(t, uc.Query.FilterByTag(ctx, model.TagFilter{})).Length(3)
	})
}

func TestQueryUseCase_ResolveCrossReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("all edges resolve under strict corpus", func(t *testing.T) {
		a := newRecord("a", 1)
		a.CrossReferences = []model.CrossReference{
			{TargetID: "b", TargetType: types.RecordTypeCondition, Relationship: types.RelationshipRelated, Label: "B"},
		}
		corpus := buildCorpus(t, types.PolicyStrict, a, newRecord("b", 1))
		uc := usecase.New(corpus)

		refs, err := uc.Query.ResolveCrossReferences(ctx, "a")
		gt.NoError(t, err).Required()
		gt.Array(t, refs).Length(1)
		gt.B(t, refs[0].Resolved()).True()
		gt.Value(t, refs[0].Target.ID).Equal(types.RecordID("b"))
	})

	t.Run("unresolved edge under permissive corpus", func(t *testing.T) {
		a := newRecord("a", 1)
		a.CrossReferences = []model.CrossReference{
			{TargetID: "ghost", TargetType: types.RecordTypeTopic, Relationship: types.RelationshipSeeAlso, Label: "Ghost"},
		}
		corpus := buildCorpus(t, types.PolicyPermissive, a)
		uc := usecase.New(corpus)

		refs, err := uc.Query.ResolveCrossReferences(ctx, "a")
		gt.NoError(t, err).Required()
		gt.Array(t, refs).Length(1)
		gt.B(t, refs[0].Resolved()).False()
		gt.Value(t, refs[0].Edge.TargetID).Equal(types.RecordID("ghost"))
	})

	t.Run("unknown source record", func(t *testing.T) {
		corpus := buildCorpus(t, types.PolicyStrict, newRecord("a", 1))
		uc := usecase.New(corpus)

		_, err := uc.Query.ResolveCrossReferences(ctx, "nope")
		gt.Error(t, err).Is(usecase.ErrRecordNotFound)
	})
}

func TestQueryUseCase_SelectLevel(t *testing.T) {
	sparse := newRecord("sparse", 1, 3)
	upperOnly := newRecord("upper-only", 2)
	corpus := buildCorpus(t, types.PolicyStrict, sparse, upperOnly)
	uc := usecase.New(corpus)
	ctx := context.Background()

	t.Run("exact match", func(t *testing.T) {
		lv, err := uc.Query.SelectLevel(ctx, "sparse", 3)
		gt.NoError(t, err).Required()
		gt.Number(t, lv.Level).Equal(3)
	})

	t.Run("falls back to nearest lower", func(t *testing.T) {
		lv, err := uc.Query.SelectLevel(ctx, "sparse", 2)
		gt.NoError(t, err).Required()
		gt.Number(t, lv.Level).Equal(1)

		lv, err = uc.Query.SelectLevel(ctx, "sparse", 5)
		gt.NoError(t, err).Required()
		gt.Number(t, lv.Level).Equal(3)
	})

	t.Run("no level at or below", func(t *testing.T) {
		_, err := uc.Query.SelectLevel(ctx, "upper-only", 1)
		gt.Error(t, err).Is(usecase.ErrNoLevelAvailable)
	})

	t.Run("depth out of range", func(t *testing.T) {
		_, err := uc.Query.SelectLevel(ctx, "sparse", 0)
		gt.Error(t, err).Is(usecase.ErrInvalidDepth)
		_, err = uc.Query.SelectLevel(ctx, "sparse", 6)
		gt.Error(t, err).Is(usecase.ErrInvalidDepth)
	})

	t.Run("unknown record", func(t *testing.T) {
		_, err := uc.Query.SelectLevel(ctx, "nope", 3)
		gt.Error(t, err).Is(usecase.ErrRecordNotFound)
	})
}
