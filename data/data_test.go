package data_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/medref-lab/medcorpus/data"
	"github.com/medref-lab/medcorpus/pkg/domain/model"
	"github.com/medref-lab/medcorpus/pkg/domain/types"
	"github.com/medref-lab/medcorpus/pkg/repository/memory"
	"github.com/medref-lab/medcorpus/pkg/usecase"
)

func TestDomains(t *testing.T) {
	domains, err := data.Domains()
	gt.NoError(t, err).Required()
	gt.Array(t, domains).Length(4)

	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = d.Name
		gt.Number(t, len(d.Records)).NotEqual(0)
	}
	gt.Value(t, names).Equal([]string{
		"addiction-medicine",
		"physical-exam",
		"rehabilitation",
		"wilderness-medicine",
	})
}

// The embedded seed content must always build under strict policy: every
// cross-reference resolves and every record passes validation.
func TestEmbeddedCorpusBuildsStrict(t *testing.T) {
	domains, err := data.Domains()
	gt.NoError(t, err).Required()

	builder := memory.NewBuilder()
	for _, d := range domains {
		gt.NoError(t, builder.RegisterDomain(d))
	}
	corpus, report, err := builder.Build(types.PolicyStrict)
	gt.NoError(t, err).Required()
	gt.Array(t, report.Errors).Length(0)
	gt.Array(t, report.Warnings).Length(0)

	uc := usecase.New(corpus)

	t.Run("search finds seeded content", func(t *testing.T) {
		results := uc.Query.Search(context.Background(), "headache")
		ids := make([]types.RecordID, len(results))
		for i, rec := range results {
			ids[i] = rec.ID
		}
		gt.Array(t, ids).Has("acute-mountain-sickness")
	})

	t.Run("cross-references all resolve", func(t *testing.T) {
		for _, rec := range corpus.Records() {
			refs, err := uc.Query.ResolveCrossReferences(context.Background(), rec.ID)
			gt.NoError(t, err).Required()
			for _, ref := range refs {
				gt.B(t, ref.Resolved()).True()
			}
		}
	})

	t.Run("every record renders at every depth", func(t *testing.T) {
		for _, rec := range corpus.Records() {
			for depth := model.MinLevelDepth; depth <= model.MaxLevelDepth; depth++ {
				lv, ok := rec.LevelAt(depth)
				if depth >= rec.DefinedLevels()[0] {
					gt.B(t, ok).True()
					gt.Value(t, lv).NotNil()
				}
			}
		}
	})
}
