package usecase

import (
	"github.com/medref-lab/medcorpus/pkg/domain/interfaces"
)

// UseCases bundles the read-side operations over a validated corpus.
type UseCases struct {
	Query *QueryUseCase
}

// New creates the use cases for the given corpus. The corpus argument is
// always an already-built (hence already-validated) corpus: the builder
// enforces that ordering, not the callers here.
func New(corpus interfaces.Corpus) *UseCases {
	return &UseCases{
		Query: NewQueryUseCase(corpus),
	}
}
