// Package data carries the embedded seed domains that ship with the
// binary. External sources configured at runtime are loaded alongside
// these, or instead of them with the no-embedded option.
package data

import (
	"bytes"
	"embed"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/medref-lab/medcorpus/pkg/domain/model"
)

//go:embed *.json
var files embed.FS

// Domains decodes every embedded domain file, in file name order so the
// corpus order is stable across builds.
func Domains() ([]*model.Domain, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list embedded domains")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	domains := make([]*model.Domain, 0, len(names))
	for _, name := range names {
		raw, err := files.ReadFile(name)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read embedded domain", goerr.V("file", name))
		}
		d, err := model.DecodeDomain(bytes.NewReader(raw))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode embedded domain", goerr.V("file", name))
		}
		domains = append(domains, d)
	}
	return domains, nil
}
