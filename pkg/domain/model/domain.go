package model

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
)

// Domain is one registered source of records, e.g. "addiction-medicine" or
// "wilderness-medicine". Domains compose into a single logical corpus:
// ID uniqueness and cross-reference resolution span all of them.
type Domain struct {
	Name    string           `json:"domain"`
	Records []*ContentRecord `json:"records"`
}

// DomainInfo summarizes a registered domain of a built corpus.
type DomainInfo struct {
	Name        string `json:"name"`
	RecordCount int    `json:"recordCount"`
}

// DecodeDomain reads one domain file: a JSON object with a "domain" name
// and a "records" array matching the record shape contract. Decode errors
// are load-time schema violations, not query-time concerns.
func DecodeDomain(r io.Reader) (*Domain, error) {
	var domain Domain
	dec := json.NewDecoder(r)
	if err := dec.Decode(&domain); err != nil {
		return nil, goerr.Wrap(err, "failed to decode domain file")
	}

	if domain.Name == "" {
		return nil, goerr.New("domain file has no domain name")
	}

	return &domain, nil
}
