package model

import "github.com/m-mizutani/goerr/v2"

// Load-time errors
var (
	// ErrCorpusInvalid is returned when a corpus build fails closed because
	// the validation report contains errors.
	ErrCorpusInvalid = goerr.New("corpus validation failed")

	// ErrDuplicateDomain is returned when the same domain name is
	// registered twice into one builder.
	ErrDuplicateDomain = goerr.New("domain already registered")
)

// Context keys for error values
const (
	DomainKey     = "domain"
	ErrorCountKey = "error_count"
)
