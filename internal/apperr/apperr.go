// Package apperr holds the error kinds shared across domains so the HTTP
// layer can map them onto status codes without knowing every package.
package apperr

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is wrapped by every domain's not-found sentinel.
	ErrNotFound = errors.New("not found")

	// ErrUpstream is wrapped by failures of external collaborators
	// (accounting API, mail delivery, letterhead template).
	ErrUpstream = errors.New("upstream failure")
)

// ValidationError carries field-level messages for the caller.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

// OrNil returns nil when no field failed.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}

	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
