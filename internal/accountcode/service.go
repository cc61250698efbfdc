// Package accountcode learns which Xero account code a cost line posts to.
package accountcode

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

var ErrNotFound = fmt.Errorf("account code mapping %w", apperr.ErrNotFound)

// Mapping sends every cost line whose name contains Pattern to AccountCode.
type Mapping struct {
	ID          uuid.UUID
	Pattern     string
	AccountCode string
	CreatedAt   time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=accountcode
type Repository interface {
	FindMatch(ctx context.Context, costLineName string) (string, error)
	CreateMapping(ctx context.Context, m *Mapping) error
	List(ctx context.Context) ([]*Mapping, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo        Repository
	defaultCode string
}

func NewService(repo Repository, defaultCode string) *Service {
	return &Service{repo: repo, defaultCode: defaultCode}
}

// Suggest returns the code of the longest pattern found in costLineName,
// or the default account when nothing matches.
func (s *Service) Suggest(ctx context.Context, costLineName string) (string, error) {
	code, err := s.repo.FindMatch(ctx, costLineName)
	if err != nil {
		return "", err
	}

	if code == "" {
		return s.defaultCode, nil
	}

	return code, nil
}

// Learn remembers a new mapping between a name pattern and an account code.
func (s *Service) Learn(ctx context.Context, pattern, accountCode string) (*Mapping, error) {
	m := &Mapping{
		Pattern:     strings.TrimSpace(pattern),
		AccountCode: strings.TrimSpace(accountCode),
	}

	verr := apperr.NewValidation()
	if m.Pattern == "" {
		verr.Add("pattern", "is required")
	}

	if m.AccountCode == "" {
		verr.Add("account_code", "is required")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateMapping(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) List(ctx context.Context) ([]*Mapping, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
