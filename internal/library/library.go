// Package library keeps the project's drawings and reports.
package library

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

var ErrNotFound = fmt.Errorf("document %w", apperr.ErrNotFound)

type Kind string

const (
	KindPlan   Kind = "plan"
	KindReport Kind = "report"
)

func (k Kind) Valid() bool {
	return k == KindPlan || k == KindReport
}

type Document struct {
	ID         uuid.UUID
	Kind       Kind
	Title      string
	Path       string
	URL        string
	UploadedAt time.Time
}

//go:generate mockgen -source=library.go -destination=repository_mock.go -package=library
type Repository interface {
	List(ctx context.Context, kind Kind) ([]*Document, error)
	Get(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, d *Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FileStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

type Service struct {
	repo  Repository
	files FileStore
}

func NewService(repo Repository, files FileStore) *Service {
	return &Service{repo: repo, files: files}
}

// List returns documents of kind, or every document when kind is empty.
func (s *Service) List(ctx context.Context, kind Kind) ([]*Document, error) {
	return s.repo.List(ctx, kind)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Upload(ctx context.Context, kind Kind, title, filename string, data []byte) (*Document, error) {
	verr := apperr.NewValidation()
	if !kind.Valid() {
		verr.Add("kind", "must be one of plan report")
	}

	if len(data) == 0 {
		verr.Add("file", "is required")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	base := path.Base(filename)
	if strings.TrimSpace(title) == "" {
		title = strings.TrimSuffix(base, path.Ext(base))
	}

	name := path.Join("library", string(kind), uuid.NewString()+"-"+base)

	url, err := s.files.Save(ctx, name, data)
	if err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}

	d := &Document{Kind: kind, Title: strings.TrimSpace(title), Path: name, URL: url}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// Delete removes the record; the stored file is kept.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
