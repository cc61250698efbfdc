package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	GetCostLine(ctx context.Context, id uuid.UUID) (*CostLine, error)
	CreateCostLine(ctx context.Context, l *CostLine) error
	UpdateCostLine(ctx context.Context, l *CostLine) error
	DeleteCostLine(ctx context.Context, id uuid.UUID) error

	SetUncommitted(ctx context.Context, committed map[uuid.UUID]decimal.Decimal) error

	BeginReplace(ctx context.Context) (ReplaceTx, error)
}

// ReplaceTx runs a bulk upload inside a single database transaction.
type ReplaceTx interface {
	DeleteAllCategories(ctx context.Context) error
	DeleteAllCostLines(ctx context.Context) error
	CreateCategories(ctx context.Context, cs []*Category) error
	CategoryIDsByName(ctx context.Context) (map[string]uuid.UUID, error)
	CreateCostLines(ctx context.Context, ls []*CostLine) error
	Commit() error
	Rollback() error
}

// CommittedSource supplies committed cost per cost line.
type CommittedSource interface {
	Committed(ctx context.Context) (map[uuid.UUID]decimal.Decimal, error)
}

type Service struct {
	repo      Repository
	committed CommittedSource
}

func NewService(repo Repository, committed CommittedSource) *Service {
	return &Service{repo: repo, committed: committed}
}

type CategoryParams struct {
	Name  string
	Order int
}

type CostLineParams struct {
	CategoryID uuid.UUID
	Name       string
	Budget     decimal.Decimal
}

// CostLineRow is one row of a cost-line upload; the category is referenced by name.
type CostLineRow struct {
	Category string
	Name     string
	Budget   decimal.Decimal
}

func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) Create(ctx context.Context, p CategoryParams) (*Category, error) {
	if err := validateName(p.Name); err != nil {
		return nil, err
	}

	c := &Category{Name: strings.TrimSpace(p.Name), Order: p.Order}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, c *Category) error {
	if err := validateName(c.Name); err != nil {
		return err
	}

	return s.repo.UpdateCategory(ctx, c)
}

// Delete removes the category with its cost lines and their allocations.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) GetLine(ctx context.Context, id uuid.UUID) (*CostLine, error) {
	return s.repo.GetCostLine(ctx, id)
}

func (s *Service) CreateLine(ctx context.Context, p CostLineParams) (*CostLine, error) {
	if err := validateName(p.Name); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetCategory(ctx, p.CategoryID); err != nil {
		return nil, err
	}

	l := &CostLine{
		CategoryID:  p.CategoryID,
		Name:        strings.TrimSpace(p.Name),
		Budget:      p.Budget.Round(2),
		Uncommitted: p.Budget.Round(2),
	}
	if err := s.repo.CreateCostLine(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) UpdateLine(ctx context.Context, l *CostLine) error {
	if err := validateName(l.Name); err != nil {
		return err
	}

	l.Budget = l.Budget.Round(2)

	return s.repo.UpdateCostLine(ctx, l)
}

func (s *Service) DeleteLine(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCostLine(ctx, id)
}

// ReplaceCategories deletes every category (and, by cascade, their cost lines and
// allocations) and inserts names in order, all in one transaction.
func (s *Service) ReplaceCategories(ctx context.Context, names []string) ([]*Category, error) {
	cats := make([]*Category, 0, len(names))
	verr := apperr.NewValidation()

	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			verr.Add(fmt.Sprintf("row %d", i+1), "category name is required")
			continue
		}

		cats = append(cats, &Category{Name: strings.TrimSpace(n), Order: i})
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	rtx, err := s.repo.BeginReplace(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin replace: %w", err)
	}
	defer rtx.Rollback()

	if err := rtx.DeleteAllCategories(ctx); err != nil {
		return nil, fmt.Errorf("delete categories: %w", err)
	}

	if err := rtx.CreateCategories(ctx, cats); err != nil {
		return nil, fmt.Errorf("create categories: %w", err)
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace: %w", err)
	}

	return cats, nil
}

// ReplaceCostLines deletes every cost line and inserts rows, resolving each
// row's category by name. Unknown categories fail the whole upload.
func (s *Service) ReplaceCostLines(ctx context.Context, rows []CostLineRow) ([]*CostLine, error) {
	rtx, err := s.repo.BeginReplace(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin replace: %w", err)
	}
	defer rtx.Rollback()

	ids, err := rtx.CategoryIDsByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	verr := apperr.NewValidation()
	lines := make([]*CostLine, 0, len(rows))

	for i, r := range rows {
		field := fmt.Sprintf("row %d", i+1)

		catID, ok := ids[strings.TrimSpace(r.Category)]
		if !ok {
			verr.Add(field, fmt.Sprintf("unknown category %q", r.Category))
			continue
		}

		if strings.TrimSpace(r.Name) == "" {
			verr.Add(field, "cost line name is required")
			continue
		}

		lines = append(lines, &CostLine{
			CategoryID:  catID,
			Name:        strings.TrimSpace(r.Name),
			Budget:      r.Budget.Round(2),
			Uncommitted: r.Budget.Round(2),
		})
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if err := rtx.DeleteAllCostLines(ctx); err != nil {
		return nil, fmt.Errorf("delete cost lines: %w", err)
	}

	if err := rtx.CreateCostLines(ctx, lines); err != nil {
		return nil, fmt.Errorf("create cost lines: %w", err)
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace: %w", err)
	}

	return lines, nil
}

// Refresh rewrites every cost line's uncommitted balance from current allocations.
func (s *Service) Refresh(ctx context.Context) error {
	committed, err := s.committed.Committed(ctx)
	if err != nil {
		return fmt.Errorf("computing committed: %w", err)
	}

	return s.repo.SetUncommitted(ctx, committed)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		verr := apperr.NewValidation()
		verr.Add("name", "name is required")

		return verr
	}

	return nil
}
