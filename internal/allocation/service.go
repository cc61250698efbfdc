package allocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=allocation
type Repository interface {
	QuoteRows(ctx context.Context) ([]QuoteRow, error)
	BillRows(ctx context.Context) ([]BillRow, error)
	CostLines(ctx context.Context) ([]CostLine, error)
}

// CostLine is the budget side of the summary, ordered by category then line.
type CostLine struct {
	ID       uuid.UUID
	Category string
	Name     string
	Budget   decimal.Decimal
}

// SummaryLine compares budget with committed cost for one cost line.
type SummaryLine struct {
	CostLineID  uuid.UUID       `json:"cost_line_id"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Budget      decimal.Decimal `json:"budget"`
	Committed   decimal.Decimal `json:"committed"`
	Uncommitted decimal.Decimal `json:"uncommitted"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Committed(ctx context.Context) (map[uuid.UUID]decimal.Decimal, error) {
	quotes, err := s.repo.QuoteRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading quote allocations: %w", err)
	}

	bills, err := s.repo.BillRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading bill allocations: %w", err)
	}

	return Committed(quotes, bills), nil
}

func (s *Service) QuoteAllocations(ctx context.Context) ([]QuoteGroup, error) {
	rows, err := s.repo.QuoteRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading quote allocations: %w", err)
	}

	return GroupQuotes(rows), nil
}

func (s *Service) BillAllocations(ctx context.Context) ([]BillGroup, error) {
	rows, err := s.repo.BillRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading bill allocations: %w", err)
	}

	return GroupBills(rows), nil
}

// Summary lists every cost line with its committed and uncommitted amounts.
// Lines without allocations report zero committed.
func (s *Service) Summary(ctx context.Context) ([]SummaryLine, error) {
	lines, err := s.repo.CostLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cost lines: %w", err)
	}

	committed, err := s.Committed(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SummaryLine, 0, len(lines))
	for _, l := range lines {
		c := committed[l.ID]
		out = append(out, SummaryLine{
			CostLineID:  l.ID,
			Category:    l.Category,
			Name:        l.Name,
			Budget:      l.Budget,
			Committed:   c,
			Uncommitted: l.Budget.Sub(c),
		})
	}

	return out, nil
}
