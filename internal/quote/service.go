package quote

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
	"github.com/MrJamesThe3rd/costbook/internal/money"
	"github.com/MrJamesThe3rd/costbook/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=quote
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Quote, error)
	Get(ctx context.Context, id uuid.UUID) (*Quote, error)
	Create(ctx context.Context, q *Quote) error
	// Update replaces the header and every allocation of q in one transaction.
	Update(ctx context.Context, q *Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetDocument(ctx context.Context, id uuid.UUID, path string) error
}

// Refresher recomputes stored uncommitted balances after allocations change.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type FileStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

type Service struct {
	repo      Repository
	refresher Refresher
	files     FileStore
}

func NewService(repo Repository, refresher Refresher, files FileStore) *Service {
	return &Service{repo: repo, refresher: refresher, files: files}
}

type AllocationParams struct {
	CostLineID uuid.UUID           `json:"cost_line_id" validate:"required"`
	Amount     decimal.NullDecimal `json:"amount"`
	Note       string              `json:"note"`
}

type Params struct {
	CounterpartyID uuid.UUID          `json:"counterparty_id" validate:"required"`
	SupplierRef    string             `json:"supplier_ref"`
	Total          decimal.Decimal    `json:"total"`
	Allocations    []AllocationParams `json:"allocations" validate:"dive"`
}

func (p Params) validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	var sum decimal.Decimal
	for _, a := range p.Allocations {
		if a.Amount.Valid {
			sum = sum.Add(a.Amount.Decimal)
		}
	}

	if sum.GreaterThan(p.Total) {
		verr := apperr.NewValidation()
		verr.Add("allocations", fmt.Sprintf("allocated %s exceeds quote total %s", money.Format(sum), money.Format(p.Total)))

		return verr
	}

	return nil
}

func (p Params) apply(q *Quote) {
	q.CounterpartyID = p.CounterpartyID
	q.SupplierRef = strings.TrimSpace(p.SupplierRef)
	q.Total = p.Total.Round(2)
	q.Allocations = make([]Allocation, 0, len(p.Allocations))

	for _, a := range p.Allocations {
		amount := a.Amount
		if amount.Valid {
			amount.Decimal = amount.Decimal.Round(2)
		}

		q.Allocations = append(q.Allocations, Allocation{
			CostLineID: a.CostLineID,
			Amount:     amount,
			Note:       a.Note,
		})
	}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Quote, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Quote, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, p Params) (*Quote, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	q := &Quote{}
	p.apply(q)

	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}

	s.refresh(ctx)

	return q, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, p Params) (*Quote, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	q := &Quote{ID: id}
	p.apply(q)

	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}

	s.refresh(ctx)

	return q, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.refresh(ctx)

	return nil
}

// AttachDocument stores the supplier's quote PDF and links it to the quote.
func (s *Service) AttachDocument(ctx context.Context, id uuid.UUID, filename string, data []byte) (string, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return "", err
	}

	name := path.Join("quotes", id.String(), path.Base(filename))

	url, err := s.files.Save(ctx, name, data)
	if err != nil {
		return "", fmt.Errorf("saving quote document: %w", err)
	}

	if err := s.repo.SetDocument(ctx, id, name); err != nil {
		return "", err
	}

	return url, nil
}

// refresh failures leave the stored balances stale until the next edit; the edit itself stands.
func (s *Service) refresh(ctx context.Context) {
	if s.refresher == nil {
		return
	}

	if err := s.refresher.Refresh(ctx); err != nil {
		slog.Error("refreshing uncommitted balances", "error", err)
	}
}
