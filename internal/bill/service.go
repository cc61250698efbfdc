package bill

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
	"github.com/MrJamesThe3rd/costbook/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bill
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Bill, error)
	Get(ctx context.Context, id uuid.UUID) (*Bill, error)
	Create(ctx context.Context, b *Bill) error
	// Update loads the bill under a row lock, applies fn and writes the header
	// and every allocation back in the same transaction.
	Update(ctx context.Context, id uuid.UUID, fn func(b *Bill) error) (*Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	SetDocument(ctx context.Context, id uuid.UUID, path string) error
	MarkSent(ctx context.Context, id uuid.UUID, xeroInvoiceID string) error
	FixRate(ctx context.Context, id uuid.UUID, rate, net decimal.Decimal, at time.Time) error
}

type Refresher interface {
	Refresh(ctx context.Context) error
}

type FileStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// PageSplitter extracts single pages from a PDF as standalone documents.
type PageSplitter interface {
	PageCount(pdf []byte) (int, error)
	Page(pdf []byte, n int) ([]byte, error)
}

type Service struct {
	repo      Repository
	refresher Refresher
	files     FileStore
	splitter  PageSplitter
	now       func() time.Time
}

func NewService(repo Repository, refresher Refresher, files FileStore, splitter PageSplitter) *Service {
	return &Service{
		repo:      repo,
		refresher: refresher,
		files:     files,
		splitter:  splitter,
		now:       time.Now,
	}
}

type AllocationParams struct {
	CostLineID uuid.UUID           `json:"cost_line_id" validate:"required"`
	Amount     decimal.NullDecimal `json:"amount"`
	GST        decimal.Decimal     `json:"gst"`
	Note       string              `json:"note"`
	Type       int                 `json:"allocation_type" validate:"oneof=0 1"`
}

type Params struct {
	CounterpartyID *uuid.UUID          `json:"counterparty_id"`
	Type           Type                `json:"bill_type" validate:"omitempty,oneof=1 2"`
	InvoiceNumber  string              `json:"invoice_number"`
	Date           *time.Time          `json:"bill_date"`
	DueDate        *time.Time          `json:"due_date"`
	Net            decimal.Decimal     `json:"net"`
	GST            decimal.Decimal     `json:"gst"`
	Currency       string              `json:"currency" validate:"omitempty,len=3"`
	ForeignAmount  decimal.NullDecimal `json:"foreign_amount"`
	ExchangeRate   decimal.NullDecimal `json:"exchange_rate"`
	Allocations    []AllocationParams  `json:"allocations" validate:"dive"`
}

func (p Params) validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if isForeign(p.currency()) && !p.ForeignAmount.Valid {
		verr := apperr.NewValidation()
		verr.Add("foreign_amount", "is required for "+p.currency()+" bills")

		return verr
	}

	return nil
}

func (p Params) currency() string {
	c := strings.ToUpper(strings.TrimSpace(p.Currency))
	if c == "" {
		return BaseCurrency
	}

	return c
}

func isForeign(currency string) bool {
	return currency != BaseCurrency
}

// apply copies p onto b. A fixed exchange rate is never replaced.
func (p Params) apply(b *Bill) {
	b.CounterpartyID = p.CounterpartyID
	b.Type = p.Type

	if b.Type == 0 {
		b.Type = TypeDirectCost
	}
	b.InvoiceNumber = strings.TrimSpace(p.InvoiceNumber)
	b.Date = p.Date
	b.DueDate = p.DueDate
	b.Net = p.Net.Round(2)
	b.GST = p.GST.Round(2)
	b.Currency = p.currency()

	if isForeign(b.Currency) {
		b.ForeignAmount = roundNull(p.ForeignAmount)

		if !b.FXFixed {
			b.ExchangeRate = p.ExchangeRate
		}

		if b.ForeignAmount.Valid && b.ExchangeRate.Valid {
			b.Net = Convert(b.ForeignAmount.Decimal, b.ExchangeRate.Decimal)
		}
	} else {
		b.ForeignAmount = decimal.NullDecimal{}
		b.ExchangeRate = decimal.NullDecimal{}
		b.FXFixed = false
		b.FXFixedAt = nil
	}

	b.Allocations = toAllocations(p.Allocations)
}

func toAllocations(params []AllocationParams) []Allocation {
	out := make([]Allocation, 0, len(params))
	for _, a := range params {
		out = append(out, Allocation{
			CostLineID: a.CostLineID,
			Amount:     roundNull(a.Amount),
			GST:        a.GST.Round(2),
			Note:       a.Note,
			Type:       a.Type,
		})
	}

	return out
}

// Convert turns a foreign amount into base currency at rate (base units per foreign unit), to the cent.
func Convert(foreign, rate decimal.Decimal) decimal.Decimal {
	return foreign.Mul(rate).Round(2)
}

func roundNull(n decimal.NullDecimal) decimal.NullDecimal {
	if n.Valid {
		n.Decimal = n.Decimal.Round(2)
	}

	return n
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Bill, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return s.repo.Get(ctx, id)
}

// Create records a new draft bill.
func (s *Service) Create(ctx context.Context, p Params) (*Bill, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	b := &Bill{Status: StatusDraft}
	p.apply(b)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.refresh(ctx)

	return b, nil
}

// Update replaces the bill's header and allocations atomically.
func (s *Service) Update(ctx context.Context, id uuid.UUID, p Params) (*Bill, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.Update(ctx, id, func(b *Bill) error {
		p.apply(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.refresh(ctx)

	return b, nil
}

type allocationsParams struct {
	Allocations []AllocationParams `json:"allocations" validate:"dive"`
}

// ReplaceAllocations swaps the bill's allocation set, leaving its header untouched.
func (s *Service) ReplaceAllocations(ctx context.Context, id uuid.UUID, allocs []AllocationParams) (*Bill, error) {
	if err := validate.Struct(allocationsParams{Allocations: allocs}); err != nil {
		return nil, err
	}

	b, err := s.repo.Update(ctx, id, func(b *Bill) error {
		b.Allocations = toAllocations(allocs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.refresh(ctx)

	return b, nil
}

// SetStatus moves a bill through draft, allocated and approved. Sent is
// reserved for MarkSent, which records the accounting system's invoice id.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if status < StatusDraft || status > StatusApproved {
		verr := apperr.NewValidation()
		verr.Add("status", "must be 0 (draft), 1 (allocated) or 2 (approved)")

		return verr
	}

	return s.repo.SetStatus(ctx, id, status)
}

func (s *Service) MarkSent(ctx context.Context, id uuid.UUID, xeroInvoiceID string) error {
	if strings.TrimSpace(xeroInvoiceID) == "" {
		verr := apperr.NewValidation()
		verr.Add("xero_invoice_id", "is required")

		return verr
	}

	return s.repo.MarkSent(ctx, id, xeroInvoiceID)
}

// FixRate locks the exchange rate of a foreign-currency bill and recomputes its net amount.
func (s *Service) FixRate(ctx context.Context, id uuid.UUID, rate decimal.Decimal) (*Bill, error) {
	verr := apperr.NewValidation()
	if !rate.IsPositive() {
		verr.Add("exchange_rate", "must be greater than zero")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case !isForeign(b.Currency):
		verr.Add("currency", "bill is already in "+BaseCurrency)
	case !b.ForeignAmount.Valid:
		verr.Add("foreign_amount", "is required to fix a rate")
	case b.FXFixed:
		verr.Add("exchange_rate", "is already fixed")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	at := s.now()
	net := Convert(b.ForeignAmount.Decimal, rate)

	if err := s.repo.FixRate(ctx, id, rate, net, at); err != nil {
		return nil, err
	}

	b.ExchangeRate = decimal.NewNullDecimal(rate)
	b.Net = net
	b.FXFixed = true
	b.FXFixedAt = &at

	return b, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.refresh(ctx)

	return nil
}

func (s *Service) AttachDocument(ctx context.Context, id uuid.UUID, filename string, data []byte) (string, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return "", err
	}

	name := path.Join("bills", id.String(), path.Base(filename))

	url, err := s.files.Save(ctx, name, data)
	if err != nil {
		return "", fmt.Errorf("saving bill document: %w", err)
	}

	if err := s.repo.SetDocument(ctx, id, name); err != nil {
		return "", err
	}

	return url, nil
}

// SplitUpload creates one draft bill per page of a multi-page PDF. A page that
// fails to extract or save is logged and skipped; bills already created stay.
func (s *Service) SplitUpload(ctx context.Context, filename string, pdf []byte) ([]*Bill, error) {
	n, err := s.splitter.PageCount(pdf)
	if err != nil {
		verr := apperr.NewValidation()
		verr.Add("file", "not a readable PDF: "+err.Error())

		return nil, verr
	}

	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	batch := s.now().Format("20060102-150405")

	var bills []*Bill

	for page := 1; page <= n; page++ {
		if err := ctx.Err(); err != nil {
			return bills, err
		}

		b, err := s.createFromPage(ctx, pdf, page, path.Join("bills", "split", batch, fmt.Sprintf("%s-p%d.pdf", base, page)))
		if err != nil {
			slog.Warn("skipping page of split upload", "file", filename, "page", page, "error", err)
			continue
		}

		bills = append(bills, b)
	}

	return bills, nil
}

func (s *Service) createFromPage(ctx context.Context, pdf []byte, page int, name string) (*Bill, error) {
	data, err := s.splitter.Page(pdf, page)
	if err != nil {
		return nil, fmt.Errorf("extracting page: %w", err)
	}

	if _, err := s.files.Save(ctx, name, data); err != nil {
		return nil, fmt.Errorf("saving page: %w", err)
	}

	b := &Bill{
		Status:       StatusDraft,
		Type:         TypeDirectCost,
		Currency:     BaseCurrency,
		DocumentPath: name,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) refresh(ctx context.Context) {
	if s.refresher == nil {
		return
	}

	if err := s.refresher.Refresh(ctx); err != nil {
		slog.Error("refreshing uncommitted balances", "error", err)
	}
}
