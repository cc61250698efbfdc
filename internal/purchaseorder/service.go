package purchaseorder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/contact"
	"github.com/MrJamesThe3rd/costbook/internal/document/po"
	"github.com/MrJamesThe3rd/costbook/internal/mail"
	"github.com/MrJamesThe3rd/costbook/internal/storage"
	"github.com/MrJamesThe3rd/costbook/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=purchaseorder
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*PurchaseOrder, error)
	Get(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	Create(ctx context.Context, p *PurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	PrintLines(ctx context.Context, id uuid.UUID) ([]PrintLine, error)
}

type Counterparties interface {
	Get(ctx context.Context, id uuid.UUID) (*contact.Counterparty, error)
}

type FileStore interface {
	Open(ctx context.Context, name string) ([]byte, error)
}

// Project holds the issuing company's details printed on every order.
type Project struct {
	Company        string
	CompanyAddress string // Printed in the header; Address is the site
	ABN            string
	Email          string
	Address        string
	Letterhead     string // Storage path of the letterhead PDF
	MailFrom       string
}

type Service struct {
	repo           Repository
	counterparties Counterparties
	files          FileStore
	mailer         mail.Sender
	project        Project
}

func NewService(repo Repository, counterparties Counterparties, files FileStore, mailer mail.Sender, project Project) *Service {
	return &Service{
		repo:           repo,
		counterparties: counterparties,
		files:          files,
		mailer:         mailer,
		project:        project,
	}
}

type LineParams struct {
	CostLineID    uuid.UUID       `json:"cost_line_id" validate:"required"`
	QuoteID       *uuid.UUID      `json:"quote_id"`
	Amount        decimal.Decimal `json:"amount"`
	VariationNote string          `json:"variation_note" validate:"required_without=QuoteID"`
	Date          *time.Time      `json:"date"`
}

type Params struct {
	CounterpartyID uuid.UUID    `json:"counterparty_id" validate:"required"`
	Notes          []string     `json:"notes" validate:"max=3"`
	Lines          []LineParams `json:"lines" validate:"dive"`
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*PurchaseOrder, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, p Params) (*PurchaseOrder, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}

	order := &PurchaseOrder{
		CounterpartyID: p.CounterpartyID,
		Notes:          p.Notes,
		Lines:          make([]Line, 0, len(p.Lines)),
	}

	for _, l := range p.Lines {
		order.Lines = append(order.Lines, Line{
			CostLineID:    l.CostLineID,
			QuoteID:       l.QuoteID,
			Amount:        l.Amount.Round(2),
			VariationNote: strings.TrimSpace(l.VariationNote),
			Date:          l.Date,
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// PDF renders the purchase order onto the configured letterhead.
func (s *Service) PDF(ctx context.Context, id uuid.UUID) ([]byte, *PurchaseOrder, *contact.Counterparty, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	cp, err := s.counterparties.Get(ctx, order.CounterpartyID)
	if err != nil {
		return nil, nil, nil, err
	}

	lines, err := s.repo.PrintLines(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	pages := po.Layout(s.document(order, cp, lines))

	letterhead, err := s.files.Open(ctx, s.project.Letterhead)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, nil, fmt.Errorf("%w: %s", po.ErrNoLetterhead, s.project.Letterhead)
		}

		return nil, nil, nil, fmt.Errorf("opening letterhead: %w", err)
	}

	data, err := po.Render(ctx, letterhead, pages)
	if err != nil {
		return nil, nil, nil, err
	}

	return data, order, cp, nil
}

func (s *Service) document(order *PurchaseOrder, cp *contact.Counterparty, lines []PrintLine) po.PurchaseOrder {
	rows := make([]po.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, po.Row{
			Category:      l.Category + " - " + l.CostLine,
			QuoteRef:      l.QuoteRef,
			HasQuote:      l.HasQuote,
			VariationNote: l.VariationNote,
			Amount:        l.Amount,
		})
	}

	return po.PurchaseOrder{
		Reference:        order.Reference(),
		Invoicee:         s.project.Company,
		ABN:              s.project.ABN,
		Email:            s.project.Email,
		Address:          s.project.CompanyAddress,
		ProjectAddress:   s.project.Address,
		CounterpartyName: cp.Name,
		Rows:             rows,
		Notes:            order.Notes,
	}
}

// Email sends the rendered order to the counterparty (or to, when given) with cc copies.
func (s *Service) Email(ctx context.Context, id uuid.UUID, to, cc []string) error {
	data, order, cp, err := s.PDF(ctx, id)
	if err != nil {
		return err
	}

	if len(to) == 0 && cp.Email != "" {
		to = []string{cp.Email}
	}

	ref := order.Reference()

	return s.mailer.Send(ctx, mail.Message{
		Subject: fmt.Sprintf("Purchase Order %s - %s", ref, s.project.Address),
		Body: fmt.Sprintf("Hi %s,\n\nPlease find attached purchase order %s for %s.\n"+
			"Quote %s on your invoice and send it to %s.\n\nRegards,\n%s\n",
			cp.Name, ref, s.project.Address, ref, s.project.Email, s.project.Company),
		From:        s.project.MailFrom,
		To:          to,
		Cc:          cc,
		Attachments: []mail.Attachment{{Name: ref + ".pdf", Data: data}},
	})
}
