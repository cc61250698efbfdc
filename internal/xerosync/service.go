// Package xerosync moves contacts and bills between the local books and Xero.
package xerosync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
	"github.com/MrJamesThe3rd/costbook/internal/apperr"
	"github.com/MrJamesThe3rd/costbook/internal/bill"
	"github.com/MrJamesThe3rd/costbook/internal/category"
	"github.com/MrJamesThe3rd/costbook/internal/contact"
	"github.com/MrJamesThe3rd/costbook/internal/xero"
)

//go:generate mockgen -source=service.go -destination=deps_mock.go -package=xerosync
type Accounting interface {
	Contacts(ctx context.Context) ([]xero.Contact, error)
	PushBill(ctx context.Context, inv xero.Invoice, att *xero.Attachment) (string, error)
}

type Contacts interface {
	Get(ctx context.Context, id uuid.UUID) (*contact.Counterparty, error)
	UpsertFromXero(ctx context.Context, xeroID string, p contact.Params) (*contact.Counterparty, error)
}

type Bills interface {
	Get(ctx context.Context, id uuid.UUID) (*bill.Bill, error)
	MarkSent(ctx context.Context, id uuid.UUID, xeroInvoiceID string) error
}

type CostLines interface {
	GetLine(ctx context.Context, id uuid.UUID) (*category.CostLine, error)
}

type AccountCodes interface {
	Suggest(ctx context.Context, costLineName string) (string, error)
}

type Files interface {
	Open(ctx context.Context, name string) ([]byte, error)
}

type Service struct {
	xero      Accounting
	contacts  Contacts
	bills     Bills
	costLines CostLines
	codes     AccountCodes
	files     Files
}

func NewService(x Accounting, contacts Contacts, bills Bills, costLines CostLines, codes AccountCodes, files Files) *Service {
	return &Service{
		xero:      x,
		contacts:  contacts,
		bills:     bills,
		costLines: costLines,
		codes:     codes,
		files:     files,
	}
}

type ContactsResult struct {
	Synced  int `json:"synced"`
	Skipped int `json:"skipped"`
}

// SyncContacts upserts every active Xero contact as a counterparty. Contacts
// whose details fail validation are logged and skipped.
func (s *Service) SyncContacts(ctx context.Context) (ContactsResult, error) {
	var res ContactsResult

	contacts, err := s.xero.Contacts(ctx)
	if err != nil {
		return res, fmt.Errorf("pulling contacts: %w", err)
	}

	for _, c := range contacts {
		if c.ContactStatus != "" && c.ContactStatus != xero.ContactStatusLive {
			continue
		}

		_, err := s.contacts.UpsertFromXero(ctx, c.ContactID, paramsFromContact(c))
		if err != nil {
			var verr *apperr.ValidationError
			if errors.As(err, &verr) {
				slog.Warn("skipping xero contact", "contact_id", c.ContactID, "name", c.Name, "error", err)

				res.Skipped++

				continue
			}

			return res, fmt.Errorf("upserting contact %s: %w", c.ContactID, err)
		}

		res.Synced++
	}

	return res, nil
}

// paramsFromContact splits Xero's free-form bank details into BSB (first six
// digits) and account number (the rest).
func paramsFromContact(c xero.Contact) contact.Params {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, c.BankAccountDetails)

	p := contact.Params{
		Name:  c.Name,
		Email: c.EmailAddress,
		ABN:   c.TaxNumber,
	}

	if len(digits) > 6 {
		p.BSB = digits[:6]
		p.AccountNumber = digits[6:]
	}

	return p
}

// PushBill sends an approved bill to Xero as an ACCPAY invoice with its
// document attached, then marks it sent.
func (s *Service) PushBill(ctx context.Context, id uuid.UUID) (string, error) {
	b, err := s.bills.Get(ctx, id)
	if err != nil {
		return "", err
	}

	verr := apperr.NewValidation()

	switch {
	case b.Status == bill.StatusSent:
		verr.Add("status", "bill was already sent as "+b.XeroInvoiceID)
	case b.Status != bill.StatusApproved:
		verr.Add("status", "bill must be approved before it is pushed")
	case b.CounterpartyID == nil:
		verr.Add("counterparty_id", "is required")
	}

	if err := verr.OrNil(); err != nil {
		return "", err
	}

	cp, err := s.contacts.Get(ctx, *b.CounterpartyID)
	if err != nil {
		return "", err
	}

	if cp.XeroContactID == "" {
		verr.Add("counterparty_id", cp.Name+" is not linked to a Xero contact")
		return "", verr
	}

	inv, err := s.invoice(ctx, b, cp)
	if err != nil {
		return "", err
	}

	var att *xero.Attachment

	if b.DocumentPath != "" {
		data, err := s.files.Open(ctx, b.DocumentPath)
		if err != nil {
			return "", fmt.Errorf("opening bill document: %w", err)
		}

		att = &xero.Attachment{FileName: path.Base(b.DocumentPath), Data: data}
	}

	invoiceID, err := s.xero.PushBill(ctx, inv, att)
	if invoiceID != "" {
		// The invoice exists upstream even when the attachment failed; record it so it is not pushed twice.
		if markErr := s.bills.MarkSent(ctx, id, invoiceID); markErr != nil {
			return invoiceID, errors.Join(err, fmt.Errorf("marking bill sent: %w", markErr))
		}
	}

	if err != nil {
		return invoiceID, fmt.Errorf("pushing bill: %w", err)
	}

	return invoiceID, nil
}

func (s *Service) invoice(ctx context.Context, b *bill.Bill, cp *contact.Counterparty) (xero.Invoice, error) {
	inv := xero.Invoice{
		Type:            xero.InvoiceTypeBill,
		Contact:         xero.ContactRef{ContactID: cp.XeroContactID},
		InvoiceNumber:   b.InvoiceNumber,
		Reference:       b.InvoiceNumber,
		CurrencyCode:    b.Currency,
		LineAmountTypes: xero.LineAmountsExcl,
		Status:          xero.StatusAuthorised,
	}

	if b.Date != nil {
		d := xero.Date(*b.Date)
		inv.Date = &d
	}

	if b.DueDate != nil {
		d := xero.Date(*b.DueDate)
		inv.DueDate = &d
	}

	if b.Currency != bill.BaseCurrency && b.ExchangeRate.Valid && b.ExchangeRate.Decimal.IsPositive() {
		// Xero's rate is foreign units per base unit.
		r := xero.Amount(decimal.NewFromInt(1).DivRound(b.ExchangeRate.Decimal, 6))
		inv.CurrencyRate = &r
	}

	for _, a := range b.Allocations {
		line, err := s.costLines.GetLine(ctx, a.CostLineID)
		if err != nil {
			return inv, err
		}

		code, err := s.codes.Suggest(ctx, line.Name)
		if err != nil {
			return inv, fmt.Errorf("suggesting account code: %w", err)
		}

		desc := fmt.Sprintf("%s (%s)", line.Name, categoryLabel(a.Category(b.Type)))
		if a.Note != "" {
			desc += " - " + a.Note
		}

		inv.LineItems = append(inv.LineItems, xero.LineItem{
			Description: desc,
			Quantity:    xero.Amount(decimal.NewFromInt(1)),
			UnitAmount:  xero.Amount(a.Amount.Decimal),
			AccountCode: code,
			TaxAmount:   xero.Amount(a.GST),
		})
	}

	return inv, nil
}

func categoryLabel(c allocation.Category) string {
	if c == allocation.CategoryProgressClaim {
		return "progress claim"
	}

	return "direct cost"
}
