package purchaseorder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

var (
	ErrNotFound         = fmt.Errorf("purchase order %w", apperr.ErrNotFound)
	ErrUnknownReference = fmt.Errorf("referenced counterparty, cost line or quote %w", apperr.ErrNotFound)
)

type PurchaseOrder struct {
	ID             uuid.UUID
	CounterpartyID uuid.UUID
	Notes          []string
	Lines          []Line
	CreatedAt      time.Time
}

// Reference is the short number printed on the document and quoted on invoices.
func (p *PurchaseOrder) Reference() string {
	return "PO-" + strings.ToUpper(p.ID.String()[:8])
}

func (p *PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range p.Lines {
		total = total.Add(l.Amount)
	}

	return total
}

// Line is priced against a quote, or is a variation when QuoteID is nil.
type Line struct {
	ID            uuid.UUID
	CostLineID    uuid.UUID
	QuoteID       *uuid.UUID
	Amount        decimal.Decimal
	VariationNote string
	Date          *time.Time
}

// PrintLine is a line joined with the names printed on the document.
type PrintLine struct {
	Category      string
	CostLine      string
	QuoteRef      string
	HasQuote      bool
	VariationNote string
	Amount        decimal.Decimal
}

type ListFilter struct {
	CounterpartyID *uuid.UUID
}
