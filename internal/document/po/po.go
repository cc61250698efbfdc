// Package po composes purchase-order documents: Layout turns a purchase order
// into positioned draw operations and Render paints them onto a letterhead.
package po

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

var ErrNoLetterhead = fmt.Errorf("letterhead template missing: %w", apperr.ErrUpstream)

const Disclaimer = "This purchase order must be quoted on all invoices. Work outside the scope above requires a written variation before it is carried out."

// PurchaseOrder is everything printed on the document.
type PurchaseOrder struct {
	Reference        string
	Invoicee         string
	ABN              string
	Email            string
	Address          string
	ProjectAddress   string
	CounterpartyName string
	Rows             []Row
	Notes            []string // At most three are printed
}

type Row struct {
	Category      string
	QuoteRef      string
	HasQuote      bool
	VariationNote string
	Amount        decimal.Decimal
}

// QuoteCell is the text of the "Quote # or Variation" column.
func (r Row) QuoteCell() string {
	if r.HasQuote {
		return r.QuoteRef
	}

	return "Variation: " + r.VariationNote
}

// Total is the exact sum of every row amount.
func (p PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range p.Rows {
		total = total.Add(r.Amount)
	}

	return total
}
