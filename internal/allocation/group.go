package allocation

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteLine struct {
	CostLineID uuid.UUID       `json:"cost_line_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type QuoteEntry struct {
	QuoteID     uuid.UUID   `json:"quote_id"`
	SupplierRef string      `json:"supplier_ref"`
	Allocations []QuoteLine `json:"allocations"`
}

type QuoteGroup struct {
	CounterpartyID uuid.UUID    `json:"counterparty_id"`
	Quotes         []QuoteEntry `json:"quotes"`
}

type BillLine struct {
	CostLineID     uuid.UUID       `json:"cost_line_id"`
	Amount         decimal.Decimal `json:"amount"`
	AllocationType Category        `json:"allocation_type"`
}

type BillEntry struct {
	BillID        uuid.UUID  `json:"bill_id"`
	InvoiceNumber string     `json:"invoice_number"`
	Date          time.Time  `json:"date"`
	Allocations   []BillLine `json:"allocations"`
}

type BillGroup struct {
	CounterpartyID uuid.UUID   `json:"counterparty_id"`
	Bills          []BillEntry `json:"bills"`
}

// GroupQuotes nests quote allocations under their quote and counterparty.
// Quotes without allocations are listed with an empty allocation list.
// Counterparties and quotes keep the order in which they first appear in rows.
func GroupQuotes(rows []QuoteRow) []QuoteGroup {
	groups := []QuoteGroup{}
	groupIdx := make(map[uuid.UUID]int)
	quoteIdx := make(map[uuid.UUID][2]int)

	for _, r := range rows {
		gi, ok := groupIdx[r.CounterpartyID]
		if !ok {
			gi = len(groups)
			groupIdx[r.CounterpartyID] = gi
			groups = append(groups, QuoteGroup{CounterpartyID: r.CounterpartyID, Quotes: []QuoteEntry{}})
		}

		pos, ok := quoteIdx[r.QuoteID]
		if !ok {
			pos = [2]int{gi, len(groups[gi].Quotes)}
			quoteIdx[r.QuoteID] = pos
			groups[gi].Quotes = append(groups[gi].Quotes, QuoteEntry{
				QuoteID:     r.QuoteID,
				SupplierRef: r.SupplierRef,
				Allocations: []QuoteLine{},
			})
		}

		if !r.allocated() {
			continue
		}

		q := &groups[pos[0]].Quotes[pos[1]]
		q.Allocations = append(q.Allocations, QuoteLine{CostLineID: r.CostLineID, Amount: amount(r.Amount)})
	}

	return groups
}

// GroupBills nests non-draft bill allocations under their bill and counterparty.
// Bills without a counterparty are left out.
// Within a counterparty bills are ordered by date; bills sharing a date keep
// the order in which they first appear in rows.
func GroupBills(rows []BillRow) []BillGroup {
	groups := []BillGroup{}
	groupIdx := make(map[uuid.UUID]int)
	billIdx := make(map[uuid.UUID][2]int)

	for _, r := range rows {
		if r.BillStatus == billStatusDraft || r.CounterpartyID == uuid.Nil {
			continue
		}

		gi, ok := groupIdx[r.CounterpartyID]
		if !ok {
			gi = len(groups)
			groupIdx[r.CounterpartyID] = gi
			groups = append(groups, BillGroup{CounterpartyID: r.CounterpartyID, Bills: []BillEntry{}})
		}

		pos, ok := billIdx[r.BillID]
		if !ok {
			pos = [2]int{gi, len(groups[gi].Bills)}
			billIdx[r.BillID] = pos
			groups[gi].Bills = append(groups[gi].Bills, BillEntry{
				BillID:        r.BillID,
				InvoiceNumber: r.InvoiceNumber,
				Date:          r.BillDate,
				Allocations:   []BillLine{},
			})
		}

		if !r.allocated() {
			continue
		}

		b := &groups[pos[0]].Bills[pos[1]]
		b.Allocations = append(b.Allocations, BillLine{
			CostLineID:     r.CostLineID,
			Amount:         amount(r.Amount),
			AllocationType: Classify(r.BillType, r.AllocationType),
		})
	}

	for i := range groups {
		bills := groups[i].Bills
		sort.SliceStable(bills, func(a, b int) bool {
			return bills[a].Date.Before(bills[b].Date)
		})
	}

	return groups
}
