package allocation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Committed sums quote allocations and qualifying bill allocations per cost line.
// Cost lines without any allocation are absent from the result.
func Committed(quotes []QuoteRow, bills []BillRow) map[uuid.UUID]decimal.Decimal {
	totals := make(map[uuid.UUID]decimal.Decimal)

	for _, q := range quotes {
		if !q.allocated() {
			continue
		}

		totals[q.CostLineID] = totals[q.CostLineID].Add(amount(q.Amount))
	}

	for _, b := range bills {
		if !b.allocated() || !Counts(b.BillType, b.AllocationType) {
			continue
		}

		totals[b.CostLineID] = totals[b.CostLineID].Add(amount(b.Amount))
	}

	return totals
}
