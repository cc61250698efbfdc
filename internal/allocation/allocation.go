// Package allocation computes committed cost per cost line and the
// per-counterparty quote and bill allocation reports.
//
// Everything here except Service is a pure function over rows the store has
// already fetched, so the same inputs always produce the same output.
package allocation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the effective classification of a bill allocation.
type Category string

const (
	CategoryProgressClaim Category = "progress_claim"
	CategoryDirectCost    Category = "direct_cost"
)

// Bill type and allocation type values as stored.
const (
	BillTypeProgressClaim = 2

	AllocationTypeClaim  = 0
	AllocationTypeDirect = 1
)

// Bill statuses below this value are drafts and never reported.
const billStatusDraft = 0

// Classify derives a bill allocation's category from the parent bill's type
// and the allocation's stored type. It is a progress claim only when the bill
// is a progress-claim bill AND the allocation type is 0.
func Classify(billType, allocationType int) Category {
	if billType == BillTypeProgressClaim && allocationType == AllocationTypeClaim {
		return CategoryProgressClaim
	}

	return CategoryDirectCost
}

// Counts reports whether a bill allocation contributes to committed cost.
func Counts(billType, allocationType int) bool {
	switch allocationType {
	case AllocationTypeDirect:
		return true
	case AllocationTypeClaim:
		return billType == BillTypeProgressClaim
	}

	return false
}

// QuoteRow is one quote allocation joined with its quote. A quote without
// allocations appears once with a nil CostLineID.
type QuoteRow struct {
	QuoteID        uuid.UUID
	CounterpartyID uuid.UUID
	SupplierRef    string
	CostLineID     uuid.UUID
	Amount         decimal.NullDecimal
}

// BillRow is one bill allocation joined with its bill. A bill without
// allocations appears once with a nil CostLineID.
type BillRow struct {
	BillID         uuid.UUID
	CounterpartyID uuid.UUID
	BillStatus     int
	BillType       int
	BillDate       time.Time
	InvoiceNumber  string
	CostLineID     uuid.UUID
	Amount         decimal.NullDecimal
	AllocationType int
}

func (r QuoteRow) allocated() bool { return r.CostLineID != uuid.Nil }

func (r BillRow) allocated() bool { return r.CostLineID != uuid.Nil }

// amount treats a null amount as zero.
func amount(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	return n.Decimal
}
