package bill

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

var (
	ErrNotFound         = fmt.Errorf("bill %w", apperr.ErrNotFound)
	ErrUnknownReference = fmt.Errorf("referenced counterparty or cost line %w", apperr.ErrNotFound)
)

type Status int

const (
	StatusDraft Status = iota
	StatusAllocated
	StatusApproved
	StatusSent
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusAllocated:
		return "allocated"
	case StatusApproved:
		return "approved"
	case StatusSent:
		return "sent"
	}

	return fmt.Sprintf("status(%d)", int(s))
}

type Type int

const (
	TypeDirectCost    Type = 1
	TypeProgressClaim Type = allocation.BillTypeProgressClaim
)

// BaseCurrency bills need no conversion.
const BaseCurrency = "AUD"

type Bill struct {
	ID             uuid.UUID
	CounterpartyID *uuid.UUID
	Status         Status
	Type           Type
	InvoiceNumber  string
	Date           *time.Time
	DueDate        *time.Time
	Net            decimal.Decimal
	GST            decimal.Decimal
	Currency       string
	ForeignAmount  decimal.NullDecimal
	ExchangeRate   decimal.NullDecimal
	FXFixed        bool
	FXFixedAt      *time.Time
	XeroInvoiceID  string
	DocumentPath   string
	Allocations    []Allocation
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Total is the gross amount payable.
func (b *Bill) Total() decimal.Decimal {
	return b.Net.Add(b.GST)
}

// Allocation assigns part of a bill to a cost line.
// Type 0 is a progress claim on progress-claim bills, 1 is always direct cost.
type Allocation struct {
	ID         uuid.UUID
	CostLineID uuid.UUID
	Amount     decimal.NullDecimal
	GST        decimal.Decimal
	Note       string
	Type       int
}

// Category is the allocation's effective classification under its bill's type.
func (a Allocation) Category(billType Type) allocation.Category {
	return allocation.Classify(int(billType), a.Type)
}

type ListFilter struct {
	Status         *Status
	CounterpartyID *uuid.UUID
	From           *time.Time
	To             *time.Time
	WithDocument   bool
}
