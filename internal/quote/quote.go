package quote

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

var (
	ErrNotFound = fmt.Errorf("quote %w", apperr.ErrNotFound)
	// ErrUnknownReference is returned when a quote names a missing counterparty or cost line.
	ErrUnknownReference = fmt.Errorf("referenced counterparty or cost line %w", apperr.ErrNotFound)
)

type Quote struct {
	ID             uuid.UUID
	CounterpartyID uuid.UUID
	SupplierRef    string
	Total          decimal.Decimal
	DocumentPath   string
	Allocations    []Allocation
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Allocation assigns part of a quote to a cost line. A null amount counts as zero.
type Allocation struct {
	ID         uuid.UUID
	CostLineID uuid.UUID
	Amount     decimal.NullDecimal
	Note       string
}

type ListFilter struct {
	CounterpartyID *uuid.UUID
}
