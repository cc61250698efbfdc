package contact

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

var ErrNotFound = fmt.Errorf("counterparty %w", apperr.ErrNotFound)

// Counterparty is a supplier or subcontractor that quotes, bills and receives purchase orders.
type Counterparty struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Division      string
	ABN           string
	BSB           string
	AccountNumber string
	XeroContactID string // Empty until linked to the accounting system
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ListFilter struct {
	Search string
}
