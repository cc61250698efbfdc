package category

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

var (
	ErrNotFound         = fmt.Errorf("category %w", apperr.ErrNotFound)
	ErrCostLineNotFound = fmt.Errorf("cost line %w", apperr.ErrNotFound)
)

// Category groups cost lines, e.g. "Electrical".
type Category struct {
	ID        uuid.UUID
	Name      string
	Order     int
	Lines     []*CostLine // Loaded by ListCategories
	CreatedAt time.Time
}

// CostLine is a budget line item within a category.
// Uncommitted is a stored running balance: budget minus committed cost.
type CostLine struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Budget      decimal.Decimal
	Uncommitted decimal.Decimal
	CreatedAt   time.Time
}
