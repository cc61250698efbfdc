package view

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/money"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders d the way amounts are printed on reports: 1,234.50.
func FormatAmount(d decimal.Decimal) string {
	return money.Format(d)
}

// FormatDate formats an optional date as YYYY-MM-DD, or "-" when unset.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}

	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
