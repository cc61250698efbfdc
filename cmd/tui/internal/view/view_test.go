package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
)

func TestTimeframe_Range(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		tf        Timeframe
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"ThisMonth", TimeframeThisMonth, date(2024, 5, 17), date(2024, 5, 1), date(2024, 5, 17)},
		{"LastMonth", TimeframeLastMonth, date(2024, 5, 17), date(2024, 4, 1), date(2024, 4, 30)},
		{"LastMonthAcrossYear", TimeframeLastMonth, date(2024, 1, 10), date(2023, 12, 1), date(2023, 12, 31)},
		{"ThisQuarter", TimeframeThisQuarter, date(2024, 8, 3), date(2024, 7, 1), date(2024, 8, 3)},
		{"FinancialYearFirstHalf", TimeframeFinancialYear, date(2024, 3, 1), date(2023, 7, 1), date(2024, 3, 1)},
		{"FinancialYearSecondHalf", TimeframeFinancialYear, date(2024, 9, 1), date(2024, 7, 1), date(2024, 9, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.tf.Range(tt.now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestSplitAddresses(t *testing.T) {
	assert.Nil(t, splitAddresses("  "))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, splitAddresses(" a@x.com, ,b@x.com "))
}

func TestTotals(t *testing.T) {
	budget, committed, uncommitted := totals([]allocation.SummaryLine{
		{Budget: decimal.RequireFromString("100"), Committed: decimal.RequireFromString("40.5"), Uncommitted: decimal.RequireFromString("59.5")},
		{Budget: decimal.RequireFromString("20"), Committed: decimal.RequireFromString("25"), Uncommitted: decimal.RequireFromString("-5")},
	})

	assert.Equal(t, "120.00", budget.StringFixed(2))
	assert.Equal(t, "65.50", committed.StringFixed(2))
	assert.Equal(t, "54.50", uncommitted.StringFixed(2))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", FormatDate(nil))
	assert.Equal(t, "2024-03-05", FormatDate(new(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))))
}
