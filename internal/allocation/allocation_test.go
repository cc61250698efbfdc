package allocation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
)

func amt(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		billType       int
		allocationType int
		want           allocation.Category
	}{
		{"progress claim bill, claim allocation", 2, 0, allocation.CategoryProgressClaim},
		{"progress claim bill, direct allocation", 2, 1, allocation.CategoryDirectCost},
		{"direct bill, claim allocation", 1, 0, allocation.CategoryDirectCost},
		{"direct bill, direct allocation", 1, 1, allocation.CategoryDirectCost},
		{"unknown bill type", 0, 0, allocation.CategoryDirectCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allocation.Classify(tt.billType, tt.allocationType))
		})
	}
}

func TestCounts(t *testing.T) {
	assert.True(t, allocation.Counts(2, 0))
	assert.True(t, allocation.Counts(2, 1))
	assert.True(t, allocation.Counts(1, 1))
	assert.False(t, allocation.Counts(1, 0))
	assert.False(t, allocation.Counts(2, 5))
}

func TestCommitted_QuotesOnly(t *testing.T) {
	a := uuid.New()
	q1, q2 := uuid.New(), uuid.New()
	x, y := uuid.New(), uuid.New()

	quotes := []allocation.QuoteRow{
		{QuoteID: q1, CounterpartyID: a, CostLineID: x, Amount: amt("100.00")},
		{QuoteID: q2, CounterpartyID: a, CostLineID: x, Amount: amt("50.00")},
		{QuoteID: q2, CounterpartyID: a, CostLineID: y, Amount: amt("25.00")},
	}

	got := allocation.Committed(quotes, nil)

	require.Len(t, got, 2)
	assert.True(t, dec("150.00").Equal(got[x]))
	assert.True(t, dec("25.00").Equal(got[y]))
}

func TestCommitted_ProgressClaimBill(t *testing.T) {
	bill := uuid.New()
	x, y := uuid.New(), uuid.New()

	bills := []allocation.BillRow{
		{BillID: bill, BillType: 2, AllocationType: 0, CostLineID: x, Amount: amt("30.00")},
		{BillID: bill, BillType: 2, AllocationType: 1, CostLineID: y, Amount: amt("10.00")},
	}

	got := allocation.Committed(nil, bills)

	assert.True(t, dec("30.00").Equal(got[x]))
	assert.True(t, dec("10.00").Equal(got[y]))
}

func TestCommitted_ExcludesClaimOnDirectBill(t *testing.T) {
	x := uuid.New()

	quotes := []allocation.QuoteRow{{QuoteID: uuid.New(), CostLineID: x, Amount: amt("5.00")}}
	bills := []allocation.BillRow{{BillID: uuid.New(), BillType: 1, AllocationType: 0, CostLineID: x, Amount: amt("20.00")}}

	got := allocation.Committed(quotes, bills)
	assert.True(t, dec("5.00").Equal(got[x]))

	only := allocation.Committed(nil, bills)
	_, present := only[x]
	assert.False(t, present, "a line with no qualifying allocation must be absent")
}

func TestCommitted_NullAmountsAndExactSums(t *testing.T) {
	x := uuid.New()

	var quotes []allocation.QuoteRow
	for range 10 {
		quotes = append(quotes, allocation.QuoteRow{QuoteID: uuid.New(), CostLineID: x, Amount: amt("0.10")})
	}

	quotes = append(quotes, allocation.QuoteRow{QuoteID: uuid.New(), CostLineID: x})

	got := allocation.Committed(quotes, nil)
	assert.Equal(t, "1.00", got[x].StringFixed(2))
	assert.True(t, dec("1").Equal(got[x]))
}

func TestCommitted_NonMatchingBillDoesNotChangeTotal(t *testing.T) {
	x := uuid.New()
	base := []allocation.BillRow{
		{BillID: uuid.New(), BillType: 1, AllocationType: 1, CostLineID: x, Amount: amt("12.34")},
		{BillID: uuid.New(), BillType: 2, AllocationType: 0, CostLineID: x, Amount: amt("0.66")},
	}
	withNoise := append([]allocation.BillRow{
		{BillID: uuid.New(), BillType: 1, AllocationType: 0, CostLineID: x, Amount: amt("999.99")},
	}, base...)

	assert.True(t, allocation.Committed(nil, base)[x].Equal(allocation.Committed(nil, withNoise)[x]))
	assert.True(t, dec("13.00").Equal(allocation.Committed(nil, base)[x]))
}

func TestGroupQuotes(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	x, y := uuid.New(), uuid.New()

	rows := []allocation.QuoteRow{
		{QuoteID: q1, CounterpartyID: a, SupplierRef: "Q-1", CostLineID: x, Amount: amt("100.00")},
		{QuoteID: q2, CounterpartyID: a, SupplierRef: "Q-2", CostLineID: x, Amount: amt("50.00")},
		{QuoteID: q2, CounterpartyID: a, SupplierRef: "Q-2", CostLineID: y, Amount: amt("25.00")},
		{QuoteID: q3, CounterpartyID: b, SupplierRef: "B-9", CostLineID: y, Amount: amt("7.50")},
	}

	groups := allocation.GroupQuotes(rows)

	require.Len(t, groups, 2)
	assert.Equal(t, a, groups[0].CounterpartyID)
	require.Len(t, groups[0].Quotes, 2)
	assert.Equal(t, q1, groups[0].Quotes[0].QuoteID)
	assert.Equal(t, "Q-2", groups[0].Quotes[1].SupplierRef)
	require.Len(t, groups[0].Quotes[1].Allocations, 2)
	assert.Equal(t, y, groups[0].Quotes[1].Allocations[1].CostLineID)
	assert.True(t, dec("25").Equal(groups[0].Quotes[1].Allocations[1].Amount))
	assert.Equal(t, b, groups[1].CounterpartyID)

	assert.Empty(t, allocation.GroupQuotes(nil))
}

func TestGroupBills_ExcludesDraftsAndOrdersByDate(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	late, early, sameDay1, sameDay2, draft := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()
	x := uuid.New()

	rows := []allocation.BillRow{
		{BillID: late, CounterpartyID: a, BillStatus: 1, BillType: 2, BillDate: day(20), CostLineID: x, Amount: amt("1"), AllocationType: 0},
		{BillID: sameDay1, CounterpartyID: a, BillStatus: 1, BillType: 1, BillDate: day(10), CostLineID: x, Amount: amt("2"), AllocationType: 1},
		{BillID: early, CounterpartyID: a, BillStatus: 2, BillType: 1, BillDate: day(1), CostLineID: x, Amount: amt("3"), AllocationType: 0},
		{BillID: sameDay2, CounterpartyID: a, BillStatus: 1, BillType: 1, BillDate: day(10), CostLineID: x, Amount: amt("4"), AllocationType: 1},
		{BillID: draft, CounterpartyID: b, BillStatus: 0, BillType: 2, BillDate: day(2), CostLineID: x, Amount: amt("5"), AllocationType: 0},
		{BillID: uuid.New(), CounterpartyID: uuid.Nil, BillStatus: 1, BillType: 1, BillDate: day(2), CostLineID: x, Amount: amt("6"), AllocationType: 1},
	}

	groups := allocation.GroupBills(rows)

	require.Len(t, groups, 1, "counterparty with only draft bills must be absent")
	assert.Equal(t, a, groups[0].CounterpartyID)

	var order []uuid.UUID
	for _, bill := range groups[0].Bills {
		order = append(order, bill.BillID)
		assert.NotEqual(t, draft, bill.BillID)
	}

	assert.Equal(t, []uuid.UUID{early, sameDay1, sameDay2, late}, order)

	assert.Equal(t, allocation.CategoryProgressClaim, groups[0].Bills[3].Allocations[0].AllocationType)
	assert.Equal(t, allocation.CategoryDirectCost, groups[0].Bills[0].Allocations[0].AllocationType)
}

func TestGroupBills_Stable(t *testing.T) {
	a := uuid.New()
	x := uuid.New()

	var rows []allocation.BillRow
	for i := range 8 {
		rows = append(rows, allocation.BillRow{
			BillID:         uuid.New(),
			CounterpartyID: a,
			BillStatus:     1,
			BillType:       1,
			BillDate:       day(1 + i%2),
			CostLineID:     x,
			Amount:         amt("1.00"),
			AllocationType: 1,
		})
	}

	first := allocation.GroupBills(rows)
	second := allocation.GroupBills(rows)

	assert.Equal(t, first, second)
}

func TestGroupQuotes_QuoteWithoutAllocations(t *testing.T) {
	a := uuid.New()
	empty, full := uuid.New(), uuid.New()
	x := uuid.New()

	rows := []allocation.QuoteRow{
		{QuoteID: empty, CounterpartyID: a, SupplierRef: "Q-0"},
		{QuoteID: full, CounterpartyID: a, SupplierRef: "Q-1", CostLineID: x, Amount: amt("10.00")},
	}

	groups := allocation.GroupQuotes(rows)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Quotes, 2)
	assert.Equal(t, empty, groups[0].Quotes[0].QuoteID)
	assert.NotNil(t, groups[0].Quotes[0].Allocations)
	assert.Empty(t, groups[0].Quotes[0].Allocations)
	assert.Len(t, groups[0].Quotes[1].Allocations, 1)
}

func TestGroupBills_BillWithoutAllocations(t *testing.T) {
	a := uuid.New()
	empty, draft := uuid.New(), uuid.New()

	rows := []allocation.BillRow{
		{BillID: empty, CounterpartyID: a, BillStatus: 2, BillType: 1, BillDate: day(4), InvoiceNumber: "INV-7"},
		{BillID: draft, CounterpartyID: a, BillStatus: 0, BillType: 1, BillDate: day(5)},
	}

	groups := allocation.GroupBills(rows)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Bills, 1)
	assert.Equal(t, empty, groups[0].Bills[0].BillID)
	assert.Equal(t, "INV-7", groups[0].Bills[0].InvoiceNumber)
	assert.NotNil(t, groups[0].Bills[0].Allocations)
	assert.Empty(t, groups[0].Bills[0].Allocations)
}

func TestCommitted_SkipsRowsWithoutAllocations(t *testing.T) {
	x := uuid.New()

	got := allocation.Committed(
		[]allocation.QuoteRow{{QuoteID: uuid.New(), CounterpartyID: uuid.New()}},
		[]allocation.BillRow{
			{BillID: uuid.New(), BillType: 1, AllocationType: 1},
			{BillID: uuid.New(), BillType: 1, AllocationType: 1, CostLineID: x, Amount: amt("4.00")},
		},
	)

	assert.Len(t, got, 1)
	assert.True(t, dec("4.00").Equal(got[x]))
	_, ok := got[uuid.Nil]
	assert.False(t, ok)
}
