package po_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/costbook/internal/document/po"
	"github.com/MrJamesThe3rd/costbook/internal/document/split"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func texts(pages ...po.Page) []po.Op {
	var out []po.Op
	for _, p := range pages {
		for _, op := range p.Ops {
			if op.Kind == po.OpText {
				out = append(out, op)
			}
		}
	}

	return out
}

func find(pages []po.Page, text string) (po.Op, bool) {
	for _, op := range texts(pages...) {
		if op.Text == text {
			return op, true
		}
	}

	return po.Op{}, false
}

func sampleOrder() po.PurchaseOrder {
	return po.PurchaseOrder{
		Reference:        "PO-0042",
		Invoicee:         "Harbour Build Pty Ltd",
		ABN:              "51824753556",
		Email:            "accounts@harbour.test",
		Address:          "12 Wharf St, Sydney NSW 2000",
		ProjectAddress:   "12 Wharf St",
		CounterpartyName: "Sparks Electrical",
		Rows: []po.Row{
			{Category: "Electrical - Rough-in", QuoteRef: "Q-1001", HasQuote: true, Amount: dec("1234.50")},
			{Category: "Electrical - Fit-off", VariationNote: "extra circuits", Amount: dec("0.10")},
			{Category: "Electrical - Lighting", QuoteRef: "Q-1002", HasQuote: true, Amount: dec("0.20")},
		},
		Notes: []string{"Site access from 7am.", "", "Call before delivery."},
	}
}

func TestLayout_Total(t *testing.T) {
	tests := []struct {
		name string
		rows []po.Row
		want string
	}{
		{name: "NoRows", rows: nil, want: "0.00"},
		{name: "ExactCents", rows: []po.Row{{Amount: dec("0.10")}, {Amount: dec("0.20")}}, want: "0.30"},
		{
			name: "ThousandsSeparator",
			rows: []po.Row{{Amount: dec("1234567.89")}, {Amount: dec("0.11")}},
			want: "1,234,568.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := sampleOrder()
			order.Rows = tt.rows

			pages := po.Layout(order)
			require.Len(t, pages, 1)

			op, ok := find(pages, tt.want)
			require.True(t, ok, "total %q not drawn", tt.want)
			assert.Equal(t, "BU", op.Style)
			assert.Equal(t, po.AlignRight, op.Align)
		})
	}
}

func TestLayout_Cells(t *testing.T) {
	pages := po.Layout(sampleOrder())

	_, ok := find(pages, "Q-1001")
	assert.True(t, ok)

	_, ok = find(pages, "Variation: extra circuits")
	assert.True(t, ok)

	amount, ok := find(pages, "1,234.50")
	require.True(t, ok)
	assert.Equal(t, po.AlignRight, amount.Align)

	label, ok := find(pages, "Reference:")
	require.True(t, ok)
	assert.Equal(t, "B", label.Style)

	value, ok := find(pages, "PO-0042")
	require.True(t, ok)
	assert.Equal(t, "", value.Style)
	assert.Equal(t, label.Y, value.Y)
	assert.Greater(t, value.X, label.X)

	title, ok := find(pages, "12 Wharf St Purchase Order - Sparks Electrical")
	require.True(t, ok)
	assert.Equal(t, po.AlignCenter, title.Align)
	assert.Contains(t, title.Style, "U")
}

func TestLayout_RowHeightFollowsTallestCell(t *testing.T) {
	order := sampleOrder()
	order.Rows = []po.Row{
		{Category: strings.Repeat("long category words ", 8), QuoteRef: "Q-1", HasQuote: true, Amount: dec("1")},
		{Category: "Next", QuoteRef: "Q-2", HasQuote: true, Amount: dec("2")},
	}

	pages := po.Layout(order)

	first, _ := find(pages, "Q-1")
	next, _ := find(pages, "Q-2")

	var lines int
	for _, op := range texts(pages...) {
		if op.Y >= first.Y && op.Y < next.Y && op.X < first.X {
			lines++
		}
	}

	assert.Greater(t, lines, 1)
	assert.Greater(t, next.Y-first.Y, float64(lines-1)*13)
}

func TestLayout_Footer(t *testing.T) {
	order := sampleOrder()
	order.Notes = []string{"one", "two", "three", "four"}

	pages := po.Layout(order)

	_, ok := find(pages, "three")
	assert.True(t, ok)

	_, ok = find(pages, "four")
	assert.False(t, ok, "only three notes are printed")

	one, _ := find(pages, "one")
	two, _ := find(pages, "two")
	assert.Greater(t, two.Y-one.Y, 10.0, "blank line between notes")
}

func TestLayout_ContinuationPages(t *testing.T) {
	order := sampleOrder()
	order.Rows = nil
	for i := range 65 {
		order.Rows = append(order.Rows, po.Row{
			Category: "Electrical - Line",
			QuoteRef: fmt.Sprintf("Q-%03d", i),
			HasQuote: true,
			Amount:   dec("1"),
		})
	}

	pages := po.Layout(order)
	require.Greater(t, len(pages), 1)

	last := pages[len(pages)-1]

	total, ok := find([]po.Page{last}, "65.00")
	require.True(t, ok, "total is drawn on the last page")
	assert.Equal(t, "BU", total.Style)

	_, ok = find(pages[:len(pages)-1], "65.00")
	assert.False(t, ok, "total appears once")

	_, ok = find([]po.Page{last}, "Site access from 7am.")
	assert.True(t, ok, "footer is drawn on the last page")

	for i, p := range pages {
		_, ok := find([]po.Page{p}, "Claim Category")
		assert.True(t, ok, "page %d repeats the table header", i+1)

		if i > 0 {
			_, ok = find([]po.Page{p}, "PO-0042 (continued)")
			assert.True(t, ok, "page %d names the order", i+1)
		}

		for _, op := range p.Ops {
			assert.LessOrEqual(t, op.Y, 800.0, "page %d draws past the bottom margin", i+1)
		}
	}

	for i := range 65 {
		var n int
		for _, op := range texts(pages...) {
			if op.Text == fmt.Sprintf("Q-%03d", i) {
				n++
			}
		}

		assert.Equal(t, 1, n, "row %d is drawn exactly once", i)
	}
}

func TestRender_NoLetterhead(t *testing.T) {
	pages := po.Layout(sampleOrder())

	_, err := po.Render(context.Background(), nil, pages)
	assert.ErrorIs(t, err, po.ErrNoLetterhead)

	_, err = po.Render(context.Background(), []byte("not a pdf"), pages)
	assert.ErrorIs(t, err, po.ErrNoLetterhead)
}

func letterhead(t *testing.T) []byte {
	t.Helper()

	doc := fpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 18)
	doc.Text(40, 60, "Harbour Build")

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	return buf.Bytes()
}

func TestRender_OnLetterhead(t *testing.T) {
	tests := []struct {
		name string
		rows int
	}{
		{name: "SinglePage", rows: 3},
		{name: "ContinuationPages", rows: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := sampleOrder()
			order.Rows = nil
			for range tt.rows {
				order.Rows = append(order.Rows, po.Row{Category: "Line", HasQuote: true, QuoteRef: "Q", Amount: dec("1")})
			}

			pages := po.Layout(order)

			out, err := po.Render(context.Background(), letterhead(t), pages)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

			n, err := split.New().PageCount(out)
			require.NoError(t, err)
			assert.Equal(t, len(pages), n, "every page is merged onto the letterhead")
		})
	}
}

func TestRender_NonASCIIText(t *testing.T) {
	order := sampleOrder()
	order.Rows = []po.Row{{Category: "Electrical — rough-in café", VariationNote: "déjà vu", Amount: dec("10")}}

	pages := po.Layout(order)

	_, ok := find(pages, "Electrical — rough-in café")
	require.True(t, ok, "layout keeps the original text")

	out, err := po.Render(context.Background(), letterhead(t), pages)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
