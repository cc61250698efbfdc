package report_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
	"github.com/MrJamesThe3rd/costbook/internal/bill"
	"github.com/MrJamesThe3rd/costbook/internal/contact"
	"github.com/MrJamesThe3rd/costbook/internal/report"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func summaryLines() []allocation.SummaryLine {
	return []allocation.SummaryLine{
		{Category: "Services", Name: "Electrical", Budget: dec("1000"), Committed: dec("250.5"), Uncommitted: dec("749.5")},
		{Category: "Services", Name: "Plumbing", Budget: dec("500"), Committed: dec("600"), Uncommitted: dec("-100")},
	}
}

func TestWriteCommittedCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.WriteCommittedCSV(&buf, summaryLines()))

	want := "Category,Cost line,Budget,Committed,Uncommitted\n" +
		"Services,Electrical,1000.00,250.50,749.50\n" +
		"Services,Plumbing,500.00,600.00,-100.00\n" +
		"Total,,1500.00,850.50,649.50\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCommittedCSV_NoLines(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.WriteCommittedCSV(&buf, nil))
	assert.Equal(t, "Category,Cost line,Budget,Committed,Uncommitted\nTotal,,0.00,0.00,0.00\n", buf.String())
}

func TestCommittedXLSX(t *testing.T) {
	data, err := report.CommittedXLSX(summaryLines())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	defer f.Close()

	rows, err := f.GetRows("Committed")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Category", "Cost line", "Budget", "Committed", "Uncommitted"}, rows[0])
	assert.Equal(t, "Plumbing", rows[2][1])
	assert.Equal(t, "Total", rows[3][0])

	raw, err := f.GetCellValue("Committed", "D4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "850.5", raw)
}

func TestService_BillDocuments(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	bills := report.NewMockBills(ctrl)
	contacts := report.NewMockContacts(ctrl)
	files := report.NewMockFiles(ctrl)
	svc := report.NewService(report.NewMockAllocations(ctrl), bills, contacts, files)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	cp := uuid.New()

	withDoc := func(inv string) *bill.Bill {
		return &bill.Bill{
			ID: uuid.New(), CounterpartyID: &cp, InvoiceNumber: inv, Date: &day,
			Net: dec("100"), GST: dec("10"), DocumentPath: "bills/" + inv + "/scan.pdf",
		}
	}

	b1, b2 := withDoc("INV 1"), withDoc("INV 1")
	b3 := &bill.Bill{ID: uuid.New(), InvoiceNumber: "X9", Net: dec("5")}

	bills.EXPECT().List(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f bill.ListFilter) ([]*bill.Bill, error) {
			assert.Equal(t, from, *f.From)
			assert.Equal(t, to, *f.To)

			return []*bill.Bill{b1, b2, b3}, nil
		})
	contacts.EXPECT().Get(ctx, cp).Return(&contact.Counterparty{ID: cp, Name: "Sparky & Co"}, nil).Times(1)
	files.EXPECT().Open(ctx, b1.DocumentPath).Return([]byte("one"), nil)
	files.EXPECT().Open(ctx, b2.DocumentPath).Return([]byte("two"), nil)

	data, items, err := svc.BillDocuments(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "20240305_Sparky___Co_INV_1.pdf", items[0].FileName)
	assert.Equal(t, "20240305_Sparky___Co_INV_1-2.pdf", items[1].FileName)
	assert.Empty(t, items[2].FileName)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	got := make(map[string]string)

	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)

		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()

		got[f.Name] = string(b)
	}

	assert.Equal(t, "one", got["20240305_Sparky___Co_INV_1.pdf"])
	assert.Equal(t, "two", got["20240305_Sparky___Co_INV_1-2.pdf"])

	summary := got["summary.txt"]
	assert.Equal(t, 3, strings.Count(summary, "\n"))
	assert.Contains(t, summary, "* 2024-03-05 | Sparky & Co | INV 1 | 110.00 AUD | 20240305_Sparky___Co_INV_1.pdf")
	assert.Contains(t, summary, "* no date | - | X9 | 5.00 AUD | no document")
}
