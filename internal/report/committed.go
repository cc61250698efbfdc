package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
)

const committedSheet = "Committed"

var committedHeader = []string{"Category", "Cost line", "Budget", "Committed", "Uncommitted"}

type totals struct {
	budget, committed, uncommitted decimal.Decimal
}

func sum(lines []allocation.SummaryLine) totals {
	var t totals
	for _, l := range lines {
		t.budget = t.budget.Add(l.Budget)
		t.committed = t.committed.Add(l.Committed)
		t.uncommitted = t.uncommitted.Add(l.Uncommitted)
	}

	return t
}

// WriteCommittedCSV writes one row per cost line followed by a Total row.
func WriteCommittedCSV(w io.Writer, lines []allocation.SummaryLine) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(committedHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, l := range lines {
		row := []string{l.Category, l.Name, l.Budget.StringFixed(2), l.Committed.StringFixed(2), l.Uncommitted.StringFixed(2)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	t := sum(lines)
	if err := cw.Write([]string{"Total", "", t.budget.StringFixed(2), t.committed.StringFixed(2), t.uncommitted.StringFixed(2)}); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}

	cw.Flush()

	return cw.Error()
}

// CommittedXLSX renders the same table as WriteCommittedCSV as a workbook
// with numeric amount cells.
func CommittedXLSX(lines []allocation.SummaryLine) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), committedSheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating style: %w", err)
	}

	amountFmt := "#,##0.00"

	amount, err := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt})
	if err != nil {
		return nil, fmt.Errorf("creating style: %w", err)
	}

	if err := f.SetSheetRow(committedSheet, "A1", &committedHeader); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for _, l := range lines {
		if err := setRow(f, row, l.Category, l.Name, l.Budget, l.Committed, l.Uncommitted); err != nil {
			return nil, err
		}

		row++
	}

	t := sum(lines)
	if err := setRow(f, row, "Total", "", t.budget, t.committed, t.uncommitted); err != nil {
		return nil, err
	}

	last := fmt.Sprintf("E%d", row)

	for _, s := range []struct {
		from, to string
		id       int
	}{
		{"A1", "E1", bold},
		{"C2", last, amount},
		{fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), bold},
	} {
		if err := f.SetCellStyle(committedSheet, s.from, s.to, s.id); err != nil {
			return nil, fmt.Errorf("styling cells: %w", err)
		}
	}

	_ = f.SetColWidth(committedSheet, "A", "B", 32)
	_ = f.SetColWidth(committedSheet, "C", "E", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, category, name string, amounts ...decimal.Decimal) error {
	values := []any{category, name}
	for _, a := range amounts {
		values = append(values, a.Round(2).InexactFloat64())
	}

	if err := f.SetSheetRow(committedSheet, fmt.Sprintf("A%d", row), &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}

	return nil
}
