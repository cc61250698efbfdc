// Package importer reads the category and cost-line spreadsheets users upload
// to (re)seed a project's budget.
package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
	"github.com/MrJamesThe3rd/costbook/internal/category"
	enc "github.com/MrJamesThe3rd/costbook/internal/encoding"
	"github.com/MrJamesThe3rd/costbook/internal/money"
)

// Categories returns one name per data row, in file order.
func Categories(r io.Reader) ([]string, error) {
	rows, cols, err := read(r, categoriesLayout)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, cols.get(row, fieldName))
	}

	return names, nil
}

// CostLines returns the rows of a cost-line upload. Budgets that do not parse
// are reported together as field errors keyed by data row number.
func CostLines(r io.Reader) ([]category.CostLineRow, error) {
	rows, cols, err := read(r, costLinesLayout)
	if err != nil {
		return nil, err
	}

	out := make([]category.CostLineRow, 0, len(rows))
	verr := apperr.NewValidation()

	for i, row := range rows {
		budget, err := money.Parse(cols.get(row, fieldBudget))
		if err != nil {
			verr.Add(fmt.Sprintf("row %d", i+1), "budget is not an amount")
			continue
		}

		out = append(out, category.CostLineRow{
			Category: cols.get(row, fieldCategory),
			Name:     cols.get(row, fieldName),
			Budget:   budget,
		})
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return out, nil
}

// read decodes r, consumes the header and returns the non-blank data rows.
func read(r io.Reader, l layout) ([][]string, columns, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	head, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	reader := csv.NewReader(br)
	reader.Comma = enc.SniffDelimiter(head)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	var (
		cols    columns
		rows    [][]string
		gotHead bool
	)

	for _, row := range all {
		if blank(row) {
			continue
		}

		if !gotHead {
			cols = l.match(row)
			gotHead = true

			continue
		}

		rows = append(rows, row)
	}

	if !gotHead {
		verr := apperr.NewValidation()
		verr.Add("file", "missing header row")

		return nil, nil, verr
	}

	return rows, cols, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
