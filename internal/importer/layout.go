package importer

import (
	"slices"
	"strings"
)

type field int

const (
	fieldName field = iota
	fieldCategory
	fieldBudget
)

// layout lists, in positional order, the fields a file carries and the header
// spellings accepted for each.
type layout []struct {
	field   field
	headers []string
}

var categoriesLayout = layout{
	{fieldName, []string{"name", "category", "category name"}},
}

var costLinesLayout = layout{
	{fieldCategory, []string{"category", "category name"}},
	{fieldName, []string{"cost_line", "cost line", "costline", "name", "line", "description"}},
	{fieldBudget, []string{"budget", "amount", "value"}},
}

// columns maps a field to its index in a data row.
type columns map[field]int

// match resolves each field against the header row. Headers that are not
// recognised fall back to the field's position in the layout.
func (l layout) match(header []string) columns {
	cols := make(columns, len(l))
	taken := make(map[int]bool)

	for _, f := range l {
		for i, h := range header {
			if taken[i] || !slices.Contains(f.headers, normalizeHeader(h)) {
				continue
			}

			cols[f.field] = i
			taken[i] = true

			break
		}
	}

	for pos, f := range l {
		if _, ok := cols[f.field]; !ok {
			cols[f.field] = pos
		}
	}

	return cols
}

func (c columns) get(row []string, f field) string {
	i, ok := c[f]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
