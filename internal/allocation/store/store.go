package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// QuoteRows returns quote allocations ordered by counterparty name, then quote
// creation, then allocation position. Quotes without allocations yield one row
// with a nil cost line.
func (s *Store) QuoteRows(ctx context.Context) ([]allocation.QuoteRow, error) {
	query := `
		SELECT q.id, q.counterparty_id, q.supplier_ref, qa.cost_line_id, qa.amount
		FROM quotes q
		LEFT JOIN quote_allocations qa ON qa.quote_id = q.id
		JOIN counterparties c ON c.id = q.counterparty_id
		ORDER BY c.name ASC, c.id ASC, q.created_at ASC, q.id ASC, qa.position ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing quote allocations: %w", err)
	}
	defer rows.Close()

	var out []allocation.QuoteRow

	for rows.Next() {
		var (
			r        allocation.QuoteRow
			costLine uuid.NullUUID
		)

		if err := rows.Scan(&r.QuoteID, &r.CounterpartyID, &r.SupplierRef, &costLine, &r.Amount); err != nil {
			return nil, fmt.Errorf("scanning quote allocation: %w", err)
		}

		r.CostLineID = costLine.UUID

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quote allocations: %w", err)
	}

	return out, nil
}

// BillRows returns bill allocations in creation order so that bills sharing a
// date keep insertion order after the stable date sort. Bills not yet assigned
// to a counterparty carry uuid.Nil; bills without allocations yield one row
// with a nil cost line.
func (s *Store) BillRows(ctx context.Context) ([]allocation.BillRow, error) {
	query := `
		SELECT b.id, COALESCE(b.counterparty_id, '00000000-0000-0000-0000-000000000000'::uuid), b.status, b.bill_type, COALESCE(b.bill_date, b.created_at::date),
			b.invoice_number, ba.cost_line_id, ba.amount, COALESCE(ba.allocation_type, 0)
		FROM bills b
		LEFT JOIN bill_allocations ba ON ba.bill_id = b.id
		LEFT JOIN counterparties c ON c.id = b.counterparty_id
		ORDER BY c.name ASC, c.id ASC, b.created_at ASC, b.id ASC, ba.position ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bill allocations: %w", err)
	}
	defer rows.Close()

	var out []allocation.BillRow

	for rows.Next() {
		var (
			r        allocation.BillRow
			costLine uuid.NullUUID
		)

		if err := rows.Scan(
			&r.BillID, &r.CounterpartyID, &r.BillStatus, &r.BillType, &r.BillDate,
			&r.InvoiceNumber, &costLine, &r.Amount, &r.AllocationType,
		); err != nil {
			return nil, fmt.Errorf("scanning bill allocation: %w", err)
		}

		r.CostLineID = costLine.UUID

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bill allocations: %w", err)
	}

	return out, nil
}

func (s *Store) CostLines(ctx context.Context) ([]allocation.CostLine, error) {
	query := `
		SELECT cl.id, c.name, cl.name, cl.budget
		FROM cost_lines cl
		JOIN categories c ON c.id = cl.category_id
		ORDER BY c.sort_order ASC, c.name ASC, cl.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cost lines: %w", err)
	}
	defer rows.Close()

	var out []allocation.CostLine

	for rows.Next() {
		var l allocation.CostLine
		if err := rows.Scan(&l.ID, &l.Category, &l.Name, &l.Budget); err != nil {
			return nil, fmt.Errorf("scanning cost line: %w", err)
		}

		out = append(out, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cost lines: %w", err)
	}

	return out, nil
}
