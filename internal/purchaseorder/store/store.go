package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/database"
	"github.com/MrJamesThe3rd/costbook/internal/purchaseorder"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectOrders = `
	SELECT p.id, p.counterparty_id, p.note1, p.note2, p.note3, p.created_at,
		l.id, l.cost_line_id, l.quote_id, l.amount, l.variation_note, l.line_date
	FROM purchase_orders p
	LEFT JOIN purchase_order_lines l ON l.purchase_order_id = p.id`

func (s *Store) query(ctx context.Context, where string, args ...any) ([]*purchaseorder.PurchaseOrder, error) {
	rows, err := s.db.QueryContext(ctx, selectOrders+" "+where+" ORDER BY p.created_at DESC, p.id, l.position", args...)
	if err != nil {
		return nil, fmt.Errorf("querying purchase orders: %w", err)
	}
	defer rows.Close()

	var (
		orders []*purchaseorder.PurchaseOrder
		cur    *purchaseorder.PurchaseOrder
	)

	for rows.Next() {
		var (
			p             purchaseorder.PurchaseOrder
			notes         [3]string
			lineID        uuid.NullUUID
			costLineID    uuid.NullUUID
			quoteID       uuid.NullUUID
			amount        decimal.NullDecimal
			variationNote sql.NullString
			lineDate      sql.NullTime
		)

		if err := rows.Scan(
			&p.ID, &p.CounterpartyID, &notes[0], &notes[1], &notes[2], &p.CreatedAt,
			&lineID, &costLineID, &quoteID, &amount, &variationNote, &lineDate,
		); err != nil {
			return nil, fmt.Errorf("scanning purchase order: %w", err)
		}

		if cur == nil || cur.ID != p.ID {
			for _, n := range notes {
				if n != "" {
					p.Notes = append(p.Notes, n)
				}
			}

			cur = &p
			orders = append(orders, cur)
		}

		if !lineID.Valid {
			continue
		}

		l := purchaseorder.Line{
			ID:            lineID.UUID,
			CostLineID:    costLineID.UUID,
			Amount:        amount.Decimal,
			VariationNote: variationNote.String,
		}

		if quoteID.Valid {
			l.QuoteID = &quoteID.UUID
		}

		if lineDate.Valid {
			l.Date = &lineDate.Time
		}

		cur.Lines = append(cur.Lines, l)
	}

	return orders, rows.Err()
}

func (s *Store) List(ctx context.Context, filter purchaseorder.ListFilter) ([]*purchaseorder.PurchaseOrder, error) {
	if filter.CounterpartyID != nil {
		return s.query(ctx, "WHERE p.counterparty_id = $1", *filter.CounterpartyID)
	}

	return s.query(ctx, "")
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*purchaseorder.PurchaseOrder, error) {
	orders, err := s.query(ctx, "WHERE p.id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("getting purchase order: %w", err)
	}

	if len(orders) == 0 {
		return nil, purchaseorder.ErrNotFound
	}

	return orders[0], nil
}

func (s *Store) Create(ctx context.Context, p *purchaseorder.PurchaseOrder) error {
	var notes [3]string
	copy(notes[:], p.Notes)

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	err = dbTx.QueryRowContext(ctx, `
		INSERT INTO purchase_orders (counterparty_id, note1, note2, note3)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		p.CounterpartyID, notes[0], notes[1], notes[2],
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return mapWriteErr("creating purchase order", err)
	}

	for i := range p.Lines {
		l := &p.Lines[i]

		err := dbTx.QueryRowContext(ctx, `
			INSERT INTO purchase_order_lines (purchase_order_id, cost_line_id, quote_id, amount, variation_note, line_date, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			p.ID, l.CostLineID, l.QuoteID, l.Amount, l.VariationNote, l.Date, i,
		).Scan(&l.ID)
		if err != nil {
			return mapWriteErr("creating purchase order line", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting purchase order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return purchaseorder.ErrNotFound
	}

	return nil
}

func (s *Store) PrintLines(ctx context.Context, id uuid.UUID) ([]purchaseorder.PrintLine, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, cl.name, COALESCE(q.supplier_ref, ''), l.quote_id IS NOT NULL, l.variation_note, l.amount
		FROM purchase_order_lines l
		JOIN cost_lines cl ON cl.id = l.cost_line_id
		JOIN categories c ON c.id = cl.category_id
		LEFT JOIN quotes q ON q.id = l.quote_id
		WHERE l.purchase_order_id = $1
		ORDER BY l.position`, id)
	if err != nil {
		return nil, fmt.Errorf("listing print lines: %w", err)
	}
	defer rows.Close()

	var lines []purchaseorder.PrintLine

	for rows.Next() {
		var l purchaseorder.PrintLine
		if err := rows.Scan(&l.Category, &l.CostLine, &l.QuoteRef, &l.HasQuote, &l.VariationNote, &l.Amount); err != nil {
			return nil, fmt.Errorf("scanning print line: %w", err)
		}

		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func mapWriteErr(op string, err error) error {
	if database.IsForeignKeyViolation(err) {
		return purchaseorder.ErrUnknownReference
	}

	return fmt.Errorf("%s: %w", op, err)
}
