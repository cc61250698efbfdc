package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/database"
	"github.com/MrJamesThe3rd/costbook/internal/quote"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// The LEFT JOIN yields one row per allocation, or one row with null allocation columns.
const selectQuotes = `
	SELECT q.id, q.counterparty_id, q.supplier_ref, q.total, q.document_path, q.created_at, q.updated_at,
		a.id, a.cost_line_id, a.amount, a.note
	FROM quotes q
	LEFT JOIN quote_allocations a ON a.quote_id = q.id`

func (s *Store) query(ctx context.Context, where string, args ...any) ([]*quote.Quote, error) {
	rows, err := s.db.QueryContext(ctx, selectQuotes+" "+where+" ORDER BY q.created_at, q.id, a.position", args...)
	if err != nil {
		return nil, fmt.Errorf("querying quotes: %w", err)
	}
	defer rows.Close()

	var (
		quotes []*quote.Quote
		cur    *quote.Quote
	)

	for rows.Next() {
		var (
			q          quote.Quote
			allocID    uuid.NullUUID
			costLineID uuid.NullUUID
			amount     decimal.NullDecimal
			note       sql.NullString
		)

		if err := rows.Scan(
			&q.ID, &q.CounterpartyID, &q.SupplierRef, &q.Total, &q.DocumentPath, &q.CreatedAt, &q.UpdatedAt,
			&allocID, &costLineID, &amount, &note,
		); err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}

		if cur == nil || cur.ID != q.ID {
			cur = &q
			quotes = append(quotes, cur)
		}

		if allocID.Valid {
			cur.Allocations = append(cur.Allocations, quote.Allocation{
				ID:         allocID.UUID,
				CostLineID: costLineID.UUID,
				Amount:     amount,
				Note:       note.String,
			})
		}
	}

	return quotes, rows.Err()
}

func (s *Store) List(ctx context.Context, filter quote.ListFilter) ([]*quote.Quote, error) {
	if filter.CounterpartyID != nil {
		return s.query(ctx, "WHERE q.counterparty_id = $1", *filter.CounterpartyID)
	}

	return s.query(ctx, "")
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	qs, err := s.query(ctx, "WHERE q.id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	if len(qs) == 0 {
		return nil, quote.ErrNotFound
	}

	return qs[0], nil
}

func (s *Store) Create(ctx context.Context, q *quote.Quote) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	err = dbTx.QueryRowContext(ctx, `
		INSERT INTO quotes (counterparty_id, supplier_ref, total)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		q.CounterpartyID, q.SupplierRef, q.Total,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return mapWriteErr("creating quote", err)
	}

	if err := insertAllocations(ctx, dbTx, q); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Update locks the quote row so concurrent edits serialise; the last commit wins.
func (s *Store) Update(ctx context.Context, q *quote.Quote) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	var locked uuid.UUID
	if err := dbTx.QueryRowContext(ctx, `SELECT id FROM quotes WHERE id = $1 FOR UPDATE`, q.ID).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quote.ErrNotFound
		}

		return fmt.Errorf("locking quote: %w", err)
	}

	err = dbTx.QueryRowContext(ctx, `
		UPDATE quotes
		SET counterparty_id = $1, supplier_ref = $2, total = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING document_path, created_at, updated_at`,
		q.CounterpartyID, q.SupplierRef, q.Total, q.ID,
	).Scan(&q.DocumentPath, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return mapWriteErr("updating quote", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM quote_allocations WHERE quote_id = $1`, q.ID); err != nil {
		return fmt.Errorf("deleting allocations: %w", err)
	}

	if err := insertAllocations(ctx, dbTx, q); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func insertAllocations(ctx context.Context, dbTx *sql.Tx, q *quote.Quote) error {
	for i := range q.Allocations {
		a := &q.Allocations[i]

		err := dbTx.QueryRowContext(ctx, `
			INSERT INTO quote_allocations (quote_id, cost_line_id, amount, note, position)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			q.ID, a.CostLineID, a.Amount, a.Note, i,
		).Scan(&a.ID)
		if err != nil {
			return mapWriteErr("creating allocation", err)
		}
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}

	return affected(res)
}

func (s *Store) SetDocument(ctx context.Context, id uuid.UUID, path string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE quotes SET document_path = $1, updated_at = NOW() WHERE id = $2`, path, id)
	if err != nil {
		return fmt.Errorf("setting quote document: %w", err)
	}

	return affected(res)
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return quote.ErrNotFound
	}

	return nil
}

func mapWriteErr(op string, err error) error {
	if database.IsForeignKeyViolation(err) {
		return quote.ErrUnknownReference
	}

	return fmt.Errorf("%s: %w", op, err)
}
