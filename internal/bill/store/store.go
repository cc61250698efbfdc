package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/bill"
	"github.com/MrJamesThe3rd/costbook/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

const selectBills = `
	SELECT b.id, b.counterparty_id, b.status, b.bill_type, b.invoice_number, b.bill_date, b.due_date,
		b.net, b.gst, b.currency, b.foreign_amount, b.exchange_rate, b.fx_fixed, b.fx_fixed_at,
		b.xero_invoice_id, b.document_path, b.created_at, b.updated_at,
		a.id, a.cost_line_id, a.amount, a.gst, a.note, a.allocation_type
	FROM bills b
	LEFT JOIN bill_allocations a ON a.bill_id = b.id`

func scanRow(s scanner) (*bill.Bill, *bill.Allocation, error) {
	var (
		b              bill.Bill
		counterpartyID uuid.NullUUID
		billDate       sql.NullTime
		dueDate        sql.NullTime
		fxFixedAt      sql.NullTime
		xeroID         sql.NullString
		allocID        uuid.NullUUID
		costLineID     uuid.NullUUID
		amount         decimal.NullDecimal
		allocGST       decimal.NullDecimal
		note           sql.NullString
		allocType      sql.NullInt32
	)

	if err := s.Scan(
		&b.ID, &counterpartyID, &b.Status, &b.Type, &b.InvoiceNumber, &billDate, &dueDate,
		&b.Net, &b.GST, &b.Currency, &b.ForeignAmount, &b.ExchangeRate, &b.FXFixed, &fxFixedAt,
		&xeroID, &b.DocumentPath, &b.CreatedAt, &b.UpdatedAt,
		&allocID, &costLineID, &amount, &allocGST, &note, &allocType,
	); err != nil {
		return nil, nil, err
	}

	if counterpartyID.Valid {
		b.CounterpartyID = &counterpartyID.UUID
	}

	b.Date = timePtr(billDate)
	b.DueDate = timePtr(dueDate)
	b.FXFixedAt = timePtr(fxFixedAt)
	b.XeroInvoiceID = xeroID.String

	if !allocID.Valid {
		return &b, nil, nil
	}

	return &b, &bill.Allocation{
		ID:         allocID.UUID,
		CostLineID: costLineID.UUID,
		Amount:     amount,
		GST:        allocGST.Decimal,
		Note:       note.String,
		Type:       int(allocType.Int32),
	}, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	return &t.Time
}

func queryBills(ctx context.Context, q querier, where string, args ...any) ([]*bill.Bill, error) {
	rows, err := q.QueryContext(ctx, selectBills+" "+where+" ORDER BY b.bill_date NULLS LAST, b.created_at, b.id, a.position", args...)
	if err != nil {
		return nil, fmt.Errorf("querying bills: %w", err)
	}
	defer rows.Close()

	var (
		bills []*bill.Bill
		cur   *bill.Bill
	)

	for rows.Next() {
		b, a, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}

		if cur == nil || cur.ID != b.ID {
			cur = b
			bills = append(bills, cur)
		}

		if a != nil {
			cur.Allocations = append(cur.Allocations, *a)
		}
	}

	return bills, rows.Err()
}

func (s *Store) List(ctx context.Context, filter bill.ListFilter) ([]*bill.Bill, error) {
	where := "WHERE TRUE"

	var args []any

	argIdx := 1

	if filter.Status != nil {
		where += fmt.Sprintf(" AND b.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.CounterpartyID != nil {
		where += fmt.Sprintf(" AND b.counterparty_id = $%d", argIdx)

		args = append(args, *filter.CounterpartyID)
		argIdx++
	}

	if filter.From != nil {
		where += fmt.Sprintf(" AND b.bill_date >= $%d", argIdx)

		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil {
		where += fmt.Sprintf(" AND b.bill_date <= $%d", argIdx)

		args = append(args, *filter.To)
		argIdx++
	}

	if filter.WithDocument {
		where += " AND b.document_path <> ''"
	}

	return queryBills(ctx, s.db, where, args...)
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*bill.Bill, error) {
	bills, err := queryBills(ctx, s.db, "WHERE b.id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("getting bill: %w", err)
	}

	if len(bills) == 0 {
		return nil, bill.ErrNotFound
	}

	return bills[0], nil
}

func (s *Store) Create(ctx context.Context, b *bill.Bill) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	err = dbTx.QueryRowContext(ctx, `
		INSERT INTO bills (counterparty_id, status, bill_type, invoice_number, bill_date, due_date,
			net, gst, currency, foreign_amount, exchange_rate, fx_fixed, fx_fixed_at, document_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`,
		b.CounterpartyID, b.Status, b.Type, b.InvoiceNumber, b.Date, b.DueDate,
		b.Net, b.GST, b.Currency, b.ForeignAmount, b.ExchangeRate, b.FXFixed, b.FXFixedAt, b.DocumentPath,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return mapWriteErr("creating bill", err)
	}

	if err := insertAllocations(ctx, dbTx, b); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Update serialises concurrent edits of one bill on its row lock; the last commit wins.
func (s *Store) Update(ctx context.Context, id uuid.UUID, fn func(b *bill.Bill) error) (*bill.Bill, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	var locked uuid.UUID
	if err := dbTx.QueryRowContext(ctx, `SELECT id FROM bills WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("locking bill: %w", err)
	}

	bills, err := queryBills(ctx, dbTx, "WHERE b.id = $1", id)
	if err != nil {
		return nil, err
	}

	b := bills[0]
	if err := fn(b); err != nil {
		return nil, err
	}

	err = dbTx.QueryRowContext(ctx, `
		UPDATE bills
		SET counterparty_id = $1, bill_type = $2, invoice_number = $3, bill_date = $4, due_date = $5,
			net = $6, gst = $7, currency = $8, foreign_amount = $9, exchange_rate = $10,
			fx_fixed = $11, fx_fixed_at = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at`,
		b.CounterpartyID, b.Type, b.InvoiceNumber, b.Date, b.DueDate,
		b.Net, b.GST, b.Currency, b.ForeignAmount, b.ExchangeRate,
		b.FXFixed, b.FXFixedAt, b.ID,
	).Scan(&b.UpdatedAt)
	if err != nil {
		return nil, mapWriteErr("updating bill", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM bill_allocations WHERE bill_id = $1`, b.ID); err != nil {
		return nil, fmt.Errorf("deleting allocations: %w", err)
	}

	if err := insertAllocations(ctx, dbTx, b); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return b, nil
}

func insertAllocations(ctx context.Context, dbTx *sql.Tx, b *bill.Bill) error {
	for i := range b.Allocations {
		a := &b.Allocations[i]

		err := dbTx.QueryRowContext(ctx, `
			INSERT INTO bill_allocations (bill_id, cost_line_id, amount, gst, note, allocation_type, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			b.ID, a.CostLineID, a.Amount, a.GST, a.Note, a.Type, i,
		).Scan(&a.ID)
		if err != nil {
			return mapWriteErr("creating allocation", err)
		}
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	return s.exec(ctx, "deleting bill", `DELETE FROM bills WHERE id = $1`, id)
}

func (s *Store) SetStatus(ctx context.Context, id uuid.UUID, status bill.Status) error {
	return s.exec(ctx, "setting bill status", `UPDATE bills SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
}

func (s *Store) SetDocument(ctx context.Context, id uuid.UUID, path string) error {
	return s.exec(ctx, "setting bill document", `UPDATE bills SET document_path = $1, updated_at = NOW() WHERE id = $2`, path, id)
}

func (s *Store) MarkSent(ctx context.Context, id uuid.UUID, xeroInvoiceID string) error {
	return s.exec(ctx, "marking bill sent", `
		UPDATE bills SET status = $1, xero_invoice_id = $2, updated_at = NOW() WHERE id = $3`,
		bill.StatusSent, xeroInvoiceID, id)
}

// FixRate only applies to bills whose rate is still floating.
func (s *Store) FixRate(ctx context.Context, id uuid.UUID, rate, net decimal.Decimal, at time.Time) error {
	return s.exec(ctx, "fixing exchange rate", `
		UPDATE bills
		SET exchange_rate = $1, net = $2, fx_fixed = TRUE, fx_fixed_at = $3, updated_at = NOW()
		WHERE id = $4 AND fx_fixed = FALSE`,
		rate, net, at, id)
}

func (s *Store) exec(ctx context.Context, op, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return bill.ErrNotFound
	}

	return nil
}

func mapWriteErr(op string, err error) error {
	if database.IsForeignKeyViolation(err) {
		return bill.ErrUnknownReference
	}

	return fmt.Errorf("%s: %w", op, err)
}
