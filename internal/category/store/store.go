package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/category"
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

func scanCostLine(s scanner) (*category.CostLine, error) {
	var l category.CostLine
	if err := s.Scan(&l.ID, &l.CategoryID, &l.Name, &l.Budget, &l.Uncommitted, &l.CreatedAt); err != nil {
		return nil, err
	}

	return &l, nil
}

const selectCostLineColumns = `id, category_id, name, budget, uncommitted, created_at`

func (s *Store) ListCategories(ctx context.Context) ([]*category.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, sort_order, created_at
		FROM categories
		ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []*category.Category

	byID := make(map[uuid.UUID]*category.Category)

	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Order, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, &c)
		byID[c.ID] = &c
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	lineRows, err := s.db.QueryContext(ctx, `SELECT `+selectCostLineColumns+` FROM cost_lines ORDER BY name, created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing cost lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		l, err := scanCostLine(lineRows)
		if err != nil {
			return nil, fmt.Errorf("scanning cost line: %w", err)
		}

		if c, ok := byID[l.CategoryID]; ok {
			c.Lines = append(c.Lines, l)
		}
	}

	if err := lineRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cost lines: %w", err)
	}

	return cats, nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var c category.Category

	err := s.db.QueryRowContext(ctx, `SELECT id, name, sort_order, created_at FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Order, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, sort_order)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		c.Name, c.Order,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *category.Category) error {
	res, err := s.db.ExecContext(ctx, `UPDATE categories SET name = $1, sort_order = $2 WHERE id = $3`, c.Name, c.Order, c.ID)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	return affected(res, category.ErrNotFound)
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return affected(res, category.ErrNotFound)
}

func (s *Store) GetCostLine(ctx context.Context, id uuid.UUID) (*category.CostLine, error) {
	l, err := scanCostLine(s.db.QueryRowContext(ctx, `SELECT `+selectCostLineColumns+` FROM cost_lines WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrCostLineNotFound
		}

		return nil, fmt.Errorf("getting cost line: %w", err)
	}

	return l, nil
}

func (s *Store) CreateCostLine(ctx context.Context, l *category.CostLine) error {
	return insertCostLine(ctx, s.db, l)
}

// UpdateCostLine shifts the stored uncommitted balance by the budget change.
func (s *Store) UpdateCostLine(ctx context.Context, l *category.CostLine) error {
	err := s.db.QueryRowContext(ctx, `
		UPDATE cost_lines
		SET category_id = $1, name = $2, budget = $3, uncommitted = uncommitted + ($3 - budget)
		WHERE id = $4
		RETURNING uncommitted`,
		l.CategoryID, l.Name, l.Budget, l.ID,
	).Scan(&l.Uncommitted)
	if errors.Is(err, sql.ErrNoRows) {
		return category.ErrCostLineNotFound
	}

	if err != nil {
		return fmt.Errorf("updating cost line: %w", err)
	}

	return nil
}

func (s *Store) DeleteCostLine(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cost_lines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting cost line: %w", err)
	}

	return affected(res, category.ErrCostLineNotFound)
}

// SetUncommitted resets every line to its budget, then subtracts committed cost.
func (s *Store) SetUncommitted(ctx context.Context, committed map[uuid.UUID]decimal.Decimal) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `UPDATE cost_lines SET uncommitted = budget`); err != nil {
		return fmt.Errorf("resetting uncommitted: %w", err)
	}

	for id, amount := range committed {
		if _, err := dbTx.ExecContext(ctx, `UPDATE cost_lines SET uncommitted = budget - $1 WHERE id = $2`, amount, id); err != nil {
			return fmt.Errorf("updating uncommitted: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// replaceLockKey serialises concurrent bulk uploads.
const replaceLockKey = 7_314_001

type replaceTx struct {
	tx *sql.Tx
}

func (s *Store) BeginReplace(ctx context.Context) (category.ReplaceTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning replace tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", replaceLockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring replace lock: %w", err)
	}

	return &replaceTx{tx: dbTx}, nil
}

func (rtx *replaceTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *replaceTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *replaceTx) DeleteAllCategories(ctx context.Context) error {
	if _, err := rtx.tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("deleting categories: %w", err)
	}

	return nil
}

func (rtx *replaceTx) DeleteAllCostLines(ctx context.Context) error {
	if _, err := rtx.tx.ExecContext(ctx, `DELETE FROM cost_lines`); err != nil {
		return fmt.Errorf("deleting cost lines: %w", err)
	}

	return nil
}

func (rtx *replaceTx) CreateCategories(ctx context.Context, cs []*category.Category) error {
	for _, c := range cs {
		err := rtx.tx.QueryRowContext(ctx, `
			INSERT INTO categories (name, sort_order)
			VALUES ($1, $2)
			RETURNING id, created_at`,
			c.Name, c.Order,
		).Scan(&c.ID, &c.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating category: %w", err)
		}
	}

	return nil
}

func (rtx *replaceTx) CategoryIDsByName(ctx context.Context) (map[string]uuid.UUID, error) {
	rows, err := rtx.tx.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]uuid.UUID)

	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)

		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		// First category wins on duplicate names.
		if _, ok := ids[name]; !ok {
			ids[name] = id
		}
	}

	return ids, rows.Err()
}

func (rtx *replaceTx) CreateCostLines(ctx context.Context, ls []*category.CostLine) error {
	for _, l := range ls {
		if err := insertCostLine(ctx, rtx.tx, l); err != nil {
			return err
		}
	}

	return nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertCostLine(ctx context.Context, q queryRower, l *category.CostLine) error {
	err := q.QueryRowContext(ctx, `
		INSERT INTO cost_lines (category_id, name, budget, uncommitted)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		l.CategoryID, l.Name, l.Budget, l.Uncommitted,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating cost line: %w", err)
	}

	return nil
}

func affected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return notFound
	}

	return nil
}
