package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/accountcode"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindMatch(ctx context.Context, costLineName string) (string, error) {
	query := `
		SELECT account_code
		FROM account_codes
		WHERE $1 ILIKE '%' || pattern || '%'
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var code string

	err := s.db.QueryRowContext(ctx, query, costLineName).Scan(&code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding match: %w", err)
	}

	return code, nil
}

func (s *Store) CreateMapping(ctx context.Context, m *accountcode.Mapping) error {
	query := `
		INSERT INTO account_codes (pattern, account_code, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, m.Pattern, m.AccountCode).Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context) ([]*accountcode.Mapping, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, pattern, account_code, created_at FROM account_codes ORDER BY pattern`)
	if err != nil {
		return nil, fmt.Errorf("listing mappings: %w", err)
	}
	defer rows.Close()

	var ms []*accountcode.Mapping

	for rows.Next() {
		var m accountcode.Mapping
		if err := rows.Scan(&m.ID, &m.Pattern, &m.AccountCode, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning mapping: %w", err)
		}

		ms = append(ms, &m)
	}

	return ms, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM account_codes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting mapping: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return accountcode.ErrNotFound
	}

	return nil
}
