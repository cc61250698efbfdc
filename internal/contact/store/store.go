package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/contact"
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

// Expected column order: id, name, email, division, abn, bsb, account_number, xero_contact_id, created_at, updated_at
func scanCounterparty(s scanner) (*contact.Counterparty, error) {
	var (
		c      contact.Counterparty
		xeroID sql.NullString
	)

	if err := s.Scan(
		&c.ID, &c.Name, &c.Email, &c.Division, &c.ABN, &c.BSB, &c.AccountNumber,
		&xeroID, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.XeroContactID = xeroID.String

	return &c, nil
}

const selectColumns = `id, name, email, division, abn, bsb, account_number, xero_contact_id, created_at, updated_at`

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Store) List(ctx context.Context, filter contact.ListFilter) ([]*contact.Counterparty, error) {
	query := `SELECT ` + selectColumns + ` FROM counterparties`

	var args []any

	if filter.Search != "" {
		query += ` WHERE name ILIKE $1 OR division ILIKE $1`

		args = append(args, "%"+filter.Search+"%")
	}

	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing counterparties: %w", err)
	}
	defer rows.Close()

	var cs []*contact.Counterparty

	for rows.Next() {
		c, err := scanCounterparty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning counterparty: %w", err)
		}

		cs = append(cs, c)
	}

	return cs, rows.Err()
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*contact.Counterparty, error) {
	c, err := scanCounterparty(s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM counterparties WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contact.ErrNotFound
		}

		return nil, fmt.Errorf("getting counterparty: %w", err)
	}

	return c, nil
}

func (s *Store) Create(ctx context.Context, c *contact.Counterparty) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO counterparties (name, email, division, abn, bsb, account_number, xero_contact_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Email, c.Division, c.ABN, c.BSB, c.AccountNumber, nullString(c.XeroContactID),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating counterparty: %w", err)
	}

	return nil
}

func (s *Store) Update(ctx context.Context, c *contact.Counterparty) error {
	err := s.db.QueryRowContext(ctx, `
		UPDATE counterparties
		SET name = $1, email = $2, division = $3, abn = $4, bsb = $5, account_number = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`,
		c.Name, c.Email, c.Division, c.ABN, c.BSB, c.AccountNumber, c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return contact.ErrNotFound
		}

		return fmt.Errorf("updating counterparty: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM counterparties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting counterparty: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return contact.ErrNotFound
	}

	return nil
}

// UpsertByXeroID keeps the local division; everything else follows the accounting system.
func (s *Store) UpsertByXeroID(ctx context.Context, c *contact.Counterparty) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO counterparties (name, email, division, abn, bsb, account_number, xero_contact_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (xero_contact_id) DO UPDATE
		SET name = EXCLUDED.name,
			email = EXCLUDED.email,
			abn = EXCLUDED.abn,
			bsb = EXCLUDED.bsb,
			account_number = EXCLUDED.account_number,
			updated_at = NOW()
		RETURNING id, division, created_at, updated_at`,
		c.Name, c.Email, c.Division, c.ABN, c.BSB, c.AccountNumber, nullString(c.XeroContactID),
	).Scan(&c.ID, &c.Division, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting counterparty: %w", err)
	}

	return nil
}
