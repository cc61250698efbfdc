package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/library"
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

func scanDocument(s scanner) (*library.Document, error) {
	var d library.Document
	if err := s.Scan(&d.ID, &d.Kind, &d.Title, &d.Path, &d.URL, &d.UploadedAt); err != nil {
		return nil, err
	}

	return &d, nil
}

const selectColumns = `id, kind, title, path, url, uploaded_at`

func (s *Store) List(ctx context.Context, kind library.Kind) ([]*library.Document, error) {
	query := `SELECT ` + selectColumns + ` FROM documents`

	var args []any
	if kind != "" {
		query += ` WHERE kind = $1`

		args = append(args, kind)
	}

	query += ` ORDER BY uploaded_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*library.Document

	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		docs = append(docs, d)
	}

	return docs, rows.Err()
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*library.Document, error) {
	d, err := scanDocument(s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM documents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, library.ErrNotFound
		}

		return nil, fmt.Errorf("getting document: %w", err)
	}

	return d, nil
}

func (s *Store) Create(ctx context.Context, d *library.Document) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO documents (kind, title, path, url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uploaded_at`,
		d.Kind, d.Title, d.Path, d.URL,
	).Scan(&d.ID, &d.UploadedAt)
	if err != nil {
		return fmt.Errorf("creating document: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return library.ErrNotFound
	}

	return nil
}
