// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package bookmark

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haminhduc/linkmark/internal/platform/apperr"
	"github.com/haminhduc/linkmark/internal/platform/dberr"
)

// PostgresStore implements the [Store] interface using pgx.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE unique violations) are
// mapped to domain-friendly [apperr.AppError] values via the dberr bridge,
// so callers never see driver internals.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates the PostgreSQL implementation of [Store].
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// filterClause is the shared WHERE predicate for List and Count. Both
// queries must agree on it or the pagination headers lie about the totals.
const filterClause = `
		(cardinality($1::text[]) = 0 OR tags @> $1::text[])
		AND ($2 = '' OR title ILIKE '%' || $2 || '%')`

// Create persists a new bookmark row.
func (store *PostgresStore) Create(ctx context.Context, bookmark *Bookmark) error {
	const query = `
		INSERT INTO bookmarks (id, title, url, tags, notes, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = now
	}
	bookmark.UpdatedAt = now

	_, err := store.pool.Exec(ctx, query,
		bookmark.ID,
		bookmark.Title,
		bookmark.URL,
		bookmark.Tags,
		bookmark.Notes,
		bookmark.CreatedAt,
		bookmark.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "A bookmark with this URL already exists")
	}

	return nil
}

// FindByID retrieves a bookmark by its UUID.
//
// # Returns
//
// Returns [*Bookmark] if found, or [apperr.NotFound] if no row exists.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Bookmark, error) {
	const query = `
		SELECT id, title, url, tags, notes, createdat, updatedat
		FROM bookmarks
		WHERE id = $1`

	bookmark := &Bookmark{}
	err := store.pool.QueryRow(ctx, query, id).Scan(
		&bookmark.ID,
		&bookmark.Title,
		&bookmark.URL,
		&bookmark.Tags,
		&bookmark.Notes,
		&bookmark.CreatedAt,
		&bookmark.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Bookmark")
		}
		return nil, fmt.Errorf("postgres_bookmark_find_failed: %w", err)
	}

	return bookmark, nil
}

// List returns one page of bookmarks matching the filter, newest first.
//
// Ordering by the time-sortable UUIDv7 primary key keeps pagination stable
// without a separate created-at index.
func (store *PostgresStore) List(ctx context.Context, filter Filter, limit, offset int) ([]Bookmark, error) {
	query := `
		SELECT id, title, url, tags, notes, createdat, updatedat
		FROM bookmarks
		WHERE ` + filterClause + `
		ORDER BY id DESC
		LIMIT $3 OFFSET $4`

	rows, err := store.pool.Query(ctx, query, tagsParam(filter), filter.Search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("postgres_bookmark_list_failed: %w", err)
	}
	defer rows.Close()

	bookmarks := make([]Bookmark, 0, limit)
	for rows.Next() {
		var bookmark Bookmark
		if err := rows.Scan(
			&bookmark.ID,
			&bookmark.Title,
			&bookmark.URL,
			&bookmark.Tags,
			&bookmark.Notes,
			&bookmark.CreatedAt,
			&bookmark.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_bookmark_scan_failed: %w", err)
		}
		bookmarks = append(bookmarks, bookmark)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_bookmark_rows_failed: %w", err)
	}

	return bookmarks, nil
}

// Count returns the total number of bookmarks matching the filter.
func (store *PostgresStore) Count(ctx context.Context, filter Filter) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookmarks
		WHERE ` + filterClause

	var total int
	if err := store.pool.QueryRow(ctx, query, tagsParam(filter), filter.Search).Scan(&total); err != nil {
		return 0, fmt.Errorf("postgres_bookmark_count_failed: %w", err)
	}

	return total, nil
}

// Delete removes one bookmark row.
//
// # Returns
//
// Returns [apperr.NotFound] when no row matched the ID.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM bookmarks WHERE id = $1`

	tag, err := store.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_bookmark_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Bookmark")
	}

	return nil
}

// tagsParam never passes a nil slice so the cardinality() guard in the
// filter clause sees an empty array instead of NULL.
func tagsParam(filter Filter) []string {
	if filter.Tags == nil {
		return []string{}
	}
	return filter.Tags
}
