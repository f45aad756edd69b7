package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/youone-its/bookstore-backend/internal/logger"
	"github.com/youone-its/bookstore-backend/internal/models"
)

// GenreReadRepository handles genre read operations. Every query filters out
// soft-deleted rows; historical joins happen in the order repository.
type GenreReadRepository struct {
	db *sqlx.DB
}

func NewGenreReadRepository(db *sqlx.DB) *GenreReadRepository {
	return &GenreReadRepository{db: db}
}

// GetByID returns the non-deleted genre with its active book count,
// or nil when none exists.
func (r *GenreReadRepository) GetByID(ctx context.Context, id int64) (*models.GenreWithCountDB, error) {
	const query = `
		SELECT g.id, g.name, g.created_at, g.deleted_at,
		       COUNT(b.id) AS book_count
		FROM genres g
		LEFT JOIN books b ON b.genre_id = g.id AND b.deleted_at IS NULL
		WHERE g.id = $1 AND g.deleted_at IS NULL
		GROUP BY g.id
	`

	var genre models.GenreWithCountDB
	err := r.db.GetContext(ctx, &genre, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &genre, nil
}

// GetByName returns the non-deleted genre with the given name, optionally
// excluding one id (for rename duplicate checks). Nil when none exists.
func (r *GenreReadRepository) GetByName(ctx context.Context, name string, excludeID *int64) (*models.GenreDB, error) {
	const query = `
		SELECT id, name, created_at, deleted_at
		FROM genres
		WHERE name = $1
		  AND deleted_at IS NULL
		  AND ($2::BIGINT IS NULL OR id <> $2)
	`

	var genre models.GenreDB
	err := r.db.GetContext(ctx, &genre, query, name, excludeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, excludeID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &genre, nil
}

// ListWithBookCounts returns all non-deleted genres, newest first, each with
// its count of non-deleted books.
func (r *GenreReadRepository) ListWithBookCounts(ctx context.Context) ([]models.GenreWithCountDB, error) {
	const query = `
		SELECT g.id, g.name, g.created_at, g.deleted_at,
		       COUNT(b.id) AS book_count
		FROM genres g
		LEFT JOIN books b ON b.genre_id = g.id AND b.deleted_at IS NULL
		WHERE g.deleted_at IS NULL
		GROUP BY g.id
		ORDER BY g.created_at DESC
	`

	var genres []models.GenreWithCountDB
	err := r.db.SelectContext(ctx, &genres, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(genres),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return genres, nil
}

// GenreWriteRepository handles genre write operations.
type GenreWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGenreWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GenreWriteRepository {
	return &GenreWriteRepository{db: db, txGetter: txGetter}
}

func (r *GenreWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new genre and returns the created row.
func (r *GenreWriteRepository) Save(ctx context.Context, name string) (*models.GenreDB, error) {
	const query = `
		INSERT INTO genres (name, created_at)
		VALUES ($1, NOW())
		RETURNING id, name, created_at, deleted_at
	`

	var genre models.GenreDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &genre, query, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &genre, nil
}

// Update renames a non-deleted genre and returns the updated row,
// or nil when the genre does not exist.
func (r *GenreWriteRepository) Update(ctx context.Context, id int64, name string) (*models.GenreDB, error) {
	const query = `
		UPDATE genres
		SET name = $2
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, name, created_at, deleted_at
	`

	var genre models.GenreDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &genre, query, id, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &genre, nil
}

// SoftDelete marks a non-deleted genre as deleted. Returns false when the
// genre does not exist.
func (r *GenreWriteRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	const query = `
		UPDATE genres
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
