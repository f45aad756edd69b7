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

// BookFilter narrows and orders book listings.
type BookFilter struct {
	GenreID *int64 // scope to one genre when set
	Search  string // case-insensitive substring over title and writer
	SortBy  string // one of "title", "publication_year", "price"; anything else sorts by created_at desc
	Limit   int
	Offset  int
}

// sortClauses whitelists the ORDER BY expression per sort key so user input
// never reaches the SQL text.
var sortClauses = map[string]string{
	"title":            "b.title ASC",
	"publication_year": "b.publication_year DESC",
	"price":            "b.price ASC",
}

func orderClause(sortBy string) string {
	if clause, ok := sortClauses[sortBy]; ok {
		return clause
	}
	return "b.created_at DESC"
}

// BookReadRepository handles book read operations. Books are always read
// among non-deleted rows; the joined genre is resolved even when it has been
// soft-deleted since, so historical references keep working.
type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

const bookColumns = `
	b.id, b.title, b.writer, b.publisher, b.publication_year, b.description,
	b.price, b.stock_quantity, b.genre_id, b.created_at, b.deleted_at,
	g.name AS genre_name, g.created_at AS genre_created_at
`

// GetByID returns the non-deleted book with its genre, or nil when none exists.
func (r *BookReadRepository) GetByID(ctx context.Context, id int64) (*models.BookWithGenreDB, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books b
		JOIN genres g ON g.id = b.genre_id
		WHERE b.id = $1 AND b.deleted_at IS NULL
	`

	var book models.BookWithGenreDB
	err := r.db.GetContext(ctx, &book, query, id)

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

	return &book, nil
}

// GetByTitle returns the non-deleted book with the given title, optionally
// excluding one id (for update duplicate checks). Nil when none exists.
func (r *BookReadRepository) GetByTitle(ctx context.Context, title string, excludeID *int64) (*models.BookDB, error) {
	const query = `
		SELECT id, title, writer, publisher, publication_year, description,
		       price, stock_quantity, genre_id, created_at, deleted_at
		FROM books
		WHERE title = $1
		  AND deleted_at IS NULL
		  AND ($2::BIGINT IS NULL OR id <> $2)
	`

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, title, excludeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, excludeID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// List returns one page of non-deleted books matching the filter, joined with
// their genres.
func (r *BookReadRepository) List(ctx context.Context, filter BookFilter) ([]models.BookWithGenreDB, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books b
		JOIN genres g ON g.id = b.genre_id
		WHERE b.deleted_at IS NULL
		  AND ($1::BIGINT IS NULL OR b.genre_id = $1)
		  AND ($2::VARCHAR = '' OR b.title ILIKE '%' || $2 || '%' OR b.writer ILIKE '%' || $2 || '%')
		ORDER BY ` + orderClause(filter.SortBy) + `
		LIMIT $3 OFFSET $4
	`

	var books []models.BookWithGenreDB
	err := r.db.SelectContext(ctx, &books, query, filter.GenreID, filter.Search, filter.Limit, filter.Offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{filter.GenreID, filter.Search, filter.Limit, filter.Offset},
		"result_count", len(books),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return books, nil
}

// Count returns the number of non-deleted books matching the filter.
func (r *BookReadRepository) Count(ctx context.Context, filter BookFilter) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM books b
		WHERE b.deleted_at IS NULL
		  AND ($1::BIGINT IS NULL OR b.genre_id = $1)
		  AND ($2::VARCHAR = '' OR b.title ILIKE '%' || $2 || '%' OR b.writer ILIKE '%' || $2 || '%')
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, filter.GenreID, filter.Search)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{filter.GenreID, filter.Search},
		"result", total,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return total, nil
}

// BookWriteRepository handles book write operations.
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// BookInsert carries the fields of a new book.
type BookInsert struct {
	Title           string
	Writer          string
	Publisher       string
	PublicationYear int
	Description     *string
	Price           float64
	StockQuantity   int
	GenreID         int64
}

// Save inserts a new book and returns the created row.
func (r *BookWriteRepository) Save(ctx context.Context, in BookInsert) (*models.BookDB, error) {
	const query = `
		INSERT INTO books (title, writer, publisher, publication_year, description,
		                   price, stock_quantity, genre_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, title, writer, publisher, publication_year, description,
		          price, stock_quantity, genre_id, created_at, deleted_at
	`
	args := []any{in.Title, in.Writer, in.Publisher, in.PublicationYear, in.Description,
		in.Price, in.StockQuantity, in.GenreID}

	var book models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &book, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &book, nil
}

// BookUpdate carries the optional fields of a partial book update. Nil fields
// keep their current value.
type BookUpdate struct {
	Title           *string
	Writer          *string
	Publisher       *string
	PublicationYear *int
	Description     *string
	Price           *float64
	StockQuantity   *int
	GenreID         *int64
}

// Update applies a partial update to a non-deleted book and returns the
// updated row, or nil when the book does not exist.
func (r *BookWriteRepository) Update(ctx context.Context, id int64, in BookUpdate) (*models.BookDB, error) {
	const query = `
		UPDATE books
		SET title            = COALESCE($2::VARCHAR, title),
		    writer           = COALESCE($3::VARCHAR, writer),
		    publisher        = COALESCE($4::VARCHAR, publisher),
		    publication_year = COALESCE($5::INT, publication_year),
		    description      = COALESCE($6::TEXT, description),
		    price            = COALESCE($7::NUMERIC, price),
		    stock_quantity   = COALESCE($8::INT, stock_quantity),
		    genre_id         = COALESCE($9::BIGINT, genre_id)
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, title, writer, publisher, publication_year, description,
		          price, stock_quantity, genre_id, created_at, deleted_at
	`
	args := []any{id, in.Title, in.Writer, in.Publisher, in.PublicationYear,
		in.Description, in.Price, in.StockQuantity, in.GenreID}

	var book models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &book, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// SoftDelete marks a non-deleted book as deleted. Returns false when the book
// does not exist.
func (r *BookWriteRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	const query = `
		UPDATE books
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

// DecrementStock atomically subtracts quantity from a book's stock, guarded
// so stock never goes negative. Returns false when the guard rejects the
// update (insufficient stock or unknown book), which must fail the enclosing
// transaction.
func (r *BookWriteRepository) DecrementStock(ctx context.Context, id int64, quantity int) (bool, error) {
	const query = `
		UPDATE books
		SET stock_quantity = stock_quantity - $2
		WHERE id = $1 AND deleted_at IS NULL AND stock_quantity >= $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, quantity)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, quantity},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
