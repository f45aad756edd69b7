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

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, username, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, username, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

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

	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user and returns the created row.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string, username *string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, password_hash, username, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, email, password_hash, username, created_at, updated_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor, &user, query, email, passwordHash, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, username},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
