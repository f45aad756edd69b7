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

// OrderReadRepository handles order read operations. Line items join their
// book and genre without the non-deleted predicate: orders are history and
// must keep resolving after catalog soft deletes.
type OrderReadRepository struct {
	db *sqlx.DB
}

func NewOrderReadRepository(db *sqlx.DB) *OrderReadRepository {
	return &OrderReadRepository{db: db}
}

// ListByUserID returns the user's orders, most recent first.
func (r *OrderReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.OrderDB, error) {
	const query = `
		SELECT id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var orders []models.OrderDB
	err := r.db.SelectContext(ctx, &orders, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(orders),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// ListAll returns every order in the system, for statistics.
func (r *OrderReadRepository) ListAll(ctx context.Context) ([]models.OrderDB, error) {
	const query = `
		SELECT id, user_id, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	var orders []models.OrderDB
	err := r.db.SelectContext(ctx, &orders, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(orders),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// GetByIDAndUserID returns the order only when it belongs to the user,
// nil otherwise.
func (r *OrderReadRepository) GetByIDAndUserID(ctx context.Context, id, userID int64) (*models.OrderDB, error) {
	const query = `
		SELECT id, user_id, created_at
		FROM orders
		WHERE id = $1 AND user_id = $2
	`

	var order models.OrderDB
	err := r.db.GetContext(ctx, &order, query, id, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListItemsByOrderIDs returns the line items of the given orders, joined with
// book and genre, in insertion order per order.
func (r *OrderReadRepository) ListItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]models.OrderItemRowDB, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT oi.id, oi.order_id, oi.book_id, oi.quantity, oi.price,
		       b.title, b.writer, b.publisher, b.publication_year,
		       b.price AS book_price, b.genre_id, b.created_at AS book_created_at,
		       g.name AS genre_name, g.created_at AS genre_created_at
		FROM order_items oi
		JOIN books b ON b.id = oi.book_id
		JOIN genres g ON g.id = b.genre_id
		WHERE oi.order_id IN (?)
		ORDER BY oi.order_id, oi.id
	`, orderIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var items []models.OrderItemRowDB
	err = r.db.SelectContext(ctx, &items, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result_count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

// OrderWriteRepository handles order write operations. It always runs inside
// the ambient request transaction when one is present.
type OrderWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOrderWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OrderWriteRepository {
	return &OrderWriteRepository{db: db, txGetter: txGetter}
}

func (r *OrderWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// OrderItemInsert carries one requested line with the price captured at
// validation time.
type OrderItemInsert struct {
	BookID   int64
	Quantity int
	Price    float64
}

// Save creates an order and its line items in request order, returning the
// order row and the created items.
func (r *OrderWriteRepository) Save(ctx context.Context, userID int64, items []OrderItemInsert) (*models.OrderDB, []models.OrderItemDB, error) {
	const orderQuery = `
		INSERT INTO orders (user_id, created_at)
		VALUES ($1, NOW())
		RETURNING id, user_id, created_at
	`

	executor := r.executor(ctx)

	var order models.OrderDB
	err := sqlx.GetContext(ctx, executor, &order, orderQuery, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(orderQuery), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, nil, err
	}

	const itemQuery = `
		INSERT INTO order_items (order_id, book_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, book_id, quantity, price
	`

	created := make([]models.OrderItemDB, 0, len(items))
	for _, item := range items {
		var row models.OrderItemDB
		err := sqlx.GetContext(ctx, executor, &row, itemQuery, order.ID, item.BookID, item.Quantity, item.Price)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(itemQuery), " "),
			"args", []any{order.ID, item.BookID, item.Quantity, item.Price},
			"error", err,
		)

		if err != nil {
			return nil, nil, err
		}
		created = append(created, row)
	}

	return &order, created, nil
}
