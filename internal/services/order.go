package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/youone-its/bookstore-backend/internal/logger"
	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/repositories"
)

var (
	ErrOrderNotFound = errors.New("transaction not found")
)

// BookNotFoundError identifies the offending reference when an order names an
// unknown or soft-deleted book.
type BookNotFoundError struct {
	BookID int64
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("book with id %d not found", e.BookID)
}

// InsufficientStockError names the book and its available quantity when an
// order asks for more than is in stock.
type InsufficientStockError struct {
	Title     string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for book %q: available %d", e.Title, e.Available)
}

// OrderReader defines read-only operations for orders.
type OrderReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.OrderDB, error)
	ListAll(ctx context.Context) ([]models.OrderDB, error)
	GetByIDAndUserID(ctx context.Context, id, userID int64) (*models.OrderDB, error)
	ListItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]models.OrderItemRowDB, error)
}

// OrderWriter defines write operations for orders.
type OrderWriter interface {
	Save(ctx context.Context, userID int64, items []repositories.OrderItemInsert) (*models.OrderDB, []models.OrderItemDB, error)
}

// StockWriter decrements book stock with a non-negative guard.
type StockWriter interface {
	DecrementStock(ctx context.Context, id int64, quantity int) (bool, error)
}

// StatisticsCache caches computed statistics between order creations.
type StatisticsCache interface {
	Get(ctx context.Context) (*models.Statistics, error)
	Set(ctx context.Context, stats *models.Statistics) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	BookID   int64
	Quantity int
}

// OrderService handles order placement, listing, detail, and statistics.
type OrderService struct {
	orderReader OrderReader
	orderWriter OrderWriter
	bookReader  BookReader
	stockWriter StockWriter
	statsCache  StatisticsCache
	kafkaWriter KafkaWriter
}

// NewOrderService creates a new OrderService. The cache and Kafka writer may
// be nil, in which case caching and event publishing are skipped.
func NewOrderService(
	orderReader OrderReader,
	orderWriter OrderWriter,
	bookReader BookReader,
	stockWriter StockWriter,
	statsCache StatisticsCache,
	kafkaWriter KafkaWriter,
) *OrderService {
	return &OrderService{
		orderReader: orderReader,
		orderWriter: orderWriter,
		bookReader:  bookReader,
		stockWriter: stockWriter,
		statsCache:  statsCache,
		kafkaWriter: kafkaWriter,
	}
}

// publishOrderCreated publishes an order-created event to Kafka.
func (svc *OrderService) publishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal order event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish order event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("order event published", "event_id", event.EventID, "order_id", event.OrderID)
	}
}

// Create places an order for the given user. Every requested book must exist
// among non-deleted rows and have sufficient stock before anything is
// written; the write path then creates the order with price snapshots and
// decrements stock through a guarded conditional update. The caller wraps the
// whole operation in one database transaction, so a failed decrement aborts
// the order entirely.
func (svc *OrderService) Create(ctx context.Context, userID int64, items []OrderItemRequest) (*models.Order, error) {
	resolved := make([]*models.BookWithGenreDB, 0, len(items))
	for _, item := range items {
		book, err := svc.bookReader.GetByID(ctx, item.BookID)
		if err != nil {
			logger.Log.Errorw("failed to get book", "bookID", item.BookID, "err", err)
			return nil, err
		}
		if book == nil {
			return nil, &BookNotFoundError{BookID: item.BookID}
		}
		resolved = append(resolved, book)
	}

	for i, item := range items {
		if resolved[i].StockQuantity < item.Quantity {
			return nil, &InsufficientStockError{
				Title:     resolved[i].Title,
				Available: resolved[i].StockQuantity,
			}
		}
	}

	inserts := make([]repositories.OrderItemInsert, 0, len(items))
	for i, item := range items {
		inserts = append(inserts, repositories.OrderItemInsert{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    resolved[i].Price,
		})
	}

	order, created, err := svc.orderWriter.Save(ctx, userID, inserts)
	if err != nil {
		logger.Log.Errorw("failed to save order", "userID", userID, "err", err)
		return nil, err
	}

	for i, item := range items {
		ok, err := svc.stockWriter.DecrementStock(ctx, item.BookID, item.Quantity)
		if err != nil {
			logger.Log.Errorw("failed to decrement stock", "bookID", item.BookID, "err", err)
			return nil, err
		}
		if !ok {
			// A concurrent order drained the stock between validation and
			// decrement; the enclosing transaction rolls everything back.
			return nil, &InsufficientStockError{
				Title:     resolved[i].Title,
				Available: resolved[i].StockQuantity,
			}
		}
	}

	result := &models.Order{
		ID:        order.ID,
		UserID:    order.UserID,
		CreatedAt: order.CreatedAt,
		Items:     make([]models.OrderItem, 0, len(created)),
	}
	for i, row := range created {
		item := models.OrderItem{
			ID:       row.ID,
			BookID:   row.BookID,
			Quantity: row.Quantity,
			Price:    row.Price,
			Book:     resolved[i].ToBook(),
		}
		result.Items = append(result.Items, item)
		result.Total += row.Price * float64(row.Quantity)
	}

	if svc.statsCache != nil {
		if err := svc.statsCache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate statistics cache", "error", err)
		}
	}

	svc.publishOrderCreated(ctx, models.OrderCreatedEvent{
		EventID:   uuid.NewString(),
		OrderID:   order.ID,
		UserID:    userID,
		Total:     result.Total,
		Timestamp: time.Now().Unix(),
	})

	return result, nil
}

// assemble joins order rows with their line items and computes totals from
// the per-item price snapshots.
func (svc *OrderService) assemble(ctx context.Context, orders []models.OrderDB) ([]models.Order, error) {
	orderIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	rows, err := svc.orderReader.ListItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		logger.Log.Errorw("failed to list order items", "err", err)
		return nil, err
	}

	itemsByOrder := make(map[int64][]models.OrderItem, len(orders))
	for i := range rows {
		item := rows[i].ToOrderItem()
		itemsByOrder[rows[i].OrderID] = append(itemsByOrder[rows[i].OrderID], item)
	}

	result := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		order := models.Order{
			ID:        o.ID,
			UserID:    o.UserID,
			CreatedAt: o.CreatedAt,
			Items:     itemsByOrder[o.ID],
		}
		for _, item := range order.Items {
			order.Total += item.Price * float64(item.Quantity)
		}
		result = append(result, order)
	}
	return result, nil
}

// List returns the user's orders, most recent first, with totals.
func (svc *OrderService) List(ctx context.Context, userID int64) ([]models.Order, error) {
	orders, err := svc.orderReader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list orders", "userID", userID, "err", err)
		return nil, err
	}

	return svc.assemble(ctx, orders)
}

// Get returns one order, but only when it belongs to the requesting user.
// Orders owned by someone else are reported as not found.
func (svc *OrderService) Get(ctx context.Context, userID, orderID int64) (*models.Order, error) {
	order, err := svc.orderReader.GetByIDAndUserID(ctx, orderID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get order", "orderID", orderID, "err", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	assembled, err := svc.assemble(ctx, []models.OrderDB{*order})
	if err != nil {
		return nil, err
	}
	return &assembled[0], nil
}

// Statistics aggregates sales across all orders system-wide. Genres are
// ranked by total ordered quantity, descending, with ties kept in
// first-encounter order. The result is cached until the next order creation.
func (svc *OrderService) Statistics(ctx context.Context) (*models.Statistics, error) {
	if svc.statsCache != nil {
		if cached, err := svc.statsCache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	orders, err := svc.orderReader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list all orders", "err", err)
		return nil, err
	}

	stats := &models.Statistics{}
	if len(orders) == 0 {
		return stats, nil
	}

	assembled, err := svc.assemble(ctx, orders)
	if err != nil {
		return nil, err
	}

	var totalAmount float64
	type genreCount struct {
		name     string
		quantity int
	}
	counts := make([]genreCount, 0)
	index := make(map[string]int)

	for _, order := range assembled {
		totalAmount += order.Total
		for _, item := range order.Items {
			name := item.Book.Genre.Name
			if i, ok := index[name]; ok {
				counts[i].quantity += item.Quantity
			} else {
				index[name] = len(counts)
				counts = append(counts, genreCount{name: name, quantity: item.Quantity})
			}
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].quantity > counts[j].quantity
	})

	stats.TotalTransactions = len(orders)
	stats.AvgTransaction = math.Round(totalAmount/float64(len(orders))*100) / 100

	if len(counts) > 0 {
		stats.MostPopularGenre = &counts[0].name
		stats.LeastPopularGenre = &counts[len(counts)-1].name
		stats.GenreBreakdown = make(map[string]int, len(counts))
		for _, c := range counts {
			stats.GenreBreakdown[c.name] = c.quantity
		}
	}

	if svc.statsCache != nil {
		if err := svc.statsCache.Set(ctx, stats); err != nil {
			logger.Log.Errorw("failed to cache statistics", "error", err)
		}
	}

	return stats, nil
}
