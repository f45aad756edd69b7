package models

import "time"

// OrderDB represents an order row in the database.
type OrderDB struct {
	ID        int64     `db:"id"`         // Primary key
	UserID    int64     `db:"user_id"`    // References users.id
	CreatedAt time.Time `db:"created_at"` // Creation timestamp
}

// OrderItemDB represents an order line item row. Price is the book price
// captured at order time.
type OrderItemDB struct {
	ID       int64   `db:"id"`
	OrderID  int64   `db:"order_id"`
	BookID   int64   `db:"book_id"`
	Quantity int     `db:"quantity"`
	Price    float64 `db:"price"`
}

// OrderItemRowDB is a line item joined with its book and genre for listing.
type OrderItemRowDB struct {
	OrderItemDB
	Title           string    `db:"title"`
	Writer          string    `db:"writer"`
	Publisher       string    `db:"publisher"`
	PublicationYear int       `db:"publication_year"`
	BookPrice       float64   `db:"book_price"`
	GenreID         int64     `db:"genre_id"`
	BookCreatedAt   time.Time `db:"book_created_at"`
	GenreName       string    `db:"genre_name"`
	GenreCreatedAt  time.Time `db:"genre_created_at"`
}

// OrderItem is the API shape of a line item, with a snapshot of the book.
type OrderItem struct {
	ID       int64   `json:"id"`
	BookID   int64   `json:"book_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Book     *Book   `json:"book,omitempty"`
}

// Order is the API shape of an order. Total is the sum over line items of
// price-at-purchase times quantity.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"order_items"`
	Total     float64     `json:"total"`
}

// ToOrderItem converts a joined row to its API shape.
func (r *OrderItemRowDB) ToOrderItem() OrderItem {
	return OrderItem{
		ID:       r.ID,
		BookID:   r.BookID,
		Quantity: r.Quantity,
		Price:    r.Price,
		Book: &Book{
			ID:              r.BookID,
			Title:           r.Title,
			Writer:          r.Writer,
			Publisher:       r.Publisher,
			PublicationYear: r.PublicationYear,
			Price:           r.BookPrice,
			GenreID:         r.GenreID,
			CreatedAt:       r.BookCreatedAt,
			Genre: &Genre{
				ID:        r.GenreID,
				Name:      r.GenreName,
				CreatedAt: r.GenreCreatedAt,
			},
		},
	}
}
