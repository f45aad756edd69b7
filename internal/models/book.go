package models

import "time"

// BookDB represents a book row in the database.
type BookDB struct {
	ID              int64      `db:"id"`               // Primary key
	Title           string     `db:"title"`            // Unique among non-deleted rows
	Writer          string     `db:"writer"`           // Author name
	Publisher       string     `db:"publisher"`        // Publishing company
	PublicationYear int        `db:"publication_year"` // Year of publication
	Description     *string    `db:"description"`      // Optional description
	Price           float64    `db:"price"`            // Positive unit price
	StockQuantity   int        `db:"stock_quantity"`   // Never negative
	GenreID         int64      `db:"genre_id"`         // References genres.id
	CreatedAt       time.Time  `db:"created_at"`       // Creation timestamp
	DeletedAt       *time.Time `db:"deleted_at"`       // Soft-delete marker, NULL when active
}

// BookWithGenreDB is a book row joined with its genre. The genre is joined
// without the non-deleted predicate so historical references keep resolving.
type BookWithGenreDB struct {
	BookDB
	GenreName      string    `db:"genre_name"`
	GenreCreatedAt time.Time `db:"genre_created_at"`
}

// Book is the API shape of a book, with its genre nested.
type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Writer          string    `json:"writer"`
	Publisher       string    `json:"publisher"`
	PublicationYear int       `json:"publication_year"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	StockQuantity   int       `json:"stock_quantity"`
	GenreID         int64     `json:"genre_id"`
	CreatedAt       time.Time `json:"created_at"`
	Genre           *Genre    `json:"genre,omitempty"`
}

// ToBook converts a joined row to its API shape.
func (b *BookWithGenreDB) ToBook() *Book {
	return &Book{
		ID:              b.ID,
		Title:           b.Title,
		Writer:          b.Writer,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		Description:     b.Description,
		Price:           b.Price,
		StockQuantity:   b.StockQuantity,
		GenreID:         b.GenreID,
		CreatedAt:       b.CreatedAt,
		Genre: &Genre{
			ID:        b.GenreID,
			Name:      b.GenreName,
			CreatedAt: b.GenreCreatedAt,
		},
	}
}
