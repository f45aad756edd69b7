package models

import "time"

// GenreDB represents a genre row in the database.
type GenreDB struct {
	ID        int64      `db:"id"`         // Primary key
	Name      string     `db:"name"`       // Unique among non-deleted rows
	CreatedAt time.Time  `db:"created_at"` // Creation timestamp
	DeletedAt *time.Time `db:"deleted_at"` // Soft-delete marker, NULL when active
}

// GenreWithCountDB is a genre row annotated with its active book count.
type GenreWithCountDB struct {
	GenreDB
	BookCount int64 `db:"book_count"`
}

// Genre is the API shape of a genre. BookCount is present on genre
// endpoints and omitted when a genre is nested inside a book.
type Genre struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	BookCount *int64    `json:"book_count,omitempty"`
}

// ToGenre converts a database row to its API shape.
func (g *GenreDB) ToGenre() *Genre {
	return &Genre{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
}

// ToGenre converts an annotated row to its API shape, keeping the book count.
func (g *GenreWithCountDB) ToGenre() *Genre {
	genre := g.GenreDB.ToGenre()
	count := g.BookCount
	genre.BookCount = &count
	return genre
}
