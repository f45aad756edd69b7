package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/repositories"
	"github.com/youone-its/bookstore-backend/internal/services"
	"github.com/youone-its/bookstore-backend/internal/validator"
)

// Publication years are bounded to a sane horizon.
const (
	minPublicationYear = 1000
	maxPublicationYear = 2100
)

// BookCreator defines the interface that the service must implement.
type BookCreator interface {
	Create(ctx context.Context, in repositories.BookInsert) (*models.Book, error)
}

// CreateBookRequest represents the JSON body for book creation
// swagger:model CreateBookRequest
type CreateBookRequest struct {
	// Title, unique among non-deleted books
	// required: true
	// example: The Dispossessed
	Title string `json:"title"`

	// Author name
	// required: true
	// example: Ursula K. Le Guin
	Writer string `json:"writer"`

	// Publishing company
	// required: true
	// example: Harper & Row
	Publisher string `json:"publisher"`

	// Year of publication
	// required: true
	// example: 1974
	PublicationYear int `json:"publication_year"`

	// Optional description
	Description *string `json:"description,omitempty"`

	// Positive unit price
	// required: true
	// example: 12.5
	Price float64 `json:"price"`

	// Non-negative stock quantity
	// required: true
	// example: 10
	StockQuantity int `json:"stock_quantity"`

	// Genre the book belongs to
	// required: true
	// example: 1
	GenreID int64 `json:"genre_id"`
}

func (req *CreateBookRequest) validate() *validator.Validator {
	v := validator.New()
	v.Check(req.Title != "", "title", "must be provided")
	v.Check(req.Writer != "", "writer", "must be provided")
	v.Check(req.Publisher != "", "publisher", "must be provided")
	v.Check(req.PublicationYear >= minPublicationYear, "publication_year", "must be at least 1000")
	v.Check(req.PublicationYear <= maxPublicationYear, "publication_year", "must not be after 2100")
	v.Check(req.Price > 0, "price", "must be positive")
	v.Check(req.StockQuantity >= 0, "stock_quantity", "must not be negative")
	v.Check(req.GenreID >= 1, "genre_id", "must be a valid genre id")
	return v
}

// NewBookCreateHandler returns an HTTP handler for book creation.
// @Summary Create a book
// @Description Creates a new book. The title must be unique among non-deleted books and the genre must exist.
// @Tags books
// @Accept json
// @Produce json
// @Param createBookRequest body handlers.CreateBookRequest true "Book creation request"
// @Success 201 {object} handlers.APIResponse "Book created"
// @Failure 400 {object} handlers.APIResponse "Duplicate title or validation error"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Failure 404 {object} handlers.APIResponse "Genre not found"
// @Router /books [post]
// @Security BearerAuth
func NewBookCreateHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBookRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if v := req.validate(); !v.Valid() {
			writeValidationErrors(w, v.Errors)
			return
		}

		book, err := svc.Create(r.Context(), repositories.BookInsert{
			Title:           req.Title,
			Writer:          req.Writer,
			Publisher:       req.Publisher,
			PublicationYear: req.PublicationYear,
			Description:     req.Description,
			Price:           req.Price,
			StockQuantity:   req.StockQuantity,
			GenreID:         req.GenreID,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookTitleTaken):
				writeError(w, http.StatusBadRequest, "Book with this title already exists")
			case errors.Is(err, services.ErrGenreNotFound):
				writeError(w, http.StatusNotFound, "Genre not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeData(w, http.StatusCreated, "Book created successfully", book)
	}
}
