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

// BookUpdater defines the interface that the service must implement.
type BookUpdater interface {
	Update(ctx context.Context, id int64, in repositories.BookUpdate) (*models.Book, error)
}

// UpdateBookRequest represents the JSON body for a partial book update.
// Absent fields keep their stored values.
// swagger:model UpdateBookRequest
type UpdateBookRequest struct {
	Title           *string  `json:"title,omitempty"`
	Writer          *string  `json:"writer,omitempty"`
	Publisher       *string  `json:"publisher,omitempty"`
	PublicationYear *int     `json:"publication_year,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	StockQuantity   *int     `json:"stock_quantity,omitempty"`
	GenreID         *int64   `json:"genre_id,omitempty"`
}

func (req *UpdateBookRequest) validate() *validator.Validator {
	v := validator.New()
	if req.Title != nil {
		v.Check(*req.Title != "", "title", "must not be empty")
	}
	if req.Writer != nil {
		v.Check(*req.Writer != "", "writer", "must not be empty")
	}
	if req.Publisher != nil {
		v.Check(*req.Publisher != "", "publisher", "must not be empty")
	}
	if req.PublicationYear != nil {
		v.Check(*req.PublicationYear >= minPublicationYear, "publication_year", "must be at least 1000")
		v.Check(*req.PublicationYear <= maxPublicationYear, "publication_year", "must not be after 2100")
	}
	if req.Price != nil {
		v.Check(*req.Price > 0, "price", "must be positive")
	}
	if req.StockQuantity != nil {
		v.Check(*req.StockQuantity >= 0, "stock_quantity", "must not be negative")
	}
	if req.GenreID != nil {
		v.Check(*req.GenreID >= 1, "genre_id", "must be a valid genre id")
	}
	return v
}

// NewBookUpdateHandler returns an HTTP handler for partial book updates.
// @Summary Update a book
// @Description Applies a partial update to a book. A changed title must stay unique and a new genre must exist.
// @Tags books
// @Accept json
// @Produce json
// @Param book_id path int true "Book ID"
// @Param updateBookRequest body handlers.UpdateBookRequest true "Fields to update"
// @Success 200 {object} handlers.APIResponse "Book updated"
// @Failure 400 {object} handlers.APIResponse "Invalid id, duplicate title, or validation error"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Failure 404 {object} handlers.APIResponse "Book or genre not found"
// @Router /books/{book_id} [patch]
// @Security BearerAuth
func NewBookUpdateHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := readIDParam(r, "book_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid book id")
			return
		}

		var req UpdateBookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if v := req.validate(); !v.Valid() {
			writeValidationErrors(w, v.Errors)
			return
		}

		book, err := svc.Update(r.Context(), id, repositories.BookUpdate{
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
			case errors.Is(err, services.ErrBookNotFound):
				writeError(w, http.StatusNotFound, "Book not found")
			case errors.Is(err, services.ErrGenreNotFound):
				writeError(w, http.StatusNotFound, "Genre not found")
			case errors.Is(err, services.ErrBookTitleTaken):
				writeError(w, http.StatusBadRequest, "Book with this title already exists")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeData(w, http.StatusOK, "Book updated successfully", book)
	}
}
