package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/services"
)

// BookGetter defines the interface that the service must implement.
type BookGetter interface {
	Get(ctx context.Context, id int64) (*models.Book, error)
}

// NewBookGetHandler returns an HTTP handler for fetching one book.
// @Summary Get a book
// @Description Returns one non-deleted book with its genre.
// @Tags books
// @Produce json
// @Param book_id path int true "Book ID"
// @Success 200 {object} handlers.APIResponse "Book detail"
// @Failure 400 {object} handlers.APIResponse "Invalid book id"
// @Failure 404 {object} handlers.APIResponse "Book not found"
// @Router /books/{book_id} [get]
func NewBookGetHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := readIDParam(r, "book_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid book id")
			return
		}

		book, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				writeError(w, http.StatusNotFound, "Book not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: book})
	}
}
