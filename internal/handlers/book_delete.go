package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/services"
)

// BookDeleter defines the interface that the service must implement.
type BookDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewBookDeleteHandler returns an HTTP handler soft-deleting a book.
// @Summary Delete a book
// @Description Soft-deletes a book. Historical order items keep referencing it; the title becomes reusable.
// @Tags books
// @Produce json
// @Param book_id path int true "Book ID"
// @Success 200 {object} handlers.APIResponse "Book deleted"
// @Failure 400 {object} handlers.APIResponse "Invalid book id"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Failure 404 {object} handlers.APIResponse "Book not found"
// @Router /books/{book_id} [delete]
// @Security BearerAuth
func NewBookDeleteHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := readIDParam(r, "book_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid book id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				writeError(w, http.StatusNotFound, "Book not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Book deleted successfully"})
	}
}
