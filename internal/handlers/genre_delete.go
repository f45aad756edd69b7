package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/services"
)

// GenreDeleter defines the interface that the service must implement.
type GenreDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewGenreDeleteHandler returns an HTTP handler soft-deleting a genre.
// @Summary Delete a genre
// @Description Soft-deletes a genre. Existing books keep referencing it; the name becomes reusable.
// @Tags genres
// @Produce json
// @Param genre_id path int true "Genre ID"
// @Success 200 {object} handlers.APIResponse "Genre deleted"
// @Failure 400 {object} handlers.APIResponse "Invalid genre id"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Failure 404 {object} handlers.APIResponse "Genre not found"
// @Router /genre/{genre_id} [delete]
// @Security BearerAuth
func NewGenreDeleteHandler(svc GenreDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := readIDParam(r, "genre_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid genre id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrGenreNotFound):
				writeError(w, http.StatusNotFound, "Genre not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Genre deleted successfully"})
	}
}
