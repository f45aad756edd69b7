package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/services"
)

// GenreGetter defines the interface that the service must implement.
type GenreGetter interface {
	Get(ctx context.Context, id int64) (*models.Genre, error)
}

// NewGenreGetHandler returns an HTTP handler fetching one genre.
// @Summary Get a genre
// @Description Returns one non-deleted genre with its book count.
// @Tags genres
// @Produce json
// @Param genre_id path int true "Genre ID"
// @Success 200 {object} handlers.APIResponse "Genre"
// @Failure 400 {object} handlers.APIResponse "Invalid genre id"
// @Failure 404 {object} handlers.APIResponse "Genre not found"
// @Router /genre/{genre_id} [get]
func NewGenreGetHandler(svc GenreGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := readIDParam(r, "genre_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid genre id")
			return
		}

		genre, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGenreNotFound):
				writeError(w, http.StatusNotFound, "Genre not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: genre})
	}
}
