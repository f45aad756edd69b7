package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/services"
	"github.com/youone-its/bookstore-backend/internal/validator"
)

// GenreUpdater defines the interface that the service must implement.
type GenreUpdater interface {
	Update(ctx context.Context, id int64, name string) (*models.Genre, error)
}

// NewGenreUpdateHandler returns an HTTP handler renaming a genre.
// @Summary Rename a genre
// @Description Renames a genre. The new name must be unique among non-deleted genres.
// @Tags genres
// @Accept json
// @Produce json
// @Param genre_id path int true "Genre ID"
// @Param genreRequest body handlers.GenreRequest true "Genre rename request"
// @Success 200 {object} handlers.APIResponse "Genre updated"
// @Failure 400 {object} handlers.APIResponse "Invalid id, duplicate or empty name"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Failure 404 {object} handlers.APIResponse "Genre not found"
// @Router /genre/{genre_id} [patch]
// @Security BearerAuth
func NewGenreUpdateHandler(svc GenreUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := readIDParam(r, "genre_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid genre id")
			return
		}

		var req GenreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		v := validator.New()
		v.Check(req.Name != "", "name", "must be provided")
		if !v.Valid() {
			writeValidationErrors(w, v.Errors)
			return
		}

		genre, err := svc.Update(r.Context(), id, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGenreNotFound):
				writeError(w, http.StatusNotFound, "Genre not found")
			case errors.Is(err, services.ErrGenreNameTaken):
				writeError(w, http.StatusBadRequest, "Genre with this name already exists")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeData(w, http.StatusOK, "Genre updated successfully", genre)
	}
}
