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

// GenreCreator defines the interface that the service must implement.
type GenreCreator interface {
	Create(ctx context.Context, name string) (*models.Genre, error)
}

// GenreRequest represents the JSON body for creating or renaming a genre
// swagger:model GenreRequest
type GenreRequest struct {
	// Genre name, unique among non-deleted genres
	// required: true
	// example: Science Fiction
	Name string `json:"name"`
}

// NewGenreCreateHandler returns an HTTP handler for genre creation.
// @Summary Create a genre
// @Description Creates a new genre. Names must be unique among non-deleted genres.
// @Tags genres
// @Accept json
// @Produce json
// @Param genreRequest body handlers.GenreRequest true "Genre creation request"
// @Success 201 {object} handlers.APIResponse "Genre created"
// @Failure 400 {object} handlers.APIResponse "Duplicate or empty name"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Router /genre [post]
// @Security BearerAuth
func NewGenreCreateHandler(svc GenreCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		genre, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGenreNameTaken):
				writeError(w, http.StatusBadRequest, "Genre with this name already exists")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeData(w, http.StatusCreated, "Genre created successfully", genre)
	}
}
