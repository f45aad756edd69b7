package handlers

import (
	"context"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/models"
)

// GenreLister defines the interface that the service must implement.
type GenreLister interface {
	List(ctx context.Context) ([]models.Genre, error)
}

// NewGenreListHandler returns an HTTP handler listing all genres.
// @Summary List genres
// @Description Lists all non-deleted genres, newest first, with book counts.
// @Tags genres
// @Produce json
// @Success 200 {object} handlers.APIResponse "Genre list"
// @Router /genre [get]
func NewGenreListHandler(svc GenreLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: genres})
	}
}
