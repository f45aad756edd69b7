package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/repositories"
	"github.com/youone-its/bookstore-backend/internal/services"
)

// GenreBookLister defines the interface that the service must implement.
type GenreBookLister interface {
	ListByGenre(ctx context.Context, genreID int64, filter repositories.BookFilter) ([]models.Book, int64, error)
}

// NewBookListByGenreHandler returns an HTTP handler listing one genre's books.
// @Summary List books of a genre
// @Description Lists the non-deleted books of one genre with the same pagination, search, and sort parameters as the books listing.
// @Tags books
// @Produce json
// @Param genre_id path int true "Genre ID"
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 10"
// @Param search query string false "Substring over title and writer"
// @Param sortBy query string false "One of title, publication_year, price"
// @Success 200 {object} handlers.APIResponse "Book page with pagination"
// @Failure 400 {object} handlers.APIResponse "Invalid genre id"
// @Failure 404 {object} handlers.APIResponse "Genre not found"
// @Router /books/genre/{genre_id} [get]
func NewBookListByGenreHandler(svc GenreBookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genreID, err := readIDParam(r, "genre_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid genre id")
			return
		}

		filter, page, limit := readBookFilter(r)

		books, total, err := svc.ListByGenre(r.Context(), genreID, filter)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGenreNotFound):
				writeError(w, http.StatusNotFound, "Genre not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writePaged(w, books, Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		})
	}
}
