package handlers

import (
	"context"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/repositories"
)

// BookLister defines the interface that the service must implement.
type BookLister interface {
	List(ctx context.Context, filter repositories.BookFilter) ([]models.Book, int64, error)
}

// readBookFilter parses the shared pagination/search/sort query parameters.
// It returns the filter plus the requested page and limit for the response
// pagination block.
func readBookFilter(r *http.Request) (repositories.BookFilter, int, int) {
	qs := r.URL.Query()

	page := readInt(qs, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := readInt(qs, "limit", 10)
	if limit < 1 {
		limit = 10
	}

	filter := repositories.BookFilter{
		Search: readString(qs, "search", ""),
		SortBy: readString(qs, "sortBy", ""),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	return filter, page, limit
}

// NewBookListHandler returns an HTTP handler listing books with pagination,
// search, and sort.
// @Summary List books
// @Description Lists non-deleted books. Supports page, limit, case-insensitive search over title and writer, and sortBy (title, publication_year, price).
// @Tags books
// @Produce json
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 10"
// @Param search query string false "Substring over title and writer"
// @Param sortBy query string false "One of title, publication_year, price"
// @Success 200 {object} handlers.APIResponse "Book page with pagination"
// @Router /books [get]
func NewBookListHandler(svc BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, page, limit := readBookFilter(r)

		books, total, err := svc.List(r.Context(), filter)
		if err != nil {
			writeInternalError(w, err)
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
