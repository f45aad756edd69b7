package services

import (
	"context"
	"errors"

	"github.com/youone-its/bookstore-backend/internal/logger"
	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/repositories"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrBookTitleTaken = errors.New("book with this title already exists")
)

// BookReader defines read-only operations for books.
type BookReader interface {
	GetByID(ctx context.Context, id int64) (*models.BookWithGenreDB, error)
	GetByTitle(ctx context.Context, title string, excludeID *int64) (*models.BookDB, error)
	List(ctx context.Context, filter repositories.BookFilter) ([]models.BookWithGenreDB, error)
	Count(ctx context.Context, filter repositories.BookFilter) (int64, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Save(ctx context.Context, in repositories.BookInsert) (*models.BookDB, error)
	Update(ctx context.Context, id int64, in repositories.BookUpdate) (*models.BookDB, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

// BookService handles book CRUD, pagination, search, and sort.
type BookService struct {
	reader      BookReader
	writer      BookWriter
	genreReader GenreReader
}

// NewBookService creates a new BookService instance.
func NewBookService(reader BookReader, writer BookWriter, genreReader GenreReader) *BookService {
	return &BookService{
		reader:      reader,
		writer:      writer,
		genreReader: genreReader,
	}
}

// Create adds a new book. The title must be free among non-deleted books and
// the genre must exist and not be deleted.
func (svc *BookService) Create(ctx context.Context, in repositories.BookInsert) (*models.Book, error) {
	duplicate, err := svc.reader.GetByTitle(ctx, in.Title, nil)
	if err != nil {
		logger.Log.Errorw("failed to check book title", "title", in.Title, "err", err)
		return nil, err
	}
	if duplicate != nil {
		return nil, ErrBookTitleTaken
	}

	genre, err := svc.genreReader.GetByID(ctx, in.GenreID)
	if err != nil {
		logger.Log.Errorw("failed to get genre", "genreID", in.GenreID, "err", err)
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	book, err := svc.writer.Save(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to save book", "title", in.Title, "err", err)
		return nil, err
	}

	result := &models.Book{
		ID:              book.ID,
		Title:           book.Title,
		Writer:          book.Writer,
		Publisher:       book.Publisher,
		PublicationYear: book.PublicationYear,
		Description:     book.Description,
		Price:           book.Price,
		StockQuantity:   book.StockQuantity,
		GenreID:         book.GenreID,
		CreatedAt:       book.CreatedAt,
		Genre:           genre.GenreDB.ToGenre(),
	}
	return result, nil
}

// List returns one page of books with the total count. The page rows and the
// count have no ordering dependency, so the count is issued concurrently.
func (svc *BookService) List(ctx context.Context, filter repositories.BookFilter) ([]models.Book, int64, error) {
	type countResult struct {
		total int64
		err   error
	}
	countCh := make(chan countResult, 1)
	go func() {
		total, err := svc.reader.Count(ctx, filter)
		countCh <- countResult{total: total, err: err}
	}()

	rows, err := svc.reader.List(ctx, filter)
	count := <-countCh

	if err != nil {
		logger.Log.Errorw("failed to list books", "err", err)
		return nil, 0, err
	}
	if count.err != nil {
		logger.Log.Errorw("failed to count books", "err", count.err)
		return nil, 0, count.err
	}

	books := make([]models.Book, 0, len(rows))
	for i := range rows {
		books = append(books, *rows[i].ToBook())
	}
	return books, count.total, nil
}

// ListByGenre returns one page of a genre's books. The genre must exist and
// not be deleted.
func (svc *BookService) ListByGenre(ctx context.Context, genreID int64, filter repositories.BookFilter) ([]models.Book, int64, error) {
	genre, err := svc.genreReader.GetByID(ctx, genreID)
	if err != nil {
		logger.Log.Errorw("failed to get genre", "genreID", genreID, "err", err)
		return nil, 0, err
	}
	if genre == nil {
		return nil, 0, ErrGenreNotFound
	}

	filter.GenreID = &genreID
	return svc.List(ctx, filter)
}

// Get returns one non-deleted book with its genre.
func (svc *BookService) Get(ctx context.Context, id int64) (*models.Book, error) {
	book, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "id", id, "err", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	return book.ToBook(), nil
}

// Update applies a partial update. The duplicate-title check runs only when
// the title actually changes; a new genre must exist and not be deleted.
func (svc *BookService) Update(ctx context.Context, id int64, in repositories.BookUpdate) (*models.Book, error) {
	existing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "id", id, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrBookNotFound
	}

	if in.Title != nil && *in.Title != existing.Title {
		duplicate, err := svc.reader.GetByTitle(ctx, *in.Title, &id)
		if err != nil {
			logger.Log.Errorw("failed to check book title", "title", *in.Title, "err", err)
			return nil, err
		}
		if duplicate != nil {
			return nil, ErrBookTitleTaken
		}
	}

	if in.GenreID != nil {
		genre, err := svc.genreReader.GetByID(ctx, *in.GenreID)
		if err != nil {
			logger.Log.Errorw("failed to get genre", "genreID", *in.GenreID, "err", err)
			return nil, err
		}
		if genre == nil {
			return nil, ErrGenreNotFound
		}
	}

	updated, err := svc.writer.Update(ctx, id, in)
	if err != nil {
		logger.Log.Errorw("failed to update book", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookNotFound
	}

	return svc.Get(ctx, updated.ID)
}

// Delete soft-deletes a book. Historical order items keep referencing it.
func (svc *BookService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.SoftDelete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete book", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrBookNotFound
	}

	return nil
}
