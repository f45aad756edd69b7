package services

import (
	"context"
	"errors"

	"github.com/youone-its/bookstore-backend/internal/logger"
	"github.com/youone-its/bookstore-backend/internal/models"
)

var (
	ErrGenreNotFound  = errors.New("genre not found")
	ErrGenreNameTaken = errors.New("genre with this name already exists")
)

// GenreReader defines read-only operations for genres.
type GenreReader interface {
	GetByID(ctx context.Context, id int64) (*models.GenreWithCountDB, error)
	GetByName(ctx context.Context, name string, excludeID *int64) (*models.GenreDB, error)
	ListWithBookCounts(ctx context.Context) ([]models.GenreWithCountDB, error)
}

// GenreWriter defines write operations for genres.
type GenreWriter interface {
	Save(ctx context.Context, name string) (*models.GenreDB, error)
	Update(ctx context.Context, id int64, name string) (*models.GenreDB, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

// GenreService handles genre CRUD with soft delete and duplicate-name
// prevention scoped to non-deleted rows.
type GenreService struct {
	reader GenreReader
	writer GenreWriter
}

// NewGenreService creates a new GenreService instance.
func NewGenreService(reader GenreReader, writer GenreWriter) *GenreService {
	return &GenreService{reader: reader, writer: writer}
}

// Create adds a new genre after checking the name is free among
// non-deleted genres.
func (svc *GenreService) Create(ctx context.Context, name string) (*models.Genre, error) {
	existing, err := svc.reader.GetByName(ctx, name, nil)
	if err != nil {
		logger.Log.Errorw("failed to check genre name", "name", name, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrGenreNameTaken
	}

	genre, err := svc.writer.Save(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to save genre", "name", name, "err", err)
		return nil, err
	}

	return genre.ToGenre(), nil
}

// List returns all non-deleted genres with their book counts.
func (svc *GenreService) List(ctx context.Context) ([]models.Genre, error) {
	rows, err := svc.reader.ListWithBookCounts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list genres", "err", err)
		return nil, err
	}

	genres := make([]models.Genre, 0, len(rows))
	for i := range rows {
		genres = append(genres, *rows[i].ToGenre())
	}
	return genres, nil
}

// Get returns one non-deleted genre with its book count.
func (svc *GenreService) Get(ctx context.Context, id int64) (*models.Genre, error) {
	genre, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get genre", "id", id, "err", err)
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	return genre.ToGenre(), nil
}

// Update renames a genre, rejecting names already used by another
// non-deleted genre.
func (svc *GenreService) Update(ctx context.Context, id int64, name string) (*models.Genre, error) {
	existing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get genre", "id", id, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrGenreNotFound
	}

	duplicate, err := svc.reader.GetByName(ctx, name, &id)
	if err != nil {
		logger.Log.Errorw("failed to check genre name", "name", name, "err", err)
		return nil, err
	}
	if duplicate != nil {
		return nil, ErrGenreNameTaken
	}

	genre, err := svc.writer.Update(ctx, id, name)
	if err != nil {
		logger.Log.Errorw("failed to update genre", "id", id, "err", err)
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	return genre.ToGenre(), nil
}

// Delete soft-deletes a genre. Its name becomes reusable; existing books keep
// referencing the deleted row.
func (svc *GenreService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.SoftDelete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete genre", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrGenreNotFound
	}

	return nil
}
