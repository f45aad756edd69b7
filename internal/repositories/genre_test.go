package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var genreColumns = []string{"id", "name", "created_at", "deleted_at"}
var genreCountColumns = []string{"id", "name", "created_at", "deleted_at", "book_count"}

func TestGenreReadRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found with book count", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGenreReadRepository(db)

		mock.ExpectQuery("FROM genres g LEFT JOIN books b").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(genreCountColumns).
				AddRow(1, "Fantasy", now, nil, 3))

		genre, err := repo.GetByID(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "Fantasy", genre.Name)
		assert.Equal(t, int64(3), genre.BookCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleted or missing returns nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGenreReadRepository(db)

		mock.ExpectQuery("FROM genres g LEFT JOIN books b").
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		genre, err := repo.GetByID(ctx, 42)

		assert.NoError(t, err)
		assert.Nil(t, genre)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGenreReadRepository_GetByName(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGenreReadRepository(db)

		mock.ExpectQuery("SELECT id, name, created_at, deleted_at FROM genres").
			WithArgs("Fantasy", nil).
			WillReturnRows(sqlmock.NewRows(genreColumns).
				AddRow(1, "Fantasy", now, nil))

		genre, err := repo.GetByName(ctx, "Fantasy", nil)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), genre.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("excluding the renamed id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGenreReadRepository(db)
		id := int64(1)

		mock.ExpectQuery("SELECT id, name, created_at, deleted_at FROM genres").
			WithArgs("Fantasy", &id).
			WillReturnError(sql.ErrNoRows)

		genre, err := repo.GetByName(ctx, "Fantasy", &id)

		assert.NoError(t, err)
		assert.Nil(t, genre)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGenreReadRepository_ListWithBookCounts(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock := newMockDB(t)
	repo := NewGenreReadRepository(db)

	mock.ExpectQuery("FROM genres g LEFT JOIN books b").
		WillReturnRows(sqlmock.NewRows(genreCountColumns).
			AddRow(2, "Horror", now, nil, 0).
			AddRow(1, "Fantasy", now.Add(-time.Hour), nil, 5))

	genres, err := repo.ListWithBookCounts(ctx)

	assert.NoError(t, err)
	assert.Len(t, genres, 2)
	assert.Equal(t, int64(0), genres[0].BookCount)
	assert.Equal(t, int64(5), genres[1].BookCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreWriteRepository_Save(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock := newMockDB(t)
	repo := NewGenreWriteRepository(db, nil)

	mock.ExpectQuery("INSERT INTO genres").
		WithArgs("Fantasy").
		WillReturnRows(sqlmock.NewRows(genreColumns).
			AddRow(1, "Fantasy", now, nil))

	genre, err := repo.Save(ctx, "Fantasy")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), genre.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreWriteRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("renamed", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGenreWriteRepository(db, nil)

		mock.ExpectQuery("UPDATE genres SET name").
			WithArgs(int64(1), "Dark Fantasy").
			WillReturnRows(sqlmock.NewRows(genreColumns).
				AddRow(1, "Dark Fantasy", now, nil))

		genre, err := repo.Update(ctx, 1, "Dark Fantasy")

		assert.NoError(t, err)
		assert.Equal(t, "Dark Fantasy", genre.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing returns nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGenreWriteRepository(db, nil)

		mock.ExpectQuery("UPDATE genres SET name").
			WithArgs(int64(42), "Dark Fantasy").
			WillReturnError(sql.ErrNoRows)

		genre, err := repo.Update(ctx, 42, "Dark Fantasy")

		assert.NoError(t, err)
		assert.Nil(t, genre)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGenreWriteRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGenreWriteRepository(db, nil)

		mock.ExpectExec("UPDATE genres SET deleted_at").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.SoftDelete(ctx, 1)

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already gone", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewGenreWriteRepository(db, nil)

		mock.ExpectExec("UPDATE genres SET deleted_at").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.SoftDelete(ctx, 1)

		assert.NoError(t, err)
		assert.False(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
