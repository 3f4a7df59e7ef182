package repository_test

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var movieColumns = []string{"id", "title", "year", "price", "age_restriction"}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, repository.MovieRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, repository.NewMovieRepository(mock, zap.NewNop())
}

func TestMovieRepository_FindAll(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`FROM movies\s+ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(movieColumns).
			AddRow(int64(1), "Alien", 1979, 3.0, 16).
			AddRow(int64(2), "Heat", 1995, 4.5, 16))

	movies, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, &entity.Movie{ID: 1, Title: "Alien", Year: 1979, Price: 3.0, AgeRestriction: 16}, movies[0])
	assert.Equal(t, "Heat", movies[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_FindAllEmpty(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`FROM movies\s+ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(movieColumns))

	movies, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_FindAllError(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`FROM movies\s+ORDER BY id`).WillReturnError(errors.New("connection refused"))

	movies, err := repo.FindAll(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find movies")
	assert.Nil(t, movies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_FindByID(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`FROM movies\s+WHERE id`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(movieColumns).AddRow(int64(1), "Alien", 1979, 3.0, 16))
	mock.ExpectQuery(`FROM movies\s+WHERE id`).
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows(movieColumns))

	movie, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, "Alien", movie.Title)

	movie, err = repo.FindByID(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, movie)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_Create(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO movies").
		WithArgs("Inception", 2010, 9.99, 13).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

	movie := &entity.Movie{Title: "Inception", Year: 2010, Price: 9.99, AgeRestriction: 13}
	err := repo.Create(context.Background(), movie)

	require.NoError(t, err)
	assert.Equal(t, int64(12), movie.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_CreateError(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO movies").
		WithArgs("Inception", 2010, 9.99, 13).
		WillReturnError(errors.New("disk full"))

	err := repo.Create(context.Background(), &entity.Movie{Title: "Inception", Year: 2010, Price: 9.99, AgeRestriction: 13})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create movie")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_Update(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("UPDATE movies").
		WithArgs(int64(3), "Heat", 1995, 5.0, 16).
		WillReturnRows(pgxmock.NewRows(movieColumns).AddRow(int64(3), "Heat", 1995, 5.0, 16))
	mock.ExpectQuery("UPDATE movies").
		WithArgs(int64(99), "Heat", 1995, 5.0, 16).
		WillReturnRows(pgxmock.NewRows(movieColumns))

	updated, err := repo.Update(context.Background(), &entity.Movie{ID: 3, Title: "Heat", Year: 1995, Price: 5.0, AgeRestriction: 16})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 5.0, updated.Price)

	updated, err = repo.Update(context.Background(), &entity.Movie{ID: 99, Title: "Heat", Year: 1995, Price: 5.0, AgeRestriction: 16})
	assert.NoError(t, err)
	assert.Nil(t, updated)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepository_Delete(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("DELETE FROM movies").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(movieColumns).AddRow(int64(3), "Heat", 1995, 5.0, 16))
	mock.ExpectQuery("DELETE FROM movies").
		WithArgs(int64(999999)).
		WillReturnRows(pgxmock.NewRows(movieColumns))
	mock.ExpectQuery("DELETE FROM movies").
		WithArgs(int64(4)).
		WillReturnError(errors.New("deadlock detected"))

	deleted, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, int64(3), deleted.ID)

	deleted, err = repo.Delete(context.Background(), 999999)
	assert.NoError(t, err)
	assert.Nil(t, deleted)

	deleted, err = repo.Delete(context.Background(), 4)
	assert.Error(t, err)
	assert.Nil(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
