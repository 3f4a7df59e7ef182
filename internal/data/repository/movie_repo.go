package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MovieRepository is the durable store for movie records.
// FindByID, Update and Delete return a nil movie when no row matches.
type MovieRepository interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) error
	Update(ctx context.Context, movie *entity.Movie) (*entity.Movie, error)
	Delete(ctx context.Context, id int64) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, year, price, age_restriction
		FROM movies
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Year,
			&movie.Price,
			&movie.AgeRestriction,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, year, price, age_restriction
		FROM movies
		WHERE id = $1
	`

	movie, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, year, price, age_restriction)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Year,
		movie.Price,
		movie.AgeRestriction,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	r.log.Info("Movie created", zap.Int64("movie_id", movie.ID))
	return nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	query := `
		UPDATE movies
		SET title = $2, year = $3, price = $4, age_restriction = $5
		WHERE id = $1
		RETURNING id, title, year, price, age_restriction
	`

	updated, err := r.scanOne(r.db.QueryRow(ctx, query,
		movie.ID,
		movie.Title,
		movie.Year,
		movie.Price,
		movie.AgeRestriction,
	))
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return updated, nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		DELETE FROM movies
		WHERE id = $1
		RETURNING id, title, year, price, age_restriction
	`

	deleted, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to delete movie: %w", err)
	}

	if deleted != nil {
		r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	}
	return deleted, nil
}

// scanOne maps pgx.ErrNoRows to a nil movie.
func (r *movieRepository) scanOne(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.Price,
		&movie.AgeRestriction,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
