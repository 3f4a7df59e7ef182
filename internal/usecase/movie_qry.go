package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

type GetAllMoviesQuery struct{}

type GetMovieByIDQuery struct {
	ID int64
}

type MovieQueryHandler struct {
	repo repository.MovieRepository
	log  *zap.Logger
}

func NewMovieQueryHandler(repo repository.MovieRepository, log *zap.Logger) *MovieQueryHandler {
	return &MovieQueryHandler{
		repo: repo,
		log:  log.With(zap.String("service", "movie_query")),
	}
}

func (h *MovieQueryHandler) GetAll(ctx context.Context, _ GetAllMoviesQuery) ([]*entity.Movie, error) {
	movies, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	h.log.Info("Movies retrieved", zap.Int("count", len(movies)))
	return movies, nil
}

// GetByID returns nil when the movie does not exist.
func (h *MovieQueryHandler) GetByID(ctx context.Context, q GetMovieByIDQuery) (*entity.Movie, error) {
	movie, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		h.log.Debug("Movie not found", zap.Int64("movie_id", q.ID))
	}
	return movie, nil
}
