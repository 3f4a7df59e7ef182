package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

type PostMovieCommand struct {
	MovieFields
}

type PatchMovieCommand struct {
	MovieID int64
	MovieFields
}

type DeleteMovieCommand struct {
	MovieID int64
}

type MovieCommandHandler struct {
	repo   repository.MovieRepository
	events EventPublisher
	log    *zap.Logger
}

func NewMovieCommandHandler(repo repository.MovieRepository, events EventPublisher, log *zap.Logger) *MovieCommandHandler {
	if events == nil {
		events = NopPublisher{}
	}
	return &MovieCommandHandler{
		repo:   repo,
		events: events,
		log:    log.With(zap.String("service", "movie_command")),
	}
}

func (h *MovieCommandHandler) Post(ctx context.Context, c PostMovieCommand) (*entity.Movie, error) {
	movie := &entity.Movie{
		Title:          c.Title,
		Year:           c.Year,
		Price:          c.Price,
		AgeRestriction: c.AgeRestriction,
	}

	if err := h.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	h.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)
	publishMovieEvent(ctx, h.events, h.log, EventMovieCreated, movie)

	return movie, nil
}

// Patch returns nil when there is no movie with c.MovieID.
func (h *MovieCommandHandler) Patch(ctx context.Context, c PatchMovieCommand) (*entity.Movie, error) {
	updated, err := h.repo.Update(ctx, &entity.Movie{
		ID:             c.MovieID,
		Title:          c.Title,
		Year:           c.Year,
		Price:          c.Price,
		AgeRestriction: c.AgeRestriction,
	})
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}
	if updated == nil {
		return nil, nil
	}

	h.log.Info("Movie updated", zap.Int64("movie_id", updated.ID))
	publishMovieEvent(ctx, h.events, h.log, EventMovieUpdated, updated)

	return updated, nil
}

// Delete returns the removed movie, or nil when nothing matched.
func (h *MovieCommandHandler) Delete(ctx context.Context, c DeleteMovieCommand) (*entity.Movie, error) {
	deleted, err := h.repo.Delete(ctx, c.MovieID)
	if err != nil {
		return nil, fmt.Errorf("delete movie: %w", err)
	}
	if deleted == nil {
		return nil, nil
	}

	h.log.Info("Movie deleted", zap.Int64("movie_id", deleted.ID))
	publishMovieEvent(ctx, h.events, h.log, EventMovieDeleted, deleted)

	return deleted, nil
}
