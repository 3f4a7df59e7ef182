package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/mediator"

	"go.uber.org/zap"
)

// Requests lists one value of every request type the movie API dispatches.
func Requests() []any {
	return []any{
		GetAllMoviesQuery{},
		GetMovieByIDQuery{},
		PostMovieCommand{},
		PatchMovieCommand{},
		DeleteMovieCommand{},
	}
}

// RegisterHandlers binds the movie command and query handlers to m.
func RegisterHandlers(m *mediator.Mediator, repo *repository.Repository, events EventPublisher, log *zap.Logger) error {
	queries := NewMovieQueryHandler(repo.Movie, log)
	commands := NewMovieCommandHandler(repo.Movie, events, log)

	registrations := []func() error{
		func() error { return mediator.Register(m, queries.GetAll) },
		func() error { return mediator.Register(m, queries.GetByID) },
		func() error { return mediator.Register(m, commands.Post) },
		func() error { return mediator.Register(m, commands.Patch) },
		func() error { return mediator.Register(m, commands.Delete) },
	}
	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}
