package adaptor

import (
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/mediator"

	"go.uber.org/zap"
)

type Handler struct {
	Movie *MovieHandler
}

func NewHandler(m *mediator.Mediator, policy usecase.TitleLockPolicy, log *zap.Logger) *Handler {
	return &Handler{
		Movie: NewMovieHandler(m, policy, log),
	}
}
