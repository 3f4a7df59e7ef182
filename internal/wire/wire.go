package wire

import (
	"fmt"
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/mediator"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	_ "movie-catalog/docs"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router   *chi.Mux
	Mediator *mediator.Mediator
}

// Wiring registers every command and query handler, then builds the router.
func Wiring(repo *repository.Repository, config *utils.Config, events usecase.EventPublisher, logger *zap.Logger) (*App, error) {
	m := mediator.New(logger)
	if err := usecase.RegisterHandlers(m, repo, events, logger); err != nil {
		return nil, fmt.Errorf("register handlers: %w", err)
	}
	m.MustHandle(usecase.Requests()...)

	policy := usecase.NewTitleLockPolicy(config.TitleLock.Enabled, config.TitleLock.Marker)
	handler := adaptor.NewHandler(m, policy, logger)

	return &App{
		Router:   setupRouter(handler, config, logger),
		Mediator: m,
	}, nil
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	if config.RateLimit.Enabled {
		r.Use(middleware.RateLimit(config.RateLimit.RPS, config.RateLimit.Burst, logger))
	}

	wireMovie(r, handler.Movie)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
