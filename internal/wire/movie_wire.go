package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)          // GET /api/movies
		r.Get("/{id}", movieHandler.GetMovieByID)   // GET /api/movies/{id}
		r.Post("/", movieHandler.CreateMovie)       // POST /api/movies
		r.Patch("/", movieHandler.UpdateMovie)      // PATCH /api/movies
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /api/movies/{id}
	})
}
