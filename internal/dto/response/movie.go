package response

import (
	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Year           int     `json:"year"`
	Price          float64 `json:"price"`
	AgeRestriction int     `json:"ageRestriction"`
}

type PatchMovieSuccessResponse struct {
	MovieID int64  `json:"movieId"`
	Message string `json:"message"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:             movie.ID,
		Title:          movie.Title,
		Year:           movie.Year,
		Price:          movie.Price,
		AgeRestriction: movie.AgeRestriction,
	}
}

// MoviesToResponse keeps the input order and never returns nil, so an empty
// catalog encodes as [].
func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		out = append(out, MovieToResponse(movie))
	}
	return out
}

func NewPatchMovieSuccessResponse(movieID int64) PatchMovieSuccessResponse {
	return PatchMovieSuccessResponse{
		MovieID: movieID,
		Message: "Movie updated successfully",
	}
}
