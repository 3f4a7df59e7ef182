package request

import "movie-catalog/internal/usecase"

// PostMovieRequest is the body of POST /api/movies. Integer fields are int32
// like their columns, so out-of-range values fail to decode.
type PostMovieRequest struct {
	Title          string  `json:"title"`
	Year           int32   `json:"year"`
	Price          float64 `json:"price"`
	AgeRestriction int32   `json:"ageRestriction"`
}

// PatchMovieRequest is the body of PATCH /api/movies.
type PatchMovieRequest struct {
	MovieID        int64   `json:"movieId"`
	Title          string  `json:"title"`
	Year           int32   `json:"year"`
	Price          float64 `json:"price"`
	AgeRestriction int32   `json:"ageRestriction"`
}

func (r PostMovieRequest) Fields() usecase.MovieFields {
	return usecase.MovieFields{
		Title:          r.Title,
		Year:           int(r.Year),
		Price:          r.Price,
		AgeRestriction: int(r.AgeRestriction),
	}
}

func (r PatchMovieRequest) Fields() usecase.MovieFields {
	return usecase.MovieFields{
		Title:          r.Title,
		Year:           int(r.Year),
		Price:          r.Price,
		AgeRestriction: int(r.AgeRestriction),
	}
}
