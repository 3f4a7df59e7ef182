package response_test

import (
	"encoding/json"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoviesToResponse(t *testing.T) {
	movies := []*entity.Movie{
		{ID: 9, Title: "Up", Year: 2009, Price: 2, AgeRestriction: 1},
		{ID: 3, Title: "Heat", Year: 1995, Price: 4.5, AgeRestriction: 16},
	}

	out := response.MoviesToResponse(movies)

	require.Len(t, out, 2)
	assert.Equal(t, int64(9), out[0].ID)
	assert.Equal(t, int64(3), out[1].ID)
}

func TestMoviesToResponse_EmptyEncodesAsArray(t *testing.T) {
	raw, err := json.Marshal(response.MoviesToResponse(nil))

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestMovieToResponse_JSONShape(t *testing.T) {
	raw, err := json.Marshal(response.MovieToResponse(&entity.Movie{
		ID: 1, Title: "Inception", Year: 2010, Price: 9.99, AgeRestriction: 13,
	}))

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"Inception","year":2010,"price":9.99,"ageRestriction":13}`, string(raw))
}
