package usecase_test

import (
	"testing"

	"movie-catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func validFields() usecase.MovieFields {
	return usecase.MovieFields{Title: "Inception", Year: 2010, Price: 9.99, AgeRestriction: 13}
}

func TestValidateMovieFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *usecase.MovieFields)
		want   error
	}{
		{"valid", func(f *usecase.MovieFields) {}, nil},
		{"earliest year accepted", func(f *usecase.MovieFields) { f.Year = 1888 }, nil},
		{"year before 1888", func(f *usecase.MovieFields) { f.Year = 1887 }, usecase.ErrInvalidYear},
		{"zero price", func(f *usecase.MovieFields) { f.Price = 0 }, usecase.ErrInvalidPrice},
		{"negative price", func(f *usecase.MovieFields) { f.Price = -1.5 }, usecase.ErrInvalidPrice},
		{"zero age restriction", func(f *usecase.MovieFields) { f.AgeRestriction = 0 }, usecase.ErrInvalidAgeRestriction},
		{"empty title", func(f *usecase.MovieFields) { f.Title = "" }, usecase.ErrInvalidTitle},
		{"whitespace title", func(f *usecase.MovieFields) { f.Title = " \t\n " }, usecase.ErrInvalidTitle},
		{"year wins over everything", func(f *usecase.MovieFields) {
			*f = usecase.MovieFields{Title: "", Year: 1800, Price: 0, AgeRestriction: 0}
		}, usecase.ErrInvalidYear},
		{"price wins over age and title", func(f *usecase.MovieFields) {
			f.Price, f.AgeRestriction, f.Title = 0, 0, ""
		}, usecase.ErrInvalidPrice},
		{"age wins over title", func(f *usecase.MovieFields) {
			f.AgeRestriction, f.Title = -3, " "
		}, usecase.ErrInvalidAgeRestriction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)

			err := usecase.ValidateMovieFields(f)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateLookupID(t *testing.T) {
	assert.NoError(t, usecase.ValidateLookupID(0))
	assert.NoError(t, usecase.ValidateLookupID(42))
	assert.ErrorIs(t, usecase.ValidateLookupID(-1), usecase.ErrInvalidID)
}

func TestValidateTargetID(t *testing.T) {
	assert.NoError(t, usecase.ValidateTargetID(1))
	assert.ErrorIs(t, usecase.ValidateTargetID(0), usecase.ErrInvalidID)
	assert.ErrorIs(t, usecase.ValidateTargetID(-7), usecase.ErrInvalidID)
}
