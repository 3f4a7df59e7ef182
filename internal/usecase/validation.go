package usecase

import (
	"errors"
	"fmt"
	"strings"

	"movie-catalog/pkg/utils"
)

// EarliestReleaseYear is the year of the oldest surviving motion picture.
const EarliestReleaseYear = 1888

var yearRule = fmt.Sprintf("gte=%d", EarliestReleaseYear)

var (
	ErrInvalidID             = errors.New("invalid id")
	ErrInvalidYear           = errors.New("invalid year")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidAgeRestriction = errors.New("invalid age restriction")
	ErrInvalidTitle          = errors.New("invalid title")
)

// MovieFields is the write payload shared by create and update.
type MovieFields struct {
	Title          string
	Year           int
	Price          float64
	AgeRestriction int
}

// ValidateLookupID accepts zero; only negative ids are malformed for reads.
func ValidateLookupID(id int64) error {
	if !utils.CheckVar(id, "gte=0") {
		return ErrInvalidID
	}
	return nil
}

// ValidateTargetID requires a positive id for updates.
func ValidateTargetID(id int64) error {
	if !utils.CheckVar(id, "gt=0") {
		return ErrInvalidID
	}
	return nil
}

// ValidateMovieFields checks year, price, age restriction and title, in that
// order, and returns the first failure.
func ValidateMovieFields(f MovieFields) error {
	if !utils.CheckVar(f.Year, yearRule) {
		return ErrInvalidYear
	}
	if !utils.CheckVar(f.Price, "gt=0") {
		return ErrInvalidPrice
	}
	if !utils.CheckVar(f.AgeRestriction, "gt=0") {
		return ErrInvalidAgeRestriction
	}
	if !utils.CheckVar(strings.TrimSpace(f.Title), "required") {
		return ErrInvalidTitle
	}
	return nil
}
