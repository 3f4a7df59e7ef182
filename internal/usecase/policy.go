package usecase

import (
	"errors"
	"strings"

	"movie-catalog/internal/data/entity"
)

// TitleLockMessage is returned to clients when a locked record is touched.
const TitleLockMessage = "F# best language"

var ErrTitleLocked = errors.New("movie title is locked")

// TitleLockPolicy rejects updates and deletes of movies whose current title
// contains Marker. It can be switched off without touching field validation.
type TitleLockPolicy struct {
	Enabled bool
	Marker  string
}

func NewTitleLockPolicy(enabled bool, marker string) TitleLockPolicy {
	return TitleLockPolicy{Enabled: enabled, Marker: marker}
}

// Check returns ErrTitleLocked for a locked movie. A nil movie passes so the
// caller can report not-found instead.
func (p TitleLockPolicy) Check(movie *entity.Movie) error {
	if !p.Enabled || p.Marker == "" || movie == nil {
		return nil
	}
	if strings.Contains(movie.Title, p.Marker) {
		return ErrTitleLocked
	}
	return nil
}
