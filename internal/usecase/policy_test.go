package usecase_test

import (
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestTitleLockPolicy_Check(t *testing.T) {
	locked := &entity.Movie{ID: 1, Title: "Learning F# in 21 days"}
	plain := &entity.Movie{ID: 2, Title: "Inception"}

	policy := usecase.NewTitleLockPolicy(true, "F#")
	assert.ErrorIs(t, policy.Check(locked), usecase.ErrTitleLocked)
	assert.NoError(t, policy.Check(plain))
	assert.NoError(t, policy.Check(nil))

	disabled := usecase.NewTitleLockPolicy(false, "F#")
	assert.NoError(t, disabled.Check(locked))

	emptyMarker := usecase.NewTitleLockPolicy(true, "")
	assert.NoError(t, emptyMarker.Check(locked))
}
