package usecase

import (
	"context"
	"encoding/json"
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventMovieCreated = "movie.created"
	EventMovieUpdated = "movie.updated"
	EventMovieDeleted = "movie.deleted"
)

// EventPublisher ships serialized movie events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, []byte) error { return nil }

type MovieEvent struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	MovieID        int64     `json:"movieId"`
	Title          string    `json:"title"`
	Year           int       `json:"year"`
	Price          float64   `json:"price"`
	AgeRestriction int       `json:"ageRestriction"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func newMovieEvent(eventType string, movie *entity.Movie) MovieEvent {
	return MovieEvent{
		ID:             uuid.NewString(),
		Type:           eventType,
		MovieID:        movie.ID,
		Title:          movie.Title,
		Year:           movie.Year,
		Price:          movie.Price,
		AgeRestriction: movie.AgeRestriction,
		OccurredAt:     time.Now().UTC(),
	}
}

// publishMovieEvent is best effort: failures are logged, never returned.
func publishMovieEvent(ctx context.Context, events EventPublisher, log *zap.Logger, eventType string, movie *entity.Movie) {
	body, err := json.Marshal(newMovieEvent(eventType, movie))
	if err != nil {
		log.Warn("Failed to marshal movie event",
			zap.Error(err),
			zap.String("event", eventType),
		)
		return
	}

	if err := events.Publish(ctx, eventType, body); err != nil {
		log.Warn("Failed to publish movie event",
			zap.Error(err),
			zap.String("event", eventType),
			zap.Int64("movie_id", movie.ID),
		)
		return
	}

	log.Debug("Movie event published",
		zap.String("event", eventType),
		zap.Int64("movie_id", movie.ID),
	)
}
