package rating_changed

import (
	"time"

	"deliveryhub/internal/entities"

	"github.com/google/uuid"
)

// ratingChangedEvent is the payload of transporter.rating.changed.
type ratingChangedEvent struct {
	TransporterID uuid.UUID `json:"transporter_id"`
	AverageRating float64   `json:"average_rating"`
	TotalRatings  int64     `json:"total_ratings"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (e ratingChangedEvent) toDomain() entities.RatingSnapshot {
	return entities.RatingSnapshot{
		TransporterID: e.TransporterID,
		AverageRating: e.AverageRating,
		TotalRatings:  e.TotalRatings,
		UpdatedAt:     e.UpdatedAt,
	}
}
