package rating

import (
	"deliveryhub/internal/entities"

	"github.com/google/uuid"
)

const (
	minAverageRating = 0
	maxAverageRating = 5
)

func validateSnapshot(s entities.RatingSnapshot) error {
	switch {
	case s.TransporterID == uuid.Nil:
		return ErrMissingTransporterID
	case s.AverageRating < minAverageRating || s.AverageRating > maxAverageRating:
		return ErrInvalidAverage
	case s.TotalRatings < 0:
		return ErrInvalidTotal
	case s.UpdatedAt.IsZero():
		return ErrMissingTimestamp
	}
	return nil
}
