package entities

import (
	"time"

	"github.com/google/uuid"
)

// TransporterPricing is the tariff a transporter quotes with:
// a flat price up to the weight threshold, a per-kg rate above it.
type TransporterPricing struct {
	TransporterID            uuid.UUID
	WeightThresholdKg        float64
	FixedPriceUnderThreshold float64
	RatePerKg                float64
}

func (p TransporterPricing) Quote(weightKg float64) float64 {
	if weightKg <= 0 {
		return 0
	}
	if weightKg <= p.WeightThresholdKg {
		return p.FixedPriceUnderThreshold
	}
	return weightKg * p.RatePerKg
}

// TransporterStats is a read-only aggregate shown next to applications.
type TransporterStats struct {
	TransporterID       uuid.UUID
	AverageRating       float64
	TotalRatings        int64
	CompletedDeliveries int64
}

// RatingSnapshot is the latest rating aggregate published by the rating
// service for a transporter.
type RatingSnapshot struct {
	TransporterID uuid.UUID
	AverageRating float64
	TotalRatings  int64
	UpdatedAt     time.Time
}
