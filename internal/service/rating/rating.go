package rating

import (
	"context"
	"fmt"

	"deliveryhub/internal/entities"

	"github.com/google/uuid"
)

// Service keeps the local projection of transporter ratings and serves the
// aggregates shown next to applications.
type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// ApplyRatingChange stores a snapshot published by the rating service.
// Older snapshots than the stored one are ignored and reported as not
// applied.
func (s *Service) ApplyRatingChange(ctx context.Context, snapshot entities.RatingSnapshot) (bool, error) {
	if err := validateSnapshot(snapshot); err != nil {
		return false, err
	}

	snapshot.UpdatedAt = snapshot.UpdatedAt.UTC()
	applied, err := s.repository.UpsertSnapshot(ctx, snapshot)
	if err != nil {
		return false, fmt.Errorf("upsert rating snapshot: %w", err)
	}
	return applied, nil
}

// Stats returns aggregates for every requested transporter. Unknown
// transporters get zero stats.
func (s *Service) Stats(ctx context.Context, transporterIDs []uuid.UUID) (map[uuid.UUID]entities.TransporterStats, error) {
	unique := make([]uuid.UUID, 0, len(transporterIDs))
	seen := make(map[uuid.UUID]struct{}, len(transporterIDs))
	for _, id := range transporterIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	if len(unique) == 0 {
		return map[uuid.UUID]entities.TransporterStats{}, nil
	}

	stats, err := s.repository.GetStats(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("get transporter stats: %w", err)
	}

	for _, id := range unique {
		if _, ok := stats[id]; !ok {
			stats[id] = entities.TransporterStats{TransporterID: id}
		}
	}
	return stats, nil
}
