//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_test
package rating

import (
	"context"

	"deliveryhub/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	UpsertSnapshot(ctx context.Context, snapshot entities.RatingSnapshot) (bool, error)
	GetStats(ctx context.Context, transporterIDs []uuid.UUID) (map[uuid.UUID]entities.TransporterStats, error)
}
