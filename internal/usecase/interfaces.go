package usecase

import (
	"context"

	"issue-stats/internal/entities"
)

// StatsUsecaseInterface abstracts statistics operations for the delivery layer.
type StatsUsecaseInterface interface {
	ComputeStats(ctx context.Context, project string) (entities.Stats, error)
}
