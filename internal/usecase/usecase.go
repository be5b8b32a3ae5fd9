package usecase

import (
	"context"
	"time"

	"issue-stats/internal/metrics"
	"issue-stats/internal/repository"
	"issue-stats/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	m *metrics.Metrics,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, m)
}
