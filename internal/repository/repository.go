// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"issue-stats/config"
	"issue-stats/internal/metrics"
	"issue-stats/internal/repository/youtrack"

	"go.uber.org/zap"
)

// Repository aggregates all backend interfaces.
type Repository interface {
	LifecycleInterface
	ProjectInterface
	IssueInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config, m *metrics.Metrics) (Repository, error) {
	switch name {
	case "youtrack":
		return youtrack.New(ctx, log, cfg, m), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
