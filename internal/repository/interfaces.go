// Package repository contains interfaces for the issue tracker backends.
package repository

import (
	"context"

	"issue-stats/internal/entities"
)

// LifecycleInterface describes backend startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ProjectInterface exposes project listing.
type ProjectInterface interface {
	Projects(ctx context.Context) ([]entities.Project, error)
}

// IssueInterface exposes issue listing.
type IssueInterface interface {
	Issues(ctx context.Context, query entities.IssueQuery) ([]entities.Issue, error)
}
