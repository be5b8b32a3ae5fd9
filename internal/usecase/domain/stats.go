// Package domain contains application services orchestrating domain logic by statistics.
package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"issue-stats/internal/entities"
	"issue-stats/internal/metrics"
)

const issueStatsFields = "id,customFields(name,value(name,presentation)),state(name,presentation)"

// ComputeStats aggregates issue counts over all projects, or over the
// projects matching the given id, name or short name.
func (u *Usecase) ComputeStats(ctx context.Context, project string) (entities.Stats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	start := time.Now()
	stats, err := u.computeStats(ctx, project)
	if err != nil {
		u.metrics.ObserveComputation(metrics.OutcomeError)
		return entities.Stats{}, err
	}
	u.metrics.ObserveComputation(metrics.OutcomeOK)

	u.log.Infow("stats computed",
		"project", project,
		"projects", len(stats.Projects),
		"total", stats.TotalIssues,
		"resolved", stats.ResolvedIssues,
		"in_progress", stats.InProgressIssues,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return stats, nil
}

func (u *Usecase) computeStats(ctx context.Context, project string) (entities.Stats, error) {
	projects, err := u.repo.Projects(ctx)
	if err != nil {
		return entities.Stats{}, err
	}
	scoped, err := FilterProjects(projects, project)
	if err != nil {
		return entities.Stats{}, err
	}

	var tally entities.Tally
	labels := make([]string, 0, len(scoped))
	for _, p := range scoped {
		issues, err := u.repo.Issues(ctx, entities.IssueQuery{
			Query:  fmt.Sprintf("project: {%s}", p.QueryKey()),
			Fields: issueStatsFields,
		})
		if err != nil {
			return entities.Stats{}, fmt.Errorf("project %s: %w", p.Label(), err)
		}

		var projectTally entities.Tally
		for _, issue := range issues {
			projectTally.Add(Classify(issue))
		}
		u.observeTally(projectTally)
		u.log.Debugw("project classified",
			"project", p.Label(),
			"issues", projectTally.Total(),
			"resolved", projectTally.Resolved,
			"in_progress", projectTally.InProgress,
			"open", projectTally.Open,
			"other", projectTally.Other,
		)

		tally.Resolved += projectTally.Resolved
		tally.InProgress += projectTally.InProgress
		tally.Open += projectTally.Open
		tally.Other += projectTally.Other
		labels = append(labels, p.Label())
	}

	stats := tally.Stats()
	stats.Projects = labels
	return stats, nil
}

func (u *Usecase) observeTally(t entities.Tally) {
	u.metrics.ObserveClassified(entities.CategoryResolved.String(), t.Resolved)
	u.metrics.ObserveClassified(entities.CategoryInProgress.String(), t.InProgress)
	u.metrics.ObserveClassified(entities.CategoryOpen.String(), t.Open)
	u.metrics.ObserveClassified(entities.CategoryOther.String(), t.Other)
}

// FilterProjects keeps projects whose id, name or short name equals the
// trimmed filter, ignoring case. An empty filter keeps everything.
func FilterProjects(projects []entities.Project, filter string) ([]entities.Project, error) {
	searched := strings.TrimSpace(filter)
	if searched == "" {
		return projects, nil
	}

	filtered := make([]entities.Project, 0, 1)
	for _, p := range projects {
		for _, candidate := range []string{p.ID, p.Name, p.ShortName} {
			if candidate != "" && strings.EqualFold(candidate, searched) {
				filtered = append(filtered, p)
				break
			}
		}
	}

	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: %q is missing or not accessible with current permissions", entities.ErrProjectNotFound, filter)
	}
	return filtered, nil
}
