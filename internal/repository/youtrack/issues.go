package youtrack

import (
	"context"
	"fmt"

	"issue-stats/internal/entities"
)

const (
	projectsEndpoint = "/admin/projects"
	issuesEndpoint   = "/issues"

	defaultProjectFields = "id,name,shortName"
	defaultIssueFields   = "id,summary,customFields(name,value(name,presentation))"
)

// Projects returns every project visible to the token.
func (y *YouTrack) Projects(ctx context.Context) ([]entities.Project, error) {
	projects, err := fetchAll[entities.Project](ctx, y, projectsEndpoint, map[string]string{
		"fields": defaultProjectFields,
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	y.log.Debugw("projects fetched", "count", len(projects))
	return projects, nil
}

// Issues returns every issue matching the query.
func (y *YouTrack) Issues(ctx context.Context, query entities.IssueQuery) ([]entities.Issue, error) {
	fields := query.Fields
	if fields == "" {
		fields = defaultIssueFields
	}
	issues, err := fetchAll[entities.Issue](ctx, y, issuesEndpoint, map[string]string{
		"fields": fields,
		"query":  query.Query,
	})
	if err != nil {
		return nil, fmt.Errorf("list issues %q: %w", query.Query, err)
	}
	y.log.Debugw("issues fetched", "query", query.Query, "count", len(issues))
	return issues, nil
}
