// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"issue-stats/internal/entities"
	"issue-stats/internal/transport/http/dto"
)

// ToStatsResponse maps aggregated statistics to transport model.
func ToStatsResponse(src entities.Stats) dto.StatsResponse {
	var projects []string
	if len(src.Projects) > 0 {
		projects = make([]string, len(src.Projects))
		copy(projects, src.Projects)
	}

	return dto.StatsResponse{
		TotalIssues:      src.TotalIssues,
		ResolvedIssues:   src.ResolvedIssues,
		ActiveIssues:     src.ActiveIssues,
		OpenIssues:       src.OpenIssues,
		InProgressIssues: src.InProgressIssues,
		CompletionRate:   src.CompletionRate,
		Projects:         projects,
	}
}
