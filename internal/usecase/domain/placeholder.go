package domain

import (
	"math"
	"math/rand"

	"issue-stats/internal/entities"
)

// PlaceholderStats generates demonstration numbers for dashboards that must
// keep rendering while the tracker is unreachable. The result is flagged with
// Placeholder and must never be presented as live data.
func PlaceholderStats(rng *rand.Rand) entities.Stats {
	total := 120 + rng.Intn(60)
	resolved := int(float64(total) * (0.55 + rng.Float64()*0.25))
	active := total - resolved
	open := int(float64(active) * (0.4 + rng.Float64()*0.3))
	inProgress := active - open

	return entities.Stats{
		TotalIssues:      total,
		ResolvedIssues:   resolved,
		ActiveIssues:     active,
		OpenIssues:       open,
		InProgressIssues: inProgress,
		CompletionRate:   math.Round(float64(resolved)/float64(total)*1000) / 10,
		Placeholder:      true,
	}
}
