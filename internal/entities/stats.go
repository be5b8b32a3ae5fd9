package entities

// Stats is the aggregate served to the dashboard.
type Stats struct {
	TotalIssues      int      `json:"totalIssues" yaml:"totalIssues"`
	ResolvedIssues   int      `json:"resolvedIssues" yaml:"resolvedIssues"`
	ActiveIssues     int      `json:"activeIssues" yaml:"activeIssues"`
	OpenIssues       int      `json:"openIssues" yaml:"openIssues"`
	InProgressIssues int      `json:"inProgressIssues" yaml:"inProgressIssues"`
	CompletionRate   float64  `json:"completionRate" yaml:"completionRate"`
	Projects         []string `json:"projects,omitempty" yaml:"projects,omitempty"`
	Placeholder      bool     `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Error            string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Tally counts issues per category during one computation.
type Tally struct {
	Resolved   int
	InProgress int
	Open       int
	Other      int
}

// Add counts one issue in category c.
func (t *Tally) Add(c Category) {
	switch c {
	case CategoryResolved:
		t.Resolved++
	case CategoryInProgress:
		t.InProgress++
	case CategoryOpen:
		t.Open++
	default:
		t.Other++
	}
}

// Total returns the number of counted issues.
func (t Tally) Total() int {
	return t.Resolved + t.InProgress + t.Open + t.Other
}

// Stats derives the dashboard aggregate. Issues without a state count as
// active and land in OpenIssues together with unrecognised states.
func (t Tally) Stats() Stats {
	total := t.Total()
	active := total - t.Resolved
	open := active - t.InProgress
	if open < 0 {
		open = 0
	}

	var rate float64
	if total > 0 {
		rate = float64(t.Resolved) / float64(total) * 100
	}

	return Stats{
		TotalIssues:      total,
		ResolvedIssues:   t.Resolved,
		ActiveIssues:     active,
		OpenIssues:       open,
		InProgressIssues: t.InProgress,
		CompletionRate:   rate,
	}
}
