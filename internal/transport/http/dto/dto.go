// Package dto holds the JSON shapes served over HTTP.
package dto

// StatsResponse is the aggregate returned by GET /stats.
type StatsResponse struct {
	TotalIssues      int      `json:"totalIssues"`
	ResolvedIssues   int      `json:"resolvedIssues"`
	ActiveIssues     int      `json:"activeIssues"`
	OpenIssues       int      `json:"openIssues"`
	InProgressIssues int      `json:"inProgressIssues"`
	CompletionRate   float64  `json:"completionRate"`
	Projects         []string `json:"projects,omitempty"`
}

// ErrorResponse is returned with every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DebugResponse echoes the test parameter for connectivity checks.
type DebugResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Test      *string `json:"test"`
}
