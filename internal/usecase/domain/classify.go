// Package domain contains application services orchestrating domain logic by issue state.
package domain

import (
	"strings"

	"issue-stats/internal/entities"
)

var resolvedStates = map[string]struct{}{
	"done":       {},
	"fixed":      {},
	"closed":     {},
	"resolved":   {},
	"complete":   {},
	"completed":  {},
	"released":   {},
	"production": {},
	"archived":   {},
}

var inProgressStates = map[string]struct{}{
	"in progress":     {},
	"in development":  {},
	"development":     {},
	"reviewing":       {},
	"ready to review": {},
	"testing":         {},
	"under review":    {},
	"qa":              {},
	"verification":    {},
	"correction":      {},
}

// ExtractState returns the workflow state name of an issue. The top-level
// state wins over the "State" custom field whenever it is set, even if it
// carries no usable name.
func ExtractState(issue entities.Issue) (string, bool) {
	if issue.State.IsPresent() {
		s := issue.State
		switch s.Kind {
		case entities.StateKindText:
			return s.Text, true
		case entities.StateKindObject:
			return firstNonEmpty(s.Name, s.Presentation, s.LocalizedName)
		}
	}

	for _, f := range issue.CustomFields {
		if f.Name != entities.StateFieldName {
			continue
		}
		if !f.Value.IsPresent() {
			return "", false
		}
		switch f.Value.Kind {
		case entities.StateKindText:
			return f.Value.Text, true
		case entities.StateKindObject:
			return firstNonEmpty(f.Value.Name, f.Value.Presentation)
		}
		return "", false
	}

	return "", false
}

func firstNonEmpty(values ...string) (string, bool) {
	for _, v := range values {
		if v != "" {
			return v, true
		}
	}
	return "", false
}

// CategorizeState maps a state name to its category. Matching is by
// lower-cased exact name; surrounding whitespace is significant.
func CategorizeState(name string) entities.Category {
	if name == "" {
		return entities.CategoryOther
	}
	normalized := strings.ToLower(name)
	if _, ok := resolvedStates[normalized]; ok {
		return entities.CategoryResolved
	}
	if _, ok := inProgressStates[normalized]; ok {
		return entities.CategoryInProgress
	}
	return entities.CategoryOpen
}

// Classify extracts and categorizes the state of one issue.
func Classify(issue entities.Issue) entities.Category {
	name, _ := ExtractState(issue)
	return CategorizeState(name)
}
