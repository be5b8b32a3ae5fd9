package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTallyStatsEmpty(t *testing.T) {
	var tally Tally
	st := tally.Stats()
	require.Zero(t, st.TotalIssues)
	require.Zero(t, st.CompletionRate)
	require.Zero(t, st.OpenIssues)
}

func TestTallyStatsDerivation(t *testing.T) {
	tally := Tally{Resolved: 3, InProgress: 2, Open: 4, Other: 1}
	st := tally.Stats()

	require.Equal(t, 10, st.TotalIssues)
	require.Equal(t, 3, st.ResolvedIssues)
	require.Equal(t, 7, st.ActiveIssues)
	require.Equal(t, 2, st.InProgressIssues)
	require.Equal(t, 5, st.OpenIssues)
	require.InDelta(t, 30.0, st.CompletionRate, 1e-9)
	require.Equal(t, st.TotalIssues, st.ResolvedIssues+st.ActiveIssues)
}

func TestTallyAdd(t *testing.T) {
	var tally Tally
	for _, c := range Categories {
		tally.Add(c)
	}
	tally.Add(Category("unexpected"))
	require.Equal(t, Tally{Resolved: 1, InProgress: 1, Open: 1, Other: 2}, tally)
}
