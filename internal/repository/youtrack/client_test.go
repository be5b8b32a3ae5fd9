package youtrack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"issue-stats/config"
	"issue-stats/internal/entities"
	"issue-stats/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) (*YouTrack, *metrics.Metrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := metrics.New()
	cfg := &config.Config{YouTrack: config.YouTrackConfig{Host: srv.URL, Token: "perm:test"}}
	y := New(context.Background(), zap.NewNop().Sugar(), cfg, m)
	require.NoError(t, y.OnStart(context.Background()))
	t.Cleanup(func() { _ = y.OnStop(context.Background()) })
	return y, m
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "acme.youtrack.cloud", want: "https://acme.youtrack.cloud/api"},
		{in: "acme.youtrack.cloud/", want: "https://acme.youtrack.cloud/api"},
		{in: "https://acme.youtrack.cloud/api", want: "https://acme.youtrack.cloud/api"},
		{in: "https://acme.youtrack.cloud/api/", want: "https://acme.youtrack.cloud/api"},
		{in: "HTTP://tracker.local:8080/youtrack", want: "HTTP://tracker.local:8080/youtrack/api"},
		{in: "  tracker.local  ", want: "https://tracker.local/api"},
	}
	for _, tt := range tests {
		got, err := NormalizeBaseURL(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := NormalizeBaseURL("   ")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestOnStartRequiresHost(t *testing.T) {
	y := New(context.Background(), zap.NewNop().Sugar(), &config.Config{YouTrack: config.YouTrackConfig{Token: "x"}}, nil)
	require.ErrorIs(t, y.OnStart(context.Background()), entities.ErrInvalidArgument)
}

func TestRequestHeadersAndParams(t *testing.T) {
	var got *http.Request
	y, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	var out map[string]bool
	err := y.Request(context.Background(), "users/me", RequestOptions{
		Headers:      map[string]string{"Accept": "application/xml", "X-Trace": "1"},
		SearchParams: map[string]string{"fields": "id", "query": "", "$top": "5"},
	}, &out)
	require.NoError(t, err)
	require.True(t, out["ok"])

	require.Equal(t, http.MethodGet, got.Method)
	require.Equal(t, "/api/users/me", got.URL.Path)
	require.Equal(t, "Bearer perm:test", got.Header.Get("Authorization"))
	require.Equal(t, "application/xml", got.Header.Get("Accept"))
	require.Equal(t, "application/json", got.Header.Get("Content-Type"))
	require.Equal(t, "1", got.Header.Get("X-Trace"))

	q := got.URL.Query()
	require.Equal(t, "id", q.Get("fields"))
	require.Equal(t, "5", q.Get("$top"))
	_, hasQuery := q["query"]
	require.False(t, hasQuery)
}

func TestRequestAbsoluteURLPassesThrough(t *testing.T) {
	var path string
	y, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	out := map[string]string{"untouched": "yes"}
	absolute := strings.TrimSuffix(y.baseURL, "/api") + "/hub/health"
	require.NoError(t, y.Request(context.Background(), absolute, RequestOptions{}, &out))
	require.Equal(t, "yes", out["untouched"])
	require.Equal(t, "/hub/health", path)
}

func TestRequestUpstreamError(t *testing.T) {
	y, m := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
	})

	err := y.Request(context.Background(), "/issues", RequestOptions{}, nil)
	require.ErrorIs(t, err, entities.ErrUpstream)

	var upstream *entities.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	require.Equal(t, "Unauthorized", upstream.Status)
	require.Equal(t, "/api/issues", upstream.Path)
	require.Equal(t, `{"error":"Unauthorized"}`, upstream.Body)
	require.Contains(t, err.Error(), "401 Unauthorized")

	series, err := testutil.GatherAndCount(m.Registry, "issuestats_upstream_requests_total")
	require.NoError(t, err)
	require.Equal(t, 1, series)
}

func TestRequestEmptyEndpoint(t *testing.T) {
	y, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {})
	require.ErrorIs(t, y.Request(context.Background(), "", RequestOptions{}, nil), entities.ErrInvalidArgument)
}

func issuesPage(start, n int) []map[string]any {
	page := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		page = append(page, map[string]any{"id": strconv.Itoa(start + i), "state": "Open"})
	}
	return page
}

func TestIssuesPaginationFullLastPage(t *testing.T) {
	const total = 2 * DefaultPageSize
	var calls atomic.Int32
	y, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/api/issues", r.URL.Path)
		require.Equal(t, "project: {WEB}", r.URL.Query().Get("query"))
		require.Equal(t, strconv.Itoa(DefaultPageSize), r.URL.Query().Get("$top"))

		skip, _ := strconv.Atoi(r.URL.Query().Get("$skip"))
		n := total - skip
		if n > DefaultPageSize {
			n = DefaultPageSize
		}
		if n < 0 {
			n = 0
		}
		_ = json.NewEncoder(w).Encode(issuesPage(skip, n))
	})

	issues, err := y.Issues(context.Background(), entities.IssueQuery{Query: "project: {WEB}", Fields: "id,state(name)"})
	require.NoError(t, err)
	require.Len(t, issues, total)
	require.Equal(t, int32(3), calls.Load())

	seen := make(map[string]struct{}, len(issues))
	for _, is := range issues {
		_, dup := seen[is.ID]
		require.False(t, dup, "duplicate issue %s", is.ID)
		seen[is.ID] = struct{}{}
	}
}

func TestIssuesPaginationShortPage(t *testing.T) {
	var calls atomic.Int32
	y, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, defaultIssueFields, r.URL.Query().Get("fields"))
		_ = json.NewEncoder(w).Encode(issuesPage(0, 3))
	})

	issues, err := y.Issues(context.Background(), entities.IssueQuery{})
	require.NoError(t, err)
	require.Len(t, issues, 3)
	require.Equal(t, int32(1), calls.Load())
}

func TestProjectsNonArrayPageStops(t *testing.T) {
	var calls atomic.Int32
	y, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/api/admin/projects", r.URL.Path)
		require.Equal(t, defaultProjectFields, r.URL.Query().Get("fields"))
		_, _ = w.Write([]byte(`{"unexpected":"object"}`))
	})

	projects, err := y.Projects(context.Background())
	require.NoError(t, err)
	require.Empty(t, projects)
	require.Equal(t, int32(1), calls.Load())
}

func TestProjectsSkipAdvances(t *testing.T) {
	y, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		skip, _ := strconv.Atoi(r.URL.Query().Get("$skip"))
		var page []entities.Project
		if skip == 0 {
			for i := 0; i < DefaultPageSize; i++ {
				page = append(page, entities.Project{ID: fmt.Sprintf("0-%d", i)})
			}
		} else {
			require.Equal(t, DefaultPageSize, skip)
			page = append(page, entities.Project{ID: "last", Name: "Last", ShortName: "LST"})
		}
		_ = json.NewEncoder(w).Encode(page)
	})

	projects, err := y.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, DefaultPageSize+1)
	require.Equal(t, "LST", projects[DefaultPageSize].ShortName)
}

func TestIssuesErrorPropagates(t *testing.T) {
	y, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := y.Issues(context.Background(), entities.IssueQuery{Query: "project: {WEB}"})
	require.ErrorIs(t, err, entities.ErrUpstream)
	require.Contains(t, err.Error(), "project: {WEB}")
}
