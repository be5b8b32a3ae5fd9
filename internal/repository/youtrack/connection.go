// Package youtrack implements the repository against the YouTrack REST API.
package youtrack

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"issue-stats/config"
	"issue-stats/internal/metrics"

	"go.uber.org/zap"
)

// DefaultPageSize is the $top value used for listing endpoints. A shorter
// page marks the end of the data.
const DefaultPageSize = 200

// YouTrack holds the HTTP client and credentials for one tracker instance.
type YouTrack struct {
	log     *zap.SugaredLogger
	cfg     config.YouTrackConfig
	metrics *metrics.Metrics

	baseURL    string
	httpClient *http.Client
	pageSize   int
}

// New creates a YouTrack repository instance.
func New(_ context.Context, log *zap.SugaredLogger, cfg *config.Config, m *metrics.Metrics) *YouTrack {
	return &YouTrack{
		log:      log.Named("repo.youtrack"),
		cfg:      cfg.YouTrack,
		metrics:  m,
		pageSize: DefaultPageSize,
	}
}

// OnStart validates the endpoint and prepares the HTTP client.
func (y *YouTrack) OnStart(_ context.Context) error {
	if y.cfg.Token == "" {
		return fmt.Errorf("start youtrack: permanent token must be provided")
	}
	baseURL, err := NormalizeBaseURL(y.cfg.Host)
	if err != nil {
		return fmt.Errorf("start youtrack: %w", err)
	}

	timeout := y.cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	y.baseURL = baseURL
	y.httpClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	y.log.Infow("youtrack ready", "base_url", baseURL, "timeout", timeout)
	return nil
}

// OnStop releases idle connections.
func (y *YouTrack) OnStop(_ context.Context) error {
	if y.httpClient != nil {
		y.httpClient.CloseIdleConnections()
	}
	return nil
}
