// Package main is the entrypoint of the issue statistics service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"issue-stats/config"
	"issue-stats/internal/metrics"
	"issue-stats/internal/repository"
	"issue-stats/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "issue-stats",
		Short: "Aggregate YouTrack issue statistics for dashboards",
		Long: `
Aggregate YouTrack issue statistics for dashboards.

Configuration is read from the environment, optionally seeded from a dotenv
file (config/.env, or the path in ENV_FILE_PATH):

  YOUTRACK_API_TOKEN | YOUTRACK_TOKEN                     (required)
  YOUTRACK_API_URL | YOUTRACK_BASE_URL | YOUTRACK_HOST    (required)
  YOUTRACK_TIMEOUT                                        (default 30s)
  SERVER_HOST, SERVER_PORT                                (default 0.0.0.0:8080)
  SERVER_SHUTDOWN_TIMEOUT                                 (default 5s)
  HTTP_REQUEST_TIMEOUT                                    (default 60s)
  LOGGING_LEVEL                                           (default info)
`,
		SilenceUsage: true,
	}

	serve := newServeCmd()
	root.AddCommand(serve, newStatsCmd())
	// Running without a subcommand starts the server.
	root.RunE = serve.RunE

	return root
}

// app holds the dependencies shared by all subcommands.
type app struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	repo    repository.Repository
	metrics *metrics.Metrics
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	m := metrics.New()

	repo, err := repository.New(ctx, "youtrack", log, cfg, m)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return nil, err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return nil, err
	}

	return &app{cfg: cfg, log: log, repo: repo, metrics: m}, nil
}

func (a *app) close() {
	_ = a.repo.OnStop(context.Background())
	_ = a.log.Sync()
}
