package main

import (
	"context"

	"issue-stats/internal/transport/http/server"
	"issue-stats/internal/usecase"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer a.close()
			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	cfg := a.cfg
	uc := usecase.New(a.log, ctx, a.repo, cfg.HTTP.RequestTimeout, a.metrics)

	serv := server.New(server.Options{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	}, a.log, uc, a.metrics)

	errCh := make(chan error, 1)
	go func() {
		a.log.Infow("server listening", "addr", cfg.ServerAddr(), "youtrack", cfg.YouTrack.Host)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			a.log.Errorw("failed to start server", "error", err)
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		a.log.Infow("server stopped")
	case <-shutdownCtx.Done():
		a.log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
	return nil
}
