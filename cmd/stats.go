package main

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"issue-stats/internal/entities"
	"issue-stats/internal/report"
	"issue-stats/internal/usecase"
	"issue-stats/internal/usecase/domain"

	"github.com/spf13/cobra"
)

type statsOptions struct {
	project            string
	output             string
	placeholderOnError bool
}

func newStatsCmd() *cobra.Command {
	var opts statsOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute issue statistics once and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := report.ParseFormat(opts.output)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			uc := usecase.New(a.log, ctx, a.repo, a.cfg.HTTP.RequestTimeout, a.metrics)
			return runStats(ctx, uc, opts, format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.project, "project", "p", "", "Project id, name or short name to scope the stats to")
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(report.FormatTable), "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&opts.placeholderOnError, "placeholder-on-error", false, "Print flagged placeholder numbers when the tracker cannot be reached")

	return cmd
}

func runStats(ctx context.Context, uc usecase.StatsUsecaseInterface, opts statsOptions, format report.Format, out io.Writer) error {
	stats, err := uc.ComputeStats(ctx, opts.project)
	if err != nil {
		if !opts.placeholderOnError || !placeholderEligible(err) {
			return err
		}
		stats = domain.PlaceholderStats(rand.New(rand.NewSource(time.Now().UnixNano())))
		stats.Error = err.Error()
	}
	return report.Write(out, format, stats)
}

// placeholderEligible reports whether err comes from reaching the tracker
// rather than from the caller's input.
func placeholderEligible(err error) bool {
	return !errors.Is(err, entities.ErrProjectNotFound) && !errors.Is(err, entities.ErrInvalidArgument)
}
