package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/reelscribe/internal/target"
	"github.com/nguyentantai21042004/reelscribe/internal/watcher"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch an inbox directory for dropped target-list files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), opts)
		},
	}
}

func runWatch(ctx context.Context, opts *rootOptions) error {
	a, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.cfg.Watch.Dir, 0755); err != nil {
		return err
	}

	handler := func(ctx context.Context, path string) error {
		targets, err := target.ParseFile(path)
		if err != nil {
			return err
		}
		if len(targets) == 0 {
			a.log.Warn(ctx, "%s contains no targets", path)
			return nil
		}

		batch, runErr := a.pipeline.Run(ctx, targets)
		os.Stdout.WriteString(batch.Format())
		return runErr
	}

	w, err := watcher.New(a.cfg.Watch.Dir, handler, a.log)
	if err != nil {
		return err
	}
	defer w.Stop()

	a.log.Info(ctx, "press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
