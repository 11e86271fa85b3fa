package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/reelscribe/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web form and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	a, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	srv := server.New(a.cfg, a.log, a.pipeline)
	return srv.Start(ctx)
}
