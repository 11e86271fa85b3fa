package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/reelscribe/internal/compressor"
	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/errs"
	"github.com/nguyentantai21042004/reelscribe/internal/fetcher"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/internal/netcheck"
	"github.com/nguyentantai21042004/reelscribe/internal/pipeline"
	"github.com/nguyentantai21042004/reelscribe/internal/report"
	"github.com/nguyentantai21042004/reelscribe/internal/target"
	"github.com/nguyentantai21042004/reelscribe/internal/transcriber"
	"github.com/nguyentantai21042004/reelscribe/pkg/executor"
)

// app holds the wired components shared by every subcommand.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	pipeline pipeline.Pipeline
}

type rootOptions struct {
	configPath string
	targetFile string
	docxPath   string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "reelscribe [url...]",
		Short: "Transcribe social media videos with the Gemini API",
		Long: "reelscribe downloads short videos with yt-dlp, compresses them under the\n" +
			"upload ceiling when needed, and transcribes them with the Gemini API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscribe(cmd.Context(), opts, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to config.yaml (optional)")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.targetFile, "file", "", "newline-delimited file of target URLs")
	cmd.Flags().StringVar(&opts.docxPath, "docx", "", "also write transcripts to a .docx file")

	cmd.AddCommand(newServeCmd(opts), newWatchCmd(opts))
	return cmd
}

// setup loads the environment and configuration, runs the preflight checks,
// and wires the pipeline. Every subcommand goes through here.
func setup(ctx context.Context, opts *rootOptions) (*app, error) {
	// A missing .env file is fine; the variable may come from the shell.
	_ = godotenv.Load()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	log := logger.New(cfg.Logging.Level)

	if !netcheck.Check(cfg.Probe.Address, cfg.Probe.Timeout()) {
		return nil, errs.New(errs.CodeNoNetwork, "no network connection")
	}

	exec := executor.New()
	if _, err := exec.LookPath(cfg.Tools.YtDlp); err != nil {
		return nil, errs.Wrap(err, errs.CodeDownloadFailed, "yt-dlp not found, install it first")
	}

	if cfg.Gemini.APIKey == "" {
		return nil, errs.New(errs.CodeMissingCredential, "GEMINI_API_KEY is not set")
	}

	f := fetcher.New(cfg, exec, log)

	// ffmpeg is optional: without it oversized videos fail instead of
	// being re-encoded.
	var comp compressor.Compressor
	if _, err := exec.LookPath(cfg.Tools.FFmpeg); err == nil {
		comp = compressor.New(cfg, exec, log)
	} else {
		log.Warn(ctx, "ffmpeg not found, oversized videos will be rejected")
	}

	tr, err := transcriber.New(ctx, cfg, log, comp)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      log,
		pipeline: pipeline.New(cfg, log, f, tr),
	}, nil
}

func runTranscribe(ctx context.Context, opts *rootOptions, args []string) error {
	targets := args
	if opts.targetFile != "" {
		fromFile, err := target.ParseFile(opts.targetFile)
		if err != nil {
			return errs.Wrap(err, errs.CodeInvalidURL, "read target file")
		}
		targets = append(targets, fromFile...)
	}
	if len(targets) == 0 {
		return errs.New(errs.CodeInvalidURL, "no targets given; pass URLs or --file")
	}

	a, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	batch, runErr := a.pipeline.Run(ctx, targets)

	if len(targets) == 1 && batch.Total() == 1 {
		out := batch.Outcomes[0]
		if !out.Success {
			if runErr != nil {
				return runErr
			}
			return errs.New(out.Code, "%s", out.Error)
		}
		// A lone transcript goes to stdout bare, ready for piping.
		fmt.Println(out.Transcript)
		return nil
	}

	fmt.Print(batch.Format())

	if opts.docxPath != "" {
		if err := report.WriteDocx(batch, "Video Transcripts", opts.docxPath); err != nil {
			a.log.Error(ctx, "failed to write %s: %v", opts.docxPath, err)
		} else {
			a.log.Info(ctx, "transcripts written to %s", opts.docxPath)
		}
	}

	if runErr != nil {
		return runErr
	}
	if batch.Successes() == 0 {
		return firstFailure(batch)
	}
	return nil
}

// firstFailure turns an all-failed batch into a process error carrying the
// first target's failure code.
func firstFailure(batch *report.Batch) error {
	for _, o := range batch.Outcomes {
		if !o.Success {
			return errs.New(o.Code, "%s", o.Error)
		}
	}
	return errs.New(errs.CodeInternal, "empty batch")
}
