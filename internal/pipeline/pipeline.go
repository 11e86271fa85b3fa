// Package pipeline orchestrates the per-target flow: validate, download,
// transcribe, report. Targets run one at a time with a pacing delay between
// remote-touching runs to stay under the service's request budget.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/reelscribe/internal/errs"
	"github.com/nguyentantai21042004/reelscribe/internal/report"
	"github.com/nguyentantai21042004/reelscribe/internal/target"
)

func (p *implPipeline) Run(ctx context.Context, targets []string) (*report.Batch, error) {
	batch := &report.Batch{}
	ranRemote := false

	for _, tgt := range targets {
		if !target.Validate(tgt) {
			p.logger.Warn(ctx, "skipping invalid target %q", tgt)
			batch.Add(failedOutcome("", tgt, errs.New(errs.CodeInvalidURL, "not a valid video URL")))
			continue
		}

		// Invalid targets never reach the remote service, so they do not
		// consume a pacing slot.
		if ranRemote {
			if err := p.pause(ctx, p.cfg.Pipeline.Pacing()); err != nil {
				return batch, err
			}
		}
		ranRemote = true

		out, err := p.runOne(ctx, tgt)
		batch.Add(out)

		if err != nil && errs.Fatal(err) {
			p.logger.Error(ctx, "aborting batch after fatal failure: %v", err)
			return batch, err
		}
	}

	return batch, nil
}

// runOne processes a single validated target inside its own scratch
// workspace. The workspace is removed on every exit path.
func (p *implPipeline) runOne(ctx context.Context, tgt string) (report.Outcome, error) {
	jobID := uuid.NewString()
	p.logger.Info(ctx, "job %s: processing %s", jobID, tgt)

	ws, err := p.newWorkspace(p.logger)
	if err != nil {
		wrapped := errs.Wrap(err, errs.CodeInternal, "create workspace")
		return failedOutcome(jobID, tgt, wrapped), wrapped
	}
	defer ws.Cleanup(ctx)

	video, err := p.fetcher.Fetch(ctx, tgt, ws.Dir)
	if err != nil {
		p.logger.Warn(ctx, "job %s: download failed: %v", jobID, err)
		return failedOutcome(jobID, tgt, err), err
	}

	text, err := p.transcriber.Transcribe(ctx, video, ws.Dir)
	if err != nil {
		p.logger.Warn(ctx, "job %s: transcription failed: %v", jobID, err)
		return failedOutcome(jobID, tgt, err), err
	}

	p.logger.Info(ctx, "job %s: done (%d chars)", jobID, len(text))
	return report.Outcome{JobID: jobID, Target: tgt, Success: true, Transcript: text}, nil
}

func failedOutcome(jobID, tgt string, err error) report.Outcome {
	return report.Outcome{
		JobID:  jobID,
		Target: tgt,
		Code:   errs.CodeOf(err),
		Error:  err.Error(),
	}
}
