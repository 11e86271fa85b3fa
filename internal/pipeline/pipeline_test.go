package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/errs"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/internal/report"
	"github.com/nguyentantai21042004/reelscribe/internal/workspace"
)

type fakeFetcher struct {
	errs map[string]error

	fetched []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, tgt, dir string) (string, error) {
	f.fetched = append(f.fetched, tgt)
	if err := f.errs[tgt]; err != nil {
		return "", err
	}
	return dir + "/reel.mp4", nil
}

type fakeTranscriber struct {
	calls int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, videoPath, workDir string) (string, error) {
	f.calls++
	return "transcript", nil
}

func newForTest(t *testing.T, f *fakeFetcher, tr *fakeTranscriber) (*implPipeline, *int) {
	t.Helper()
	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())

	pauses := 0
	p := New(cfg, logger.Discard(), f, tr).(*implPipeline)
	p.pause = func(ctx context.Context, d time.Duration) error {
		pauses++
		return nil
	}
	p.newWorkspace = func(l logger.Logger) (*workspace.Workspace, error) {
		return workspace.New(l)
	}
	return p, &pauses
}

func TestRunBatchOrderAndCounts(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{
		"https://example.com/b": errs.New(errs.CodeDownloadFailed, "no file produced"),
	}}
	p, pauses := newForTest(t, f, &fakeTranscriber{})

	targets := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}
	batch, err := p.Run(context.Background(), targets)
	require.NoError(t, err)

	require.Equal(t, 3, batch.Total())
	assert.Equal(t, 2, batch.Successes())

	// Outcomes come back in submission order regardless of success.
	assert.Equal(t, targets[0], batch.Outcomes[0].Target)
	assert.True(t, batch.Outcomes[0].Success)
	assert.Equal(t, targets[1], batch.Outcomes[1].Target)
	assert.False(t, batch.Outcomes[1].Success)
	assert.Equal(t, errs.CodeDownloadFailed, batch.Outcomes[1].Code)
	assert.Equal(t, targets[2], batch.Outcomes[2].Target)
	assert.True(t, batch.Outcomes[2].Success)

	// Pacing between consecutive runs only, never after the last.
	assert.Equal(t, 2, *pauses)
}

func TestRunSingleTargetNoPacing(t *testing.T) {
	p, pauses := newForTest(t, &fakeFetcher{}, &fakeTranscriber{})

	batch, err := p.Run(context.Background(), []string{"https://example.com/a"})
	require.NoError(t, err)
	assert.Equal(t, 1, batch.Successes())
	assert.Zero(t, *pauses)
}

func TestRunInvalidTargetSkipsPipeline(t *testing.T) {
	f := &fakeFetcher{}
	p, pauses := newForTest(t, f, &fakeTranscriber{})

	batch, err := p.Run(context.Background(), []string{
		"not-a-url",
		"https://example.com/a",
		"ftp://example.com/b",
		"https://example.com/c",
	})
	require.NoError(t, err)

	require.Equal(t, 4, batch.Total())
	assert.Equal(t, 2, batch.Successes())
	assert.Equal(t, errs.CodeInvalidURL, batch.Outcomes[0].Code)
	assert.Equal(t, errs.CodeInvalidURL, batch.Outcomes[2].Code)
	assert.Empty(t, batch.Outcomes[0].JobID, "rejected targets never get a job")

	// Only the two valid targets were fetched, and invalid entries do not
	// consume pacing slots.
	assert.Equal(t, []string{"https://example.com/a", "https://example.com/c"}, f.fetched)
	assert.Equal(t, 1, *pauses)
}

func TestRunFatalErrorAbortsBatch(t *testing.T) {
	f := &fakeFetcher{}
	p, _ := newForTest(t, f, &fakeTranscriber{})

	authErr := errs.New(errs.CodeAuth, "credentials rejected")
	calls := 0
	p.transcriber = transcribeFunc(func(ctx context.Context, videoPath, workDir string) (string, error) {
		calls++
		if calls == 2 {
			return "", authErr
		}
		return "transcript", nil
	})

	batch, err := p.Run(context.Background(), []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	})
	require.Error(t, err)
	assert.Equal(t, errs.CodeAuth, errs.CodeOf(err))

	// The partial batch covers the targets attempted before the abort.
	require.Equal(t, 2, batch.Total())
	assert.True(t, batch.Outcomes[0].Success)
	assert.Equal(t, errs.CodeAuth, batch.Outcomes[1].Code)
	assert.Equal(t, 2, len(f.fetched), "third target never attempted")
}

func TestRunNonFatalErrorsContinue(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{
		"https://example.com/a": errs.New(errs.CodeDownloadFailed, "timed out"),
		"https://example.com/b": errs.New(errs.CodeDownloadFailed, "timed out"),
	}}
	p, _ := newForTest(t, f, &fakeTranscriber{})

	batch, err := p.Run(context.Background(), []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, batch.Total())
	assert.Equal(t, 1, batch.Successes())
}

func TestRunPacingRespectsContext(t *testing.T) {
	p, _ := newForTest(t, &fakeFetcher{}, &fakeTranscriber{})
	p.pause = sleepContext
	p.cfg.Pipeline.PacingSeconds = 30

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var batch *report.Batch
	var runErr error
	go func() {
		defer close(done)
		batch, runErr = p.Run(ctx, []string{"https://example.com/a", "https://example.com/b"})
	}()

	// Give the first target time to finish, then cancel during pacing.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancellation")
	}

	require.Error(t, runErr)
	assert.ErrorIs(t, runErr, context.Canceled)
	assert.Equal(t, 1, batch.Total())
}

// transcribeFunc adapts a function to the Transcriber interface.
type transcribeFunc func(ctx context.Context, videoPath, workDir string) (string, error)

func (f transcribeFunc) Transcribe(ctx context.Context, videoPath, workDir string) (string, error) {
	return f(ctx, videoPath, workDir)
}
