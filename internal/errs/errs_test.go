package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"quota message", errors.New("googleapi: Error: quota exceeded for project"), CodeRateLimited},
		{"429 status", errors.New("rpc error: code 429 RESOURCE_EXHAUSTED"), CodeRateLimited},
		{"rate word", errors.New("you have been Rate limited"), CodeRateLimited},
		{"api key invalid", errors.New("API_KEY_INVALID: the provided value is not valid"), CodeAuth},
		{"401 unauthorized", errors.New("server returned 401 unauthorized"), CodeAuth},
		{"403 forbidden", errors.New("permission denied: 403"), CodeAuth},
		{"unknown", errors.New("connection reset by peer"), CodeRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Code)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

// A message carrying both rate-limit and auth tokens must classify as rate
// limited; the rate check runs first.
func TestClassifyRateBeforeAuth(t *testing.T) {
	err := errors.New("API key quota exceeded, got 429 from server")
	got := Classify(err)
	assert.Equal(t, CodeRateLimited, got.Code)

	err = errors.New("invalid api key (429)")
	assert.Equal(t, CodeRateLimited, Classify(err).Code)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, CodeRateLimited, Classify(errors.New("QUOTA EXHAUSTED")).Code)
	assert.Equal(t, CodeAuth, Classify(errors.New("BAD API KEY")).Code)
}

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidURL, 1},
		{CodeDownloadFailed, 2},
		{CodeMissingCredential, 3},
		{CodeRateLimited, 4},
		{CodeAuth, 5},
		{CodeRemote, 5},
		{CodeProcessingFailed, 5},
		{CodeProcessingTimeout, 5},
		{CodeCompression, 6},
		{CodeVideoTooLarge, 6},
		{CodeNoNetwork, 7},
	}

	seenPerExit := map[int][]Code{}
	for _, tt := range tests {
		got := ExitCode(New(tt.code, "x"))
		assert.Equal(t, tt.want, got, "exit code for %s", tt.code)
		seenPerExit[got] = append(seenPerExit[got], tt.code)
	}

	// Every documented exit code is reachable.
	for exit := 1; exit <= 7; exit++ {
		assert.NotEmpty(t, seenPerExit[exit], "exit code %d unused", exit)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, CodeDownloadFailed, "yt-dlp produced nothing")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeDownloadFailed, CodeOf(err))
	assert.Contains(t, err.Error(), "DOWNLOAD_FAILED")
	assert.Contains(t, err.Error(), "boom")

	// Codes survive further wrapping.
	wrapped := fmt.Errorf("target https://a.b: %w", err)
	assert.Equal(t, CodeDownloadFailed, CodeOf(wrapped))
	assert.True(t, Is(wrapped, CodeDownloadFailed))
}

func TestFatal(t *testing.T) {
	assert.True(t, Fatal(New(CodeAuth, "x")))
	assert.True(t, Fatal(New(CodeNoNetwork, "x")))
	assert.True(t, Fatal(New(CodeMissingCredential, "x")))
	assert.False(t, Fatal(New(CodeRateLimited, "x")))
	assert.False(t, Fatal(New(CodeDownloadFailed, "x")))
	assert.False(t, Fatal(nil))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}
