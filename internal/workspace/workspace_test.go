package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/reelscribe/internal/logger"
)

func TestNewAndCleanup(t *testing.T) {
	ws, err := New(logger.Discard())
	require.NoError(t, err)

	info, err := os.Stat(ws.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Files inside go with the workspace.
	require.NoError(t, os.WriteFile(filepath.Join(ws.Dir, "video.mp4"), []byte("x"), 0644))

	ws.Cleanup(context.Background())
	_, err = os.Stat(ws.Dir)
	assert.True(t, os.IsNotExist(err))
}

func TestWorkspacesAreDistinct(t *testing.T) {
	a, err := New(logger.Discard())
	require.NoError(t, err)
	defer a.Cleanup(context.Background())

	b, err := New(logger.Discard())
	require.NoError(t, err)
	defer b.Cleanup(context.Background())

	assert.NotEqual(t, a.Dir, b.Dir)
}

func TestCleanupTwiceIsSafe(t *testing.T) {
	ws, err := New(logger.Discard())
	require.NoError(t, err)

	ctx := context.Background()
	ws.Cleanup(ctx)
	ws.Cleanup(ctx) // RemoveAll on a missing dir is a no-op.
}
