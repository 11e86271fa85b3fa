// Package watcher runs the pipeline as a drop-folder service: a .txt file of
// target URLs placed in the inbox directory kicks off a batch run.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/reelscribe/internal/logger"
)

// settleDelay gives the writer time to finish the file after the create
// event fires.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	inboxDir  string
	handler   Handler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start blocks, dispatching dropped target-list files until ctx is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "watching %s for target-list files (.txt)", w.inboxDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "waiting for in-flight batch to finish")
			w.wg.Wait()
			w.logger.Info(ctx, "watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isTargetList(event.Name) {
				w.logger.Debug(ctx, "ignoring %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "target list dropped: %s", event.Name)
			time.Sleep(settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(path string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, path); err != nil {
						w.logger.Error(ctx, "failed to process %s: %v", path, err)
					}
				}(event.Name)
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "watch error: %v", err)
		}
	}
}

func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isTargetList(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".txt"
}
