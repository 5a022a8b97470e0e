package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/semaphore"
)

type implWatcher struct {
	opts    Options
	handler EventHandler
	ledger  Ledger
	logger  logger.Logger
	watcher *fsnotify.Watcher
	// slots bounds the number of inputs handled at once.
	slots *semaphore.Weighted
	wg    sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]bool
}

// Start processes files already waiting in the inbox, then monitors it
// until ctx is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.opts.MaxConcurrent, w.opts.InputDir)

	if err := w.scan(ctx); err != nil {
		w.logger.Warn(ctx, "Initial inbox scan failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := w.dispatch(ctx, event.Name); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) scan(ctx context.Context) error {
	entries, err := os.ReadDir(w.opts.InputDir)
	if err != nil {
		return fmt.Errorf("read inbox: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := w.dispatch(ctx, filepath.Join(w.opts.InputDir, name)); err != nil {
			return err
		}
	}
	return nil
}

// dispatch starts a job for path once a slot is free. It only returns an
// error when ctx ends while waiting.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	if !w.opts.Accept(path) {
		w.logger.Debug(ctx, "Ignoring unsupported file: %s", path)
		return nil
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return nil
	}
	if !w.begin(path) {
		return nil
	}

	w.logger.Info(ctx, "New input detected: %s", path)

	if err := w.slots.Acquire(ctx, 1); err != nil {
		w.end(path)
		return err
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.slots.Release(1)
		defer w.end(path)

		if err := w.process(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) process(ctx context.Context, path string) error {
	// let the writer finish before hashing
	select {
	case <-time.After(w.opts.Settle):
	case <-ctx.Done():
		return ctx.Err()
	}

	key, err := Fingerprint(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("fingerprint: %w", err)
	}

	fresh, err := w.ledger.Claim(ctx, key)
	if err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	if !fresh {
		w.logger.Info(ctx, "Skipping already processed input: %s", path)
		return w.archive(ctx, path)
	}

	if err := w.handler(ctx, path); err != nil {
		if rerr := w.ledger.Release(ctx, key); rerr != nil {
			w.logger.Warn(ctx, "Failed to release ledger entry for %s: %v", path, rerr)
		}
		return err
	}

	return w.archive(ctx, path)
}

func (w *implWatcher) archive(ctx context.Context, path string) error {
	if w.opts.ArchiveDir == "" {
		return nil
	}
	if err := os.MkdirAll(w.opts.ArchiveDir, 0755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	dest := filepath.Join(w.opts.ArchiveDir, filepath.Base(path))
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(dest)
		dest = fmt.Sprintf("%s-%d%s", dest[:len(dest)-len(ext)], time.Now().UnixNano(), ext)
	}

	w.logger.Info(ctx, "Archiving: %s -> %s", path, dest)
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return nil
}

// begin marks path in flight; Create and Rename can both fire for one file.
func (w *implWatcher) begin(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight[path] {
		return false
	}
	w.inFlight[path] = true
	return true
}

func (w *implWatcher) end(path string) {
	w.mu.Lock()
	delete(w.inFlight, path)
	w.mu.Unlock()
}
