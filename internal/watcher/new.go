package watcher

import (
	"fmt"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/semaphore"
)

const (
	defaultMaxConcurrent = 2
	defaultSettle        = 500 * time.Millisecond
)

type Options struct {
	InputDir      string
	ArchiveDir    string
	MaxConcurrent int
	// Settle is how long a new file is left alone before it is read.
	Settle time.Duration
	// Accept filters inbox files by name.
	Accept func(path string) bool
}

// New creates a new Watcher instance with concurrency control
func New(opts Options, handler EventHandler, ledger Ledger, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(opts.InputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return newWatcher(opts, handler, ledger, log, watcher), nil
}

func newWatcher(opts Options, handler EventHandler, ledger Ledger, log logger.Logger, fw *fsnotify.Watcher) *implWatcher {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultMaxConcurrent
	}
	if opts.Settle <= 0 {
		opts.Settle = defaultSettle
	}
	if opts.Accept == nil {
		opts.Accept = func(string) bool { return true }
	}
	if ledger == nil {
		ledger = NewMemoryLedger()
	}

	return &implWatcher{
		opts:     opts,
		handler:  handler,
		ledger:   ledger,
		logger:   log,
		watcher:  fw,
		slots:    semaphore.NewWeighted(int64(opts.MaxConcurrent)),
		inFlight: make(map[string]bool),
	}
}
