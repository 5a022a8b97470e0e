package watcher

import "context"

// Watcher monitors the inbox and hands new inputs to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one inbox file.
type EventHandler func(ctx context.Context, filePath string) error

// Ledger remembers which inputs, by content hash, were already processed.
type Ledger interface {
	// Claim records key and reports false when it was already present.
	Claim(ctx context.Context, key string) (bool, error)
	// Release forgets key so a failed input can be retried.
	Release(ctx context.Context, key string) error
	Count(ctx context.Context) (int64, error)
	Close() error
}
