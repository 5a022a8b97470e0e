package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"
)

type memoryLedger struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewMemoryLedger returns a Ledger that lives as long as the process.
func NewMemoryLedger() Ledger {
	return &memoryLedger{seen: make(map[string]struct{})}
}

func (l *memoryLedger) Claim(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.seen[key]; ok {
		return false, nil
	}
	l.seen[key] = struct{}{}
	return true, nil
}

func (l *memoryLedger) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	delete(l.seen, key)
	l.mu.Unlock()
	return nil
}

func (l *memoryLedger) Count(ctx context.Context) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int64(len(l.seen)), nil
}

func (l *memoryLedger) Close() error { return nil }

// redisLedger keeps the processed set in Redis so restarts and multiple
// watchers share it.
type redisLedger struct {
	client *redis.Client
	set    string
}

// NewRedisLedger connects to url (redis://host:port/db) and checks the
// connection.
func NewRedisLedger(ctx context.Context, url, keyPrefix string) (Ledger, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisLedger{client: client, set: keyPrefix + ":processed"}, nil
}

// Claim relies on SADD returning the number of new members, which makes
// the check and the insert one atomic step.
func (r *redisLedger) Claim(ctx context.Context, key string) (bool, error) {
	added, err := r.client.SAdd(ctx, r.set, key).Result()
	if err != nil {
		return false, fmt.Errorf("error adding to processed set: %w", err)
	}
	return added == 1, nil
}

func (r *redisLedger) Release(ctx context.Context, key string) error {
	if err := r.client.SRem(ctx, r.set, key).Err(); err != nil {
		return fmt.Errorf("error removing from processed set: %w", err)
	}
	return nil
}

func (r *redisLedger) Count(ctx context.Context) (int64, error) {
	n, err := r.client.SCard(ctx, r.set).Result()
	if err != nil {
		return 0, fmt.Errorf("error getting processed count: %w", err)
	}
	return n, nil
}

func (r *redisLedger) Close() error {
	return r.client.Close()
}

// Fingerprint is the hex SHA-256 of the file at path.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
