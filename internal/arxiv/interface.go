package arxiv

import (
	"context"
	"time"
)

// Client queries the arXiv Atom API.
type Client interface {
	// Search runs a search_query, newest submissions first.
	Search(ctx context.Context, query string, maxResults int) ([]Entry, error)
	// Lookup fetches a single paper by arXiv identifier.
	Lookup(ctx context.Context, id string) (Entry, error)
}

// Entry is one paper from an Atom feed.
type Entry struct {
	ID         string
	Title      string
	Summary    string
	Published  time.Time
	Authors    []string
	Categories []string
	DOI        string
	JournalRef string
	URL        string
}
