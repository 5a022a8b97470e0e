package arxiv

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned by Lookup when the feed has no matching entry.
var ErrNotFound = errors.New("arxiv entry not found")

var (
	reVersion    = regexp.MustCompile(`v\d+$`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

type feed struct {
	Entries []feedEntry `xml:"entry"`
}

type feedEntry struct {
	ID        string `xml:"id"`
	Title     string `xml:"title"`
	Summary   string `xml:"summary"`
	Published string `xml:"published"`
	Authors   []struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Categories []struct {
		Term string `xml:"term,attr"`
	} `xml:"category"`
	DOI        string `xml:"http://arxiv.org/schemas/atom doi"`
	JournalRef string `xml:"http://arxiv.org/schemas/atom journal_ref"`
}

func (c *implClient) Search(ctx context.Context, query string, maxResults int) ([]Entry, error) {
	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")
	return c.fetch(ctx, params)
}

func (c *implClient) Lookup(ctx context.Context, id string) (Entry, error) {
	params := url.Values{}
	params.Set("id_list", id)

	entries, err := c.fetch(ctx, params)
	if err != nil {
		return Entry{}, err
	}
	// arXiv answers unknown ids with an entry titled "Error".
	for _, e := range entries {
		if e.ID != "" && !strings.EqualFold(e.Title, "error") {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (c *implClient) fetch(ctx context.Context, params url.Values) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("arxiv http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseFeed(resp.Body)
}

func parseFeed(r io.Reader) ([]Entry, error) {
	var f feed
	if err := xml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode atom feed: %w", err)
	}

	entries := make([]Entry, 0, len(f.Entries))
	for _, fe := range f.Entries {
		e := Entry{
			ID:         ShortID(fe.ID),
			Title:      clean(fe.Title),
			Summary:    clean(fe.Summary),
			DOI:        strings.TrimSpace(fe.DOI),
			JournalRef: clean(fe.JournalRef),
		}
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(fe.Published)); err == nil {
			e.Published = t
		}
		for _, a := range fe.Authors {
			if name := clean(a.Name); name != "" {
				e.Authors = append(e.Authors, name)
			}
		}
		for _, c := range fe.Categories {
			if c.Term != "" {
				e.Categories = append(e.Categories, c.Term)
			}
		}
		if e.ID != "" {
			e.URL = "https://arxiv.org/abs/" + e.ID
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// ShortID reduces an arXiv id or abs URL to its bare, unversioned identifier.
func ShortID(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "/abs/"); i >= 0 {
		raw = raw[i+len("/abs/"):]
	}
	return reVersion.ReplaceAllString(raw, "")
}

func clean(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
