package arxiv

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <entry>
    <id>http://arxiv.org/abs/2401.00001v2</id>
    <published>2024-01-02T10:00:00Z</published>
    <title>Attention Is Still
      All You Need</title>
    <summary>  We revisit transformers.  </summary>
    <author><name>Ada Lovelace</name></author>
    <author><name>Alan Turing</name></author>
    <arxiv:doi>10.1000/attn</arxiv:doi>
    <arxiv:journal_ref>J. Imaginary ML 12 (2024)</arxiv:journal_ref>
    <category term="cs.LG"/>
    <category term="cs.CL"/>
  </entry>
</feed>`

const errorFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/api/errors#incorrect_id_format_for_9999.99999</id>
    <title>Error</title>
    <summary>incorrect id format</summary>
  </entry>
</feed>`

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("search_query") != "all:transformer" || q.Get("max_results") != "5" || q.Get("sortBy") != "submittedDate" {
			t.Errorf("unexpected query %v", q)
		}
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	entries, err := New(srv.URL, time.Second).Search(context.Background(), "all:transformer", 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}

	e := entries[0]
	if e.ID != "2401.00001" {
		t.Errorf("ID = %q", e.ID)
	}
	if e.Title != "Attention Is Still All You Need" {
		t.Errorf("Title = %q", e.Title)
	}
	if e.Summary != "We revisit transformers." {
		t.Errorf("Summary = %q", e.Summary)
	}
	if len(e.Authors) != 2 || e.Authors[1] != "Alan Turing" {
		t.Errorf("Authors = %q", e.Authors)
	}
	if len(e.Categories) != 2 || e.Categories[0] != "cs.LG" {
		t.Errorf("Categories = %q", e.Categories)
	}
	if e.DOI != "10.1000/attn" || e.JournalRef != "J. Imaginary ML 12 (2024)" {
		t.Errorf("DOI = %q, JournalRef = %q", e.DOI, e.JournalRef)
	}
	if e.Published.Year() != 2024 {
		t.Errorf("Published = %v", e.Published)
	}
	if e.URL != "https://arxiv.org/abs/2401.00001" {
		t.Errorf("URL = %q", e.URL)
	}
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_list") == "2401.00001" {
			_, _ = w.Write([]byte(sampleFeed))
			return
		}
		_, _ = w.Write([]byte(errorFeed))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	e, err := c.Lookup(context.Background(), "2401.00001")
	if err != nil || e.ID != "2401.00001" {
		t.Fatalf("Lookup() = %+v, %v", e, err)
	}

	if _, err := c.Lookup(context.Background(), "9999.99999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() of unknown id error = %v, want ErrNotFound", err)
	}
}

func TestFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search_query") == "broken" {
			_, _ = w.Write([]byte("<feed><entry>"))
			return
		}
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.Search(context.Background(), "anything", 1); err == nil {
		t.Error("Search() should fail on HTTP 503")
	}
	if _, err := c.Search(context.Background(), "broken", 1); err == nil {
		t.Error("Search() should fail on truncated XML")
	}
}

func TestShortID(t *testing.T) {
	tests := map[string]string{
		"http://arxiv.org/abs/2401.00001v3": "2401.00001",
		"2401.12345":                        "2401.12345",
		"2401.12345v1":                      "2401.12345",
		" https://arxiv.org/abs/1706.03762": "1706.03762",
	}
	for in, want := range tests {
		if got := ShortID(in); got != want {
			t.Errorf("ShortID(%q) = %q, want %q", in, got, want)
		}
	}
}
