package citation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/arxiv"
	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/berch-t/youtube-to-courses/internal/models"
)

func countingResolver(calls *int, c models.Citation, err error) Resolver {
	return ResolverFunc(func(ctx context.Context, id string) (models.Citation, error) {
		*calls++
		return c, err
	})
}

var attention = models.Citation{
	Title:      "Attention Is All You Need",
	Authors:    []string{"Ashish Vaswani", "Noam Shazeer"},
	Year:       "2017",
	SourceType: models.SourceArXiv,
	ArXivID:    "1706.03762",
	Journal:    "arXiv preprint",
}

func TestIntegrateMemoizesResolution(t *testing.T) {
	var calls int
	m := New(countingResolver(&calls, attention, nil), nil, logger.NewNop())

	body := "Intro [arXiv:1706.03762]. Again [arXiv:1706.03762]. Once more [arXiv:1706.03762v5]."
	res := m.Integrate(context.Background(), body, Options{Style: models.CitationIEEE})

	if calls != 1 {
		t.Errorf("resolver called %d times, want 1", calls)
	}
	if len(res.Used) != 1 {
		t.Fatalf("len(Used) = %d, want 1", len(res.Used))
	}
	if got := strings.Count(res.Content, "[1]"); got != 4 {
		t.Errorf("[1] appears %d times, want 3 in body and 1 in bibliography:\n%s", got, res.Content)
	}
	if got := strings.Count(res.Content, "Attention Is All You Need"); got != 1 {
		t.Errorf("bibliography lists the paper %d times, want 1", got)
	}
	if strings.Contains(res.Content, "[arXiv:") {
		t.Error("placeholders left in content")
	}
}

func TestIntegrateListsOnlyUsedCitations(t *testing.T) {
	m := New(nil, nil, logger.NewNop())
	catalog := []models.ResearchPaper{
		{Identifier: "2401.00001", Title: "Cited Paper", Authors: []string{"Ada Lovelace"}, PublicationYear: 2024},
		{Identifier: "2401.00002", Title: "Seeded But Unused", Authors: []string{"Alan Turing"}, PublicationYear: 2024},
	}

	res := m.Integrate(context.Background(), "See [arXiv:2401.00001].", Options{Style: models.CitationAPA, Catalog: catalog})

	if strings.Contains(res.Content, "Seeded But Unused") {
		t.Errorf("unused catalog entry in bibliography:\n%s", res.Content)
	}
	if !strings.Contains(res.Content, "See (Lovelace, 2024).") {
		t.Errorf("inline citation missing:\n%s", res.Content)
	}
	if !strings.Contains(res.Content, "Lovelace, A. (2024). Cited Paper.") {
		t.Errorf("APA entry missing:\n%s", res.Content)
	}
	if !strings.Contains(res.Content, "### Research methodology") {
		t.Error("research note missing when a catalog was supplied")
	}
}

func TestIntegrateNoMarkers(t *testing.T) {
	res := New(nil, nil, logger.NewNop()).Integrate(context.Background(), "Plain text.\n", Options{})
	if res.Content != "Plain text.\n" || len(res.Used) != 0 {
		t.Errorf("Integrate() = %+v", res)
	}
}

func TestIntegrateLookupFailureUsesPlaceholder(t *testing.T) {
	var calls int
	failing := countingResolver(&calls, models.Citation{}, ErrLookup)
	res := New(failing, failing, logger.NewNop()).Integrate(context.Background(),
		"A [arXiv:2401.99999] and B [DOI:10.1000/xyz].", Options{Style: models.CitationDoctoral})

	if calls != 2 {
		t.Errorf("resolver calls = %d, want 2", calls)
	}
	for _, c := range res.Used {
		if !c.Placeholder || c.Year != undatedYear {
			t.Errorf("citation %+v should be a placeholder", c)
		}
	}
	if !strings.Contains(res.Content, "[Title to be completed - arXiv:2401.99999]") {
		t.Errorf("placeholder title missing:\n%s", res.Content)
	}
	if !strings.Contains(res.Content, "A (Anonymous, n.d.)") {
		t.Errorf("placeholder inline form missing:\n%s", res.Content)
	}
}

func TestIntegrateNumbersInFirstSeenOrder(t *testing.T) {
	body := "[REF-2] then [URL:https://go.dev/doc] then [Vaswani et al., 2017] then [REF-2] and a [link](https://x.org) [Smith et al. 2020](https://y.org)."
	res := New(nil, nil, logger.NewNop()).Integrate(context.Background(), body, Options{Style: models.CitationBasic})

	want := "[1] then [2] then [3] then [1] and a [link](https://x.org) [Smith et al. 2020](https://y.org)."
	if !strings.HasPrefix(res.Content, want) {
		t.Errorf("content = %q, want prefix %q", res.Content, want)
	}
	if len(res.Used) != 3 {
		t.Fatalf("len(Used) = %d, want 3", len(res.Used))
	}
	if res.Used[1].SourceType != models.SourceWebsite || res.Used[1].Title != "go.dev/doc" {
		t.Errorf("URL citation = %+v", res.Used[1])
	}
	if res.Used[2].Authors[0] != "Vaswani" || res.Used[2].Year != "2017" {
		t.Errorf("et al. citation = %+v", res.Used[2])
	}
}

func TestBibliographySortedByYear(t *testing.T) {
	used := []numbered{
		{citation: models.Citation{Title: "Old", Year: "2015"}, number: 1},
		{citation: models.Citation{Title: "Undated", Year: "n.d."}, number: 2},
		{citation: models.Citation{Title: "New", Year: "2024"}, number: 3},
	}
	out := bibliography(models.CitationIEEE, used, false)

	iNew, iOld, iUndated := strings.Index(out, "New"), strings.Index(out, "Old"), strings.Index(out, "Undated")
	if !(iNew < iOld && iOld < iUndated) {
		t.Errorf("bibliography order wrong:\n%s", out)
	}
	if !strings.Contains(out, "[3] [Author], \"New,\", 2024.") {
		t.Errorf("IEEE entry must keep its inline number:\n%s", out)
	}
}

func TestInlineStyles(t *testing.T) {
	single := models.Citation{Authors: []string{"Ada Lovelace"}, Year: "1843"}
	tests := []struct {
		style models.CitationStyle
		c     models.Citation
		want  string
	}{
		{models.CitationIEEE, attention, "[4]"},
		{models.CitationBasic, attention, "[4]"},
		{models.CitationAcademic, attention, "[4]"},
		{models.CitationAPA, attention, "(Vaswani et al., 2017)"},
		{models.CitationDoctoral, single, "(Lovelace, 1843)"},
		{models.CitationChicago, single, "(Lovelace 1843)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			if got := inline(tt.style, tt.c, 4); got != tt.want {
				t.Errorf("inline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorFormats(t *testing.T) {
	three := []string{"Ada King Lovelace", "Alan Turing", "Grace Hopper"}
	if got := ieeeAuthors(three); got != "Lovelace, A. K. and Turing, A. and Hopper, G." {
		t.Errorf("ieeeAuthors() = %q", got)
	}
	if got := apaAuthors(three); got != "Lovelace, A. K., Turing, A., & Hopper, G." {
		t.Errorf("apaAuthors() = %q", got)
	}
	if got := chicagoAuthors(three[1:]); got != "Turing, Alan, and Grace Hopper" {
		t.Errorf("chicagoAuthors() = %q", got)
	}
	if got := academicAuthors(append(three, "X Y")); got != "Ada King Lovelace et al." {
		t.Errorf("academicAuthors() = %q", got)
	}
}

func TestCrossrefResolver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("User-Agent"), "mailto:team@example.org") {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		if r.URL.Path != "/10.1000/xyz" && r.URL.Path != "/10.1002/(SICI)1097#4?x" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"message":{
			"title":["Deep Learning"],
			"author":[{"given":"Yann","family":"LeCun"},{"family":"Bengio"}],
			"issued":{"date-parts":[[2015,5,27]]},
			"container-title":["Nature"]}}`))
	}))
	defer srv.Close()

	r := NewCrossref(srv.URL, "team@example.org", time.Second)
	c, err := r.Resolve(context.Background(), "10.1000/xyz")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if c.Title != "Deep Learning" || c.Year != "2015" || c.Journal != "Nature" {
		t.Errorf("citation = %+v", c)
	}
	if len(c.Authors) != 2 || c.Authors[0] != "Yann LeCun" || c.Authors[1] != "Bengio" {
		t.Errorf("authors = %q", c.Authors)
	}

	// Reserved characters in the suffix must reach the server as path.
	if _, err := r.Resolve(context.Background(), "10.1002/(SICI)1097#4?x"); err != nil {
		t.Errorf("Resolve() of DOI with reserved characters error = %v", err)
	}

	if _, err := r.Resolve(context.Background(), "10.1000/missing"); !errors.Is(err, ErrLookup) {
		t.Errorf("Resolve() of missing DOI error = %v, want ErrLookup", err)
	}
}

type stubArXivClient struct {
	entry arxiv.Entry
	err   error
}

func (s stubArXivClient) Search(ctx context.Context, query string, maxResults int) ([]arxiv.Entry, error) {
	return nil, nil
}

func (s stubArXivClient) Lookup(ctx context.Context, id string) (arxiv.Entry, error) {
	return s.entry, s.err
}

func TestArXivResolver(t *testing.T) {
	r := NewArXivResolver(stubArXivClient{entry: arxiv.Entry{
		ID:        "2401.00001",
		Title:     "A Paper",
		Authors:   []string{"Ada Lovelace"},
		Published: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}})
	c, err := r.Resolve(context.Background(), "2401.00001")
	if err != nil || c.Year != "2024" || c.ArXivID != "2401.00001" || c.Journal != "arXiv preprint" {
		t.Errorf("Resolve() = %+v, %v", c, err)
	}

	_, err = NewArXivResolver(stubArXivClient{err: arxiv.ErrNotFound}).Resolve(context.Background(), "x")
	if !errors.Is(err, ErrLookup) {
		t.Errorf("error = %v, want ErrLookup", err)
	}
}
