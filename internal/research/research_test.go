package research

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/arxiv"
	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/berch-t/youtube-to-courses/internal/models"
)

type stubProvider struct {
	name   string
	papers map[string][]models.ResearchPaper
	err    error
	calls  []string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(ctx context.Context, topic string, limit int) ([]models.ResearchPaper, error) {
	s.calls = append(s.calls, topic)
	if s.err != nil {
		return nil, s.err
	}
	return s.papers[topic], nil
}

type stubArXiv struct {
	query   string
	entries []arxiv.Entry
}

func (s *stubArXiv) Search(ctx context.Context, query string, maxResults int) ([]arxiv.Entry, error) {
	s.query = query
	return s.entries, nil
}

func (s *stubArXiv) Lookup(ctx context.Context, id string) (arxiv.Entry, error) {
	return arxiv.Entry{}, arxiv.ErrNotFound
}

func TestExtractTopics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "taxonomy before keywords",
			text: "Today we cover the Transformer and its attention mechanism.",
			want: []string{"transformer", "attention mechanism"},
		},
		{
			name: "no match",
			text: "A lecture about medieval poetry.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTopics(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTopics() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTopicsCap(t *testing.T) {
	text := strings.Join(techKeywords, " ") + " llm clip shap federated learning clustering"
	got := ExtractTopics(text)
	if len(got) != maxTopics {
		t.Fatalf("len(topics) = %d, want %d", len(got), maxTopics)
	}
	if got[0] != "transformer" {
		t.Errorf("first topic = %q, taxonomy order must win", got[0])
	}
}

func TestRelevanceExactTitleBeatsUnrelated(t *testing.T) {
	topics := []string{"transformer", "deep_learning", "reinforcement learning", "diffusion"}
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			exact := Relevance(strings.ReplaceAll(topic, "_", " "), "", topic, 2020)
			unrelated := Relevance("Medieval poetry", "A survey of rhyme.", topic, 2020)
			if exact <= unrelated {
				t.Errorf("exact = %v, unrelated = %v", exact, unrelated)
			}
			if exact < 0 || exact > 1 || unrelated < 0 || unrelated > 1 {
				t.Errorf("scores out of range: %v, %v", exact, unrelated)
			}
		})
	}
}

func TestRelevanceWeights(t *testing.T) {
	// direct 3.0 + one topic word 1.0 + keyword "transformer" 0.5 + recency 1.0
	got := Relevance("transformer", "", "transformer", 2024)
	if want := 0.55; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("Relevance() = %v, want %v", got, want)
	}
	if got := Relevance(strings.Repeat("deep learning transformer ", 3)+strings.Join(techKeywords, " "), "", "deep learning", 2025); got != 1 {
		t.Errorf("Relevance() = %v, want clamp to 1", got)
	}
}

func TestRank(t *testing.T) {
	papers := []models.ResearchPaper{
		{Identifier: "a", Title: "A", RelevanceScore: 0.5},
		{Identifier: "b", Title: "B", RelevanceScore: 0.9},
		{Identifier: "a", Title: "A again", RelevanceScore: 0.95},
		{Title: "  Same   Title ", RelevanceScore: 0.6},
		{Title: "same title", RelevanceScore: 0.7},
		{Identifier: "c", Title: "C", RelevanceScore: 0.3},
		{Identifier: "d", Title: "D", RelevanceScore: 0.4},
	}

	got := Rank(papers, 10)
	var ids []string
	for _, p := range got {
		ids = append(ids, p.Identifier+p.Title)
	}
	want := []string{"bB", "  Same   Title ", "aA", "dD"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Rank() = %q, want %q", ids, want)
	}

	if n := len(Rank(papers, 2)); n != 2 {
		t.Errorf("Rank(max=2) kept %d", n)
	}
}

func TestAttach(t *testing.T) {
	papers := []models.ResearchPaper{
		{Identifier: "p1", Title: "Efficient Attention for Transformers"},
		{Identifier: "p2", Title: "Gradient Attention Mechanisms"},
		{Identifier: "p3", Title: "The Big Cat"},
		{Identifier: "p4", Title: "Attention Efficient Gradient"},
		{Identifier: "p5", Title: "Efficient Gradient Attention"},
	}
	text := "We study efficient attention and gradient methods in transformers."

	got := Attach(text, papers)
	if want := []string{"p1", "p2", "p4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Attach() = %q, want %q", got, want)
	}
}

func TestEnrich(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	failing := &stubProvider{name: "down", err: errors.New("503")}
	working := &stubProvider{name: "stub", papers: map[string][]models.ResearchPaper{
		"transformer": {
			{Identifier: "2501.00001", Title: "Transformer attention mechanism scaling", PublicationYear: 2025, Published: "2025-01-10"},
			{Identifier: "1706.03762", Title: "Transformer attention mechanism origins", PublicationYear: 2017, Published: "2017-06-12"},
		},
	}}

	e := New([]Provider{failing, working}, 5, logger.NewNop()).(*implEngine)
	e.now = func() time.Time { return now }

	doc := &models.TranscriptDocument{
		Title: "Lecture",
		Segments: []models.Segment{
			{Text: "The transformer relies on an attention mechanism."},
			{Text: "Unrelated closing remarks."},
		},
	}

	res := e.Enrich(context.Background(), doc, Options{MaxReferences: 10, RecentOnly: true})

	if len(failing.calls) == 0 {
		t.Error("failing provider was never queried")
	}
	if len(res.Papers) != 1 || res.Papers[0].Identifier != "2501.00001" {
		t.Fatalf("Papers = %+v, want only the recent paper", res.Papers)
	}
	if got := res.Document.Segments[0].SuggestedReferences; !reflect.DeepEqual(got, []string{"2501.00001"}) {
		t.Errorf("segment 0 references = %q", got)
	}
	if len(res.Document.Segments[1].SuggestedReferences) != 0 {
		t.Errorf("segment 1 references = %q", res.Document.Segments[1].SuggestedReferences)
	}
	if doc.Segments[0].SuggestedReferences != nil {
		t.Error("Enrich must not mutate the input transcript")
	}
}

func TestArXivProvider(t *testing.T) {
	client := &stubArXiv{entries: []arxiv.Entry{{
		ID:        "2401.00001",
		Title:     "Attention",
		Published: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		URL:       "https://arxiv.org/abs/2401.00001",
	}}}

	papers, err := NewArXiv(client).Search(context.Background(), "computer_vision", 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if client.query != "all:(computer vision OR image recognition OR cnn) AND (cat:cs.CV)" {
		t.Errorf("query = %q", client.query)
	}
	if len(papers) != 1 || papers[0].PublicationYear != 2024 || papers[0].Source != SourceArXiv {
		t.Errorf("papers = %+v", papers)
	}
}

func TestPapersWithCodeProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "deep learning" {
			t.Errorf("q = %q", r.URL.Query().Get("q"))
		}
		_, _ = w.Write([]byte(`{"results":[
			{"id":"resnet","title":"Deep Residual Learning","abstract":"x","arxiv_id":"1512.03385","published":"2015-12-10","url_abs":"https://arxiv.org/abs/1512.03385"},
			{"id":"slug-only","title":"No arXiv","published":"bad-date"}
		]}`))
	}))
	defer srv.Close()

	papers, err := NewPapersWithCode(srv.URL, time.Second).Search(context.Background(), "deep_learning", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d", len(papers))
	}
	if papers[0].Identifier != "1512.03385" || papers[0].PublicationYear != 2015 {
		t.Errorf("papers[0] = %+v", papers[0])
	}
	if papers[1].Identifier != "slug-only" || papers[1].PublicationYear != 0 {
		t.Errorf("papers[1] = %+v", papers[1])
	}
}
