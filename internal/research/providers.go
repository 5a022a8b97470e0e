package research

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/arxiv"
	"github.com/berch-t/youtube-to-courses/internal/models"
)

const (
	SourceArXiv          = "arxiv"
	SourcePapersWithCode = "paperswithcode"

	DefaultPapersWithCodeURL = "https://paperswithcode.com/api/v1/papers/"
)

type arxivProvider struct {
	client arxiv.Client
}

// NewArXiv searches arXiv, restricted to the categories matching each topic.
func NewArXiv(client arxiv.Client) Provider {
	return &arxivProvider{client: client}
}

func (p *arxivProvider) Name() string { return SourceArXiv }

func (p *arxivProvider) Search(ctx context.Context, topic string, limit int) ([]models.ResearchPaper, error) {
	cats := categoriesFor(topic)
	catFilter := make([]string, len(cats))
	for i, c := range cats {
		catFilter[i] = "cat:" + c
	}
	query := fmt.Sprintf("all:(%s) AND (%s)", queryTerms(topic), strings.Join(catFilter, " OR "))

	entries, err := p.client.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	papers := make([]models.ResearchPaper, 0, len(entries))
	for _, e := range entries {
		paper := models.ResearchPaper{
			Identifier: e.ID,
			Title:      e.Title,
			Authors:    e.Authors,
			Abstract:   e.Summary,
			SourceURL:  e.URL,
			Categories: e.Categories,
			Source:     SourceArXiv,
		}
		if !e.Published.IsZero() {
			paper.PublicationYear = e.Published.Year()
			paper.Published = e.Published.Format(time.RFC3339)
		}
		papers = append(papers, paper)
	}
	return papers, nil
}

type pwcProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewPapersWithCode searches the Papers with Code REST API.
func NewPapersWithCode(baseURL string, timeout time.Duration) Provider {
	if baseURL == "" {
		baseURL = DefaultPapersWithCodeURL
	}
	return &pwcProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *pwcProvider) Name() string { return SourcePapersWithCode }

type pwcResponse struct {
	Results []struct {
		ID        string   `json:"id"`
		Title     string   `json:"title"`
		Abstract  string   `json:"abstract"`
		ArXivID   string   `json:"arxiv_id"`
		Published string   `json:"published"`
		URLAbs    string   `json:"url_abs"`
		Authors   []string `json:"authors"`
	} `json:"results"`
}

func (p *pwcProvider) Search(ctx context.Context, topic string, limit int) ([]models.ResearchPaper, error) {
	params := url.Values{}
	params.Set("q", strings.ReplaceAll(topic, "_", " "))
	params.Set("items_per_page", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paperswithcode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("paperswithcode http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out pwcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode paperswithcode response: %w", err)
	}

	papers := make([]models.ResearchPaper, 0, len(out.Results))
	for _, r := range out.Results {
		id := r.ArXivID
		if id == "" {
			id = r.ID
		}
		paper := models.ResearchPaper{
			Identifier: id,
			Title:      strings.TrimSpace(r.Title),
			Authors:    r.Authors,
			Abstract:   strings.TrimSpace(r.Abstract),
			SourceURL:  r.URLAbs,
			Published:  r.Published,
			Source:     SourcePapersWithCode,
		}
		if t, err := time.Parse("2006-01-02", r.Published); err == nil {
			paper.PublicationYear = t.Year()
		}
		papers = append(papers, paper)
		if len(papers) == limit {
			break
		}
	}
	return papers, nil
}
