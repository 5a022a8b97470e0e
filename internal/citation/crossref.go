package citation

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

	"github.com/berch-t/youtube-to-courses/internal/models"
)

const DefaultCrossrefURL = "https://api.crossref.org/works/"

type crossrefResolver struct {
	baseURL    string
	mailto     string
	httpClient *http.Client
}

// NewCrossref resolves DOIs through the Crossref works API. mailto, when set,
// is sent in the User-Agent to use Crossref's polite pool.
func NewCrossref(baseURL, mailto string, timeout time.Duration) Resolver {
	if baseURL == "" {
		baseURL = DefaultCrossrefURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &crossrefResolver{
		baseURL:    baseURL,
		mailto:     mailto,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}

type crossrefWork struct {
	Message struct {
		Title  []string `json:"title"`
		Author []struct {
			Given  string `json:"given"`
			Family string `json:"family"`
		} `json:"author"`
		PublishedPrint  *crossrefDate `json:"published-print"`
		PublishedOnline *crossrefDate `json:"published-online"`
		Issued          *crossrefDate `json:"issued"`
		ContainerTitle  []string      `json:"container-title"`
		URL             string        `json:"URL"`
	} `json:"message"`
}

// escapeDOI escapes each path segment so suffixes carrying '?', '#' or
// spaces stay part of the path.
func escapeDOI(doi string) string {
	parts := strings.Split(doi, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func (r *crossrefResolver) Resolve(ctx context.Context, doi string) (models.Citation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+escapeDOI(doi), nil)
	if err != nil {
		return models.Citation{}, fmt.Errorf("%w: build request: %v", ErrLookup, err)
	}
	req.Header.Set("Accept", "application/json")
	ua := "coursebuilder/1.0"
	if r.mailto != "" {
		ua += " (mailto:" + r.mailto + ")"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return models.Citation{}, fmt.Errorf("%w: crossref %s: %v", ErrLookup, doi, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return models.Citation{}, fmt.Errorf("%w: crossref %s: http %d: %s", ErrLookup, doi, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var work crossrefWork
	if err := json.NewDecoder(resp.Body).Decode(&work); err != nil {
		return models.Citation{}, fmt.Errorf("%w: decode crossref response: %v", ErrLookup, err)
	}

	msg := work.Message
	c := models.Citation{
		Year:       undatedYear,
		SourceType: models.SourceJournal,
		DOI:        doi,
		URL:        "https://doi.org/" + doi,
	}
	if len(msg.Title) > 0 {
		c.Title = strings.TrimSpace(msg.Title[0])
	}
	if c.Title == "" {
		return models.Citation{}, fmt.Errorf("%w: crossref %s: record has no title", ErrLookup, doi)
	}
	for _, a := range msg.Author {
		name := strings.TrimSpace(strings.TrimSpace(a.Given) + " " + strings.TrimSpace(a.Family))
		if name != "" {
			c.Authors = append(c.Authors, name)
		}
	}
	for _, d := range []*crossrefDate{msg.PublishedPrint, msg.PublishedOnline, msg.Issued} {
		if d != nil && len(d.DateParts) > 0 && len(d.DateParts[0]) > 0 && d.DateParts[0][0] > 0 {
			c.Year = strconv.Itoa(d.DateParts[0][0])
			break
		}
	}
	if len(msg.ContainerTitle) > 0 {
		c.Journal = msg.ContainerTitle[0]
	}
	return c, nil
}
