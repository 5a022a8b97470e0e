package arxiv

import (
	"net/http"
	"time"
)

const DefaultBaseURL = "http://export.arxiv.org/api/query"

type implClient struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client. Every request is bounded by timeout.
func New(baseURL string, timeout time.Duration) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &implClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}
