package research

import (
	"time"

	"github.com/berch-t/youtube-to-courses/internal/logger"
)

const defaultResultsPerTopic = 5

type implEngine struct {
	providers       []Provider
	resultsPerTopic int
	logger          logger.Logger
	now             func() time.Time
}

// New creates an Engine over the given providers, queried in order.
func New(providers []Provider, resultsPerTopic int, log logger.Logger) Engine {
	if resultsPerTopic <= 0 {
		resultsPerTopic = defaultResultsPerTopic
	}
	return &implEngine{
		providers:       providers,
		resultsPerTopic: resultsPerTopic,
		logger:          log,
		now:             time.Now,
	}
}
