package templating

import "github.com/berch-t/youtube-to-courses/internal/logger"

const (
	MinModules = 3
	MaxModules = 12

	minModuleLength   = 500
	maxModuleLength   = 3000
	minDocumentLength = 5000
)

var requiredKeywords = []string{"objective", "module", "summary"}

type implEnforcer struct {
	logger logger.Logger
}

func New(log logger.Logger) Enforcer {
	return &implEnforcer{logger: log}
}
