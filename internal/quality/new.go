package quality

import (
	"time"

	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/berch-t/youtube-to-courses/internal/models"
)

const (
	MinimumAcceptable = 0.6
	GoodQuality       = 0.75
	ExcellentQuality  = 0.9
)

type implAssessor struct {
	style  models.Style
	logger logger.Logger
	now    func() time.Time
}

// New creates an Assessor calibrated for the given target style.
func New(style models.Style, log logger.Logger) Assessor {
	return &implAssessor{
		style:  style,
		logger: log,
		now:    time.Now,
	}
}
