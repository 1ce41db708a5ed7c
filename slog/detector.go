package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/econbrief"
)

// Ensure LoggingDetector implements econbrief.ChallengeDetector.
var _ econbrief.ChallengeDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a ChallengeDetector with debug logging of each
// verdict.
type LoggingDetector struct {
	next   econbrief.ChallengeDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next econbrief.ChallengeDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Challenged delegates to the wrapped detector and logs the verdict.
func (d *LoggingDetector) Challenged(doc *econbrief.Document) (challenged bool) {
	defer func(begin time.Time) {
		url := ""
		if doc != nil {
			url = doc.URL
		}
		d.logger.Debug("challenge detection",
			"url", url,
			"challenged", challenged,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return d.next.Challenged(doc)
}
