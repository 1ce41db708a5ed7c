// Package slog provides logging decorators for the econbrief interfaces
// using the standard library's log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/econbrief"
)

// Ensure LoggingFetcher implements econbrief.Fetcher.
var _ econbrief.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   econbrief.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next econbrief.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, req econbrief.FetchRequest) (doc *econbrief.Document) {
	defer func(begin time.Time) {
		var bytes, status int
		var err error
		if doc != nil {
			bytes, status, err = len(doc.HTML), doc.StatusCode, doc.Err
		}
		f.logger.Info("fetch",
			"call", econbrief.CallID(ctx),
			"url", req.URL,
			"cookie", req.Cookie != "",
			"bytes", bytes,
			"status", status,
			"outcome", doc.Outcome().String(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, req)
}
