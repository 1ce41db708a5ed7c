package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/econbrief"
	"github.com/google/uuid"
)

// Ensure LoggingDesk implements econbrief.Desk.
var _ econbrief.Desk = (*LoggingDesk)(nil)

// LoggingDesk wraps a Desk with one log line per call. It tags the context
// with a call ID so fetch logs can be matched to the call.
type LoggingDesk struct {
	next   econbrief.Desk
	logger *slog.Logger
}

// NewLoggingDesk creates a new LoggingDesk.
func NewLoggingDesk(next econbrief.Desk, logger *slog.Logger) *LoggingDesk {
	return &LoggingDesk{next: next, logger: logger}
}

// LatestBriefing logs and delegates to the wrapped desk.
func (d *LoggingDesk) LatestBriefing(ctx context.Context) (text string, err error) {
	ctx = withCallID(ctx)
	defer func(begin time.Time) {
		d.log(ctx, "latest briefing", "", text, err, begin)
	}(time.Now())
	return d.next.LatestBriefing(ctx)
}

// ReadArticle logs and delegates to the wrapped desk.
func (d *LoggingDesk) ReadArticle(ctx context.Context, url string) (text string, err error) {
	ctx = withCallID(ctx)
	defer func(begin time.Time) {
		d.log(ctx, "read article", url, text, err, begin)
	}(time.Now())
	return d.next.ReadArticle(ctx, url)
}

func (d *LoggingDesk) log(ctx context.Context, msg, url, text string, err error, begin time.Time) {
	attrs := []any{"call", econbrief.CallID(ctx)}
	if url != "" {
		attrs = append(attrs, "url", url)
	}
	attrs = append(attrs,
		"bytes", len(text),
		"duration", time.Since(begin),
	)
	if err != nil {
		attrs = append(attrs,
			"code", econbrief.ErrorCode(err),
			"retryable", econbrief.Retryable(err),
			"err", err,
		)
		d.logger.Warn(msg, attrs...)
		return
	}
	d.logger.Info(msg, attrs...)
}

func withCallID(ctx context.Context) context.Context {
	if econbrief.CallID(ctx) != "" {
		return ctx
	}
	return econbrief.WithCallID(ctx, uuid.NewString())
}
