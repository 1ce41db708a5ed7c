// Package desk coordinates fetching and extraction for the two Desk
// operations.
package desk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/econbrief"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Ensure Service implements econbrief.Desk at compile time.
var _ econbrief.Desk = (*Service)(nil)

// Service implements econbrief.Desk as a strictly sequential fetch followed
// by extraction. It never retries; a failed call is reported to the caller
// who may try again.
type Service struct {
	Fetcher   econbrief.Fetcher
	Briefings econbrief.BriefingExtractor
	Articles  econbrief.ArticleExtractor

	// Cookie is the raw session cookie sent with every fetch. May be empty.
	Cookie string

	// BriefingURL overrides econbrief.BriefingURL.
	BriefingURL string

	// Limiter, if set, spaces out fetches. Shared by both operations.
	Limiter *rate.Limiter

	Logger *slog.Logger
}

// NewLimiter returns a limiter allowing one fetch per interval, or nil when
// interval is not positive.
func NewLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// LatestBriefing fetches the briefing page and extracts it.
func (s *Service) LatestBriefing(ctx context.Context) (string, error) {
	ctx = ensureCallID(ctx)

	url := s.BriefingURL
	if url == "" {
		url = econbrief.BriefingURL
	}

	doc, err := s.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return s.Briefings.ExtractBriefing(doc)
}

// ReadArticle fetches the article at url and extracts it.
func (s *Service) ReadArticle(ctx context.Context, url string) (string, error) {
	ctx = ensureCallID(ctx)

	if err := econbrief.ValidateURL(url); err != nil {
		return "", err
	}

	doc, err := s.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return s.Articles.ExtractArticle(doc)
}

func (s *Service) fetch(ctx context.Context, url string) (*econbrief.Document, error) {
	logger := s.logger().With("call", econbrief.CallID(ctx))

	if s.Limiter != nil {
		begin := time.Now()
		if err := s.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
		if waited := time.Since(begin); waited > time.Millisecond {
			logger.Debug("rate limited", "url", url, "waited", waited)
		}
	}

	doc := s.Fetcher.Fetch(ctx, econbrief.FetchRequest{URL: url, Cookie: s.Cookie})
	logger.Debug("fetched", "url", url, "outcome", doc.Outcome(), "status", doc.StatusCode)
	return doc, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}

// ensureCallID tags ctx with a fresh call ID unless it already has one.
func ensureCallID(ctx context.Context) context.Context {
	if econbrief.CallID(ctx) != "" {
		return ctx
	}
	return econbrief.WithCallID(ctx, uuid.NewString())
}
