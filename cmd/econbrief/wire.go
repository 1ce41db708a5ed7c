package main

import (
	"log/slog"

	"github.com/fwojciec/econbrief"
	"github.com/fwojciec/econbrief/desk"
	"github.com/fwojciec/econbrief/goquery"
	econhttp "github.com/fwojciec/econbrief/http"
	"github.com/fwojciec/econbrief/rod"
	econslog "github.com/fwojciec/econbrief/slog"
)

// NewDesk wires the production Desk for cfg.
func NewDesk(cfg Config, logger *slog.Logger) econbrief.Desk {
	detector := econslog.NewLoggingDetector(goquery.NewDetector(), logger)

	briefings := goquery.NewBriefingExtractor()
	briefings.Detector = detector

	articles := goquery.NewArticleExtractor()
	articles.Detector = detector

	svc := &desk.Service{
		Fetcher:   econslog.NewLoggingFetcher(NewFetcher(cfg), logger),
		Briefings: briefings,
		Articles:  articles,
		Cookie:    cfg.Cookie,
		Limiter:   desk.NewLimiter(cfg.MinInterval),
		Logger:    logger,
	}
	return econslog.NewLoggingDesk(svc, logger)
}

// NewFetcher returns the fetcher for the configured transport.
func NewFetcher(cfg Config) econbrief.Fetcher {
	if cfg.Transport == "http" {
		return econhttp.NewFetcher()
	}
	return rod.NewFetcher(
		rod.WithBrowserBin(cfg.ChromeBin),
		rod.WithNoSandbox(cfg.NoSandbox),
	)
}
