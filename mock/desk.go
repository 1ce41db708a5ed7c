package mock

import (
	"context"

	"github.com/fwojciec/econbrief"
)

var _ econbrief.Desk = (*Desk)(nil)

// Desk is a mock implementation of econbrief.Desk.
type Desk struct {
	LatestBriefingFn func(ctx context.Context) (string, error)
	ReadArticleFn    func(ctx context.Context, url string) (string, error)
}

func (d *Desk) LatestBriefing(ctx context.Context) (string, error) {
	return d.LatestBriefingFn(ctx)
}

func (d *Desk) ReadArticle(ctx context.Context, url string) (string, error) {
	return d.ReadArticleFn(ctx, url)
}
