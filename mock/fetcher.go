package mock

import (
	"context"

	"github.com/fwojciec/econbrief"
)

var _ econbrief.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of econbrief.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, req econbrief.FetchRequest) *econbrief.Document
}

func (f *Fetcher) Fetch(ctx context.Context, req econbrief.FetchRequest) *econbrief.Document {
	return f.FetchFn(ctx, req)
}
