package econbrief

import "context"

// Desk exposes the two operations offered to the agent.
type Desk interface {
	// LatestBriefing fetches and extracts the current daily briefing.
	LatestBriefing(ctx context.Context) (string, error)

	// ReadArticle fetches and extracts the article at url.
	// Returns EINVALID if url is not an absolute http(s) URL.
	ReadArticle(ctx context.Context, url string) (string, error)
}

type callIDKey struct{}

// WithCallID returns a copy of ctx carrying id, which ties together the log
// lines of a single Desk call.
func WithCallID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callIDKey{}, id)
}

// CallID returns the call ID carried by ctx, or "" if there is none.
func CallID(ctx context.Context) string {
	id, _ := ctx.Value(callIDKey{}).(string)
	return id
}
