package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/econbrief"
	"github.com/fwojciec/econbrief/mock"
	econslog "github.com/fwojciec/econbrief/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes, status and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, req econbrief.FetchRequest) *econbrief.Document {
				return &econbrief.Document{URL: req.URL, HTML: "<html>content</html>", StatusCode: 200}
			},
		}

		fetcher := econslog.NewLoggingFetcher(inner, logger)
		ctx := econbrief.WithCallID(context.Background(), "call-1")
		doc := fetcher.Fetch(ctx, econbrief.FetchRequest{URL: "https://www.economist.com/a", Cookie: "secret=1"})

		require.NoError(t, doc.Err)
		assert.Equal(t, "<html>content</html>", doc.HTML)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "call=call-1")
		assert.Contains(t, output, "url=https://www.economist.com/a")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "outcome=content")
		assert.Contains(t, output, "duration=")
		assert.Contains(t, output, "cookie=true")
		assert.NotContains(t, output, "secret")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, req econbrief.FetchRequest) *econbrief.Document {
				return &econbrief.Document{URL: req.URL, Err: errors.New("network error")}
			},
		}

		fetcher := econslog.NewLoggingFetcher(inner, logger)
		doc := fetcher.Fetch(context.Background(), econbrief.FetchRequest{URL: "https://www.economist.com/a"})

		require.Error(t, doc.Err)
		output := buf.String()
		assert.Contains(t, output, "outcome=error")
		assert.Contains(t, output, "err=\"network error\"")
	})

	t.Run("tolerates nil document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(context.Context, econbrief.FetchRequest) *econbrief.Document { return nil },
		}

		fetcher := econslog.NewLoggingFetcher(inner, logger)
		doc := fetcher.Fetch(context.Background(), econbrief.FetchRequest{URL: "https://www.economist.com/a"})

		assert.Nil(t, doc)
		assert.Contains(t, buf.String(), "outcome=empty")
	})
}
