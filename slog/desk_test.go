package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/econbrief"
	"github.com/fwojciec/econbrief/mock"
	econslog "github.com/fwojciec/econbrief/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDesk_LatestBriefing(t *testing.T) {
	t.Parallel()

	t.Run("logs success with call ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var callID string
		inner := &mock.Desk{
			LatestBriefingFn: func(ctx context.Context) (string, error) {
				callID = econbrief.CallID(ctx)
				return "## Heading", nil
			},
		}

		desk := econslog.NewLoggingDesk(inner, logger)
		text, err := desk.LatestBriefing(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "## Heading", text)
		require.NotEmpty(t, callID)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=\"latest briefing\"")
		assert.Contains(t, output, "call="+callID)
		assert.Contains(t, output, "bytes=10")
		assert.NotContains(t, output, "url=")
	})

	t.Run("logs failure code and retryability", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Desk{
			LatestBriefingFn: func(context.Context) (string, error) {
				return "", econbrief.FetchFailed()
			},
		}

		desk := econslog.NewLoggingDesk(inner, logger)
		_, err := desk.LatestBriefing(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "code=fetch_failed")
		assert.Contains(t, output, "retryable=true")
	})
}

func TestLoggingDesk_ReadArticle(t *testing.T) {
	t.Parallel()

	t.Run("logs url and keeps caller call ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Desk{
			ReadArticleFn: func(ctx context.Context, url string) (string, error) {
				assert.Equal(t, "call-7", econbrief.CallID(ctx))
				return "", econbrief.Errorf(econbrief.ESTRUCTURE, "Could not find article content. Structure might have changed.")
			},
		}

		desk := econslog.NewLoggingDesk(inner, logger)
		ctx := econbrief.WithCallID(context.Background(), "call-7")
		_, err := desk.ReadArticle(ctx, "https://www.economist.com/a")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "msg=\"read article\"")
		assert.Contains(t, output, "call=call-7")
		assert.Contains(t, output, "url=https://www.economist.com/a")
		assert.Contains(t, output, "code=structure_changed")
		assert.Contains(t, output, "retryable=false")
	})
}
