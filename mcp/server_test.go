package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/econbrief"
	econmcp "github.com/fwojciec/econbrief/mcp"
	"github.com/fwojciec/econbrief/mock"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]any) mcpgo.CallToolRequest {
	var req mcpgo.CallToolRequest
	req.Params.Name = name
	if args != nil {
		req.Params.Arguments = args
	}
	return req
}

func resultText(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestServer_HandleLatestBriefing(t *testing.T) {
	t.Parallel()

	t.Run("returns briefing text", func(t *testing.T) {
		t.Parallel()

		desk := &mock.Desk{
			LatestBriefingFn: func(context.Context) (string, error) {
				return "## Politics\n\nSomething happened.", nil
			},
		}
		s := econmcp.NewServer(desk, "test")

		result, err := s.HandleLatestBriefing(context.Background(), callRequest(econmcp.ToolLatestBriefing, nil))

		require.NoError(t, err)
		assert.Equal(t, "## Politics\n\nSomething happened.", resultText(t, result))
		assert.False(t, result.IsError)
	})

	t.Run("renders failures as error text", func(t *testing.T) {
		t.Parallel()

		desk := &mock.Desk{
			LatestBriefingFn: func(context.Context) (string, error) {
				return "", econbrief.FetchFailed()
			},
		}
		s := econmcp.NewServer(desk, "test")

		result, err := s.HandleLatestBriefing(context.Background(), callRequest(econmcp.ToolLatestBriefing, nil))

		require.NoError(t, err)
		assert.Equal(t, "Error: Failed to fetch content. Cloudflare might be blocking or network issue.", resultText(t, result))
	})
}

func TestServer_HandleReadArticle(t *testing.T) {
	t.Parallel()

	t.Run("passes url to desk", func(t *testing.T) {
		t.Parallel()

		var got string
		desk := &mock.Desk{
			ReadArticleFn: func(_ context.Context, url string) (string, error) {
				got = url
				return "Title: T\n\nBody:\nText", nil
			},
		}
		s := econmcp.NewServer(desk, "test")

		result, err := s.HandleReadArticle(context.Background(), callRequest(econmcp.ToolReadArticle, map[string]any{
			"url": "https://www.economist.com/a",
		}))

		require.NoError(t, err)
		assert.Equal(t, "https://www.economist.com/a", got)
		assert.Equal(t, "Title: T\n\nBody:\nText", resultText(t, result))
	})

	t.Run("missing url", func(t *testing.T) {
		t.Parallel()

		desk := &mock.Desk{
			ReadArticleFn: func(context.Context, string) (string, error) {
				t.Fatal("desk should not be called")
				return "", nil
			},
		}
		s := econmcp.NewServer(desk, "test")

		for _, args := range []map[string]any{nil, {}, {"url": ""}, {"url": 42}} {
			result, err := s.HandleReadArticle(context.Background(), callRequest(econmcp.ToolReadArticle, args))

			require.NoError(t, err)
			assert.Equal(t, "Error: url is required", resultText(t, result))
		}
	})

	t.Run("renders internal errors without details", func(t *testing.T) {
		t.Parallel()

		desk := &mock.Desk{
			ReadArticleFn: func(context.Context, string) (string, error) {
				return "", context.DeadlineExceeded
			},
		}
		s := econmcp.NewServer(desk, "test")

		result, err := s.HandleReadArticle(context.Background(), callRequest(econmcp.ToolReadArticle, map[string]any{
			"url": "https://www.economist.com/a",
		}))

		require.NoError(t, err)
		assert.Equal(t, "Error: Internal error.", resultText(t, result))
	})
}

func TestServer_ToolsList(t *testing.T) {
	t.Parallel()

	s := econmcp.NewServer(&mock.Desk{}, "test")

	resp := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `"get_latest_briefing"`)
	assert.Contains(t, out, `"read_full_article"`)
	assert.Contains(t, out, `"required":["url"]`)
}
