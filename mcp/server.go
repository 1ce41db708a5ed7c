// Package mcp exposes econbrief.Desk as Model Context Protocol tools over
// stdio using github.com/mark3labs/mcp-go.
package mcp

import (
	"context"
	"io"
	"log"

	"github.com/fwojciec/econbrief"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Name is the server name announced to clients.
const Name = "The Economist Agent"

// Tool names.
const (
	ToolLatestBriefing = "get_latest_briefing"
	ToolReadArticle    = "read_full_article"
)

// Server serves the Desk operations as tools. Every tool result is text;
// failures are rendered as "Error: ..." rather than reported as protocol
// errors, so the agent can read them.
type Server struct {
	desk    econbrief.Desk
	version string
	mcp     *server.MCPServer
}

// NewServer creates a Server backed by desk.
func NewServer(desk econbrief.Desk, version string) *Server {
	s := &Server{desk: desk, version: version}

	s.mcp = server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcpgo.NewTool(ToolLatestBriefing,
		mcpgo.WithDescription("Fetch today's \"The World in Brief\" from The Economist: a digest of the day's most important news, returned as plain text with headings."),
	), s.HandleLatestBriefing)

	s.mcp.AddTool(mcpgo.NewTool(ToolReadArticle,
		mcpgo.WithDescription("Fetch a full article from The Economist and return its title, subheading and body as plain text."),
		mcpgo.WithString("url",
			mcpgo.Required(),
			mcpgo.Description("Absolute URL of the article, e.g. https://www.economist.com/..."),
		),
	), s.HandleReadArticle)

	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// HandleLatestBriefing handles the get_latest_briefing tool.
func (s *Server) HandleLatestBriefing(ctx context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	text, err := s.desk.LatestBriefing(ctx)
	return mcpgo.NewToolResultText(econbrief.Render(text, err)), nil
}

// HandleReadArticle handles the read_full_article tool.
func (s *Server) HandleReadArticle(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil || url == "" {
		return mcpgo.NewToolResultText("Error: url is required"), nil
	}
	text, err := s.desk.ReadArticle(ctx, url)
	return mcpgo.NewToolResultText(econbrief.Render(text, err)), nil
}

// ServeStdio serves requests read from stdin and writes responses to stdout
// until ctx is canceled or stdin is closed. Transport errors go to errlog.
func (s *Server) ServeStdio(ctx context.Context, stdin io.Reader, stdout io.Writer, errlog *log.Logger) error {
	stdio := server.NewStdioServer(s.mcp)
	if errlog != nil {
		stdio.SetErrorLogger(errlog)
	}
	return stdio.Listen(ctx, stdin, stdout)
}
