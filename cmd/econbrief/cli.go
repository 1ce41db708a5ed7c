package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/econbrief"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Desk   econbrief.Desk
}

// Config holds the flags shared by all commands.
type Config struct {
	Cookie      string        `help:"Raw session cookie string copied from a logged-in browser." env:"ECONOMIST_COOKIE"`
	Transport   string        `help:"How pages are fetched (${enum})." enum:"browser,http" default:"browser" env:"ECONBRIEF_TRANSPORT"`
	LogLevel    string        `help:"Log level (${enum}). Logs go to stderr." enum:"debug,info,warn,error" default:"info" env:"ECONBRIEF_LOG_LEVEL"`
	ChromeBin   string        `help:"Path to the Chrome or Chromium binary." name:"chrome-bin" env:"ECONBRIEF_CHROME_BIN"`
	NoSandbox   bool          `help:"Disable the Chrome sandbox (needed as root in containers)." env:"ECONBRIEF_NO_SANDBOX"`
	MinInterval time.Duration `help:"Minimum time between fetches." default:"5s" env:"ECONBRIEF_MIN_INTERVAL"`
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config `embed:""`

	Version kong.VersionFlag `help:"Print version and exit."`

	Serve   ServeCmd   `cmd:"" default:"1" help:"Run the MCP server on stdio (default)"`
	Test    TestCmd    `cmd:"" help:"Fetch the latest briefing once and print it"`
	Article ArticleCmd `cmd:"" help:"Fetch one article and print it"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// TestCmd is the "test" subcommand.
type TestCmd struct{}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// NewParser creates the Kong parser for cli with deps bound for commands.
func NewParser(cli *CLI, deps *Dependencies, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("econbrief"),
		kong.Description("Daily briefing and article reader for The Economist, served as MCP tools."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"version": Version},
		kong.Bind(deps),
	)
}

// NewLogger returns a text logger writing to w at the named level. Unknown
// levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
