package main

import (
	"log/slog"

	"github.com/fwojciec/econbrief/mcp"
)

// Run executes the serve command. stdout carries the protocol, so nothing
// else may be written to it.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := mcp.NewServer(deps.Desk, Version)
	deps.Logger.Info("serving", "name", mcp.Name, "version", Version)
	return server.ServeStdio(deps.Ctx, deps.Stdin, deps.Stdout, slog.NewLogLogger(deps.Logger.Handler(), slog.LevelError))
}
