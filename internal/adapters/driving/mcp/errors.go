// Package mcp provides an MCP (Model Context Protocol) server adapter for embedmap.
// It lets assistants build embedding map documents and normalise point clouds.
package mcp

import "errors"

// ErrMissingMapBuilder is returned when the map builder is not provided.
var ErrMissingMapBuilder = errors.New("mcp: map builder is required")
