package mcp

import (
	"github.com/custodia-labs/embedmap/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Builder builds and composes documents.
	Builder driving.MapBuilder

	// Settings supplies default paths. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Builder == nil {
		return ErrMissingMapBuilder
	}
	return nil
}
