package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for embedmap resources.
	uriScheme = "embedmap://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Default input and output paths used by build_map",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// settingsInfo is the JSON form of the settings resource.
type settingsInfo struct {
	EmbeddingsPath string `json:"embeddings_path"`
	PromptsPath    string `json:"prompts_path"`
	OutputPath     string `json:"output_path"`
	ConfigPath     string `json:"config_path,omitempty"`
}

// handleSettingsResource returns the settings build_map falls back to.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultSettings()
	info := settingsInfo{}
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		settings = *current
		info.ConfigPath = s.ports.Settings.Path()
	}
	info.EmbeddingsPath = settings.EmbeddingsPath
	info.PromptsPath = settings.PromptsPath
	info.OutputPath = settings.OutputPath

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
