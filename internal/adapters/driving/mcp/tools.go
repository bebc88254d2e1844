package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// BuildMapInput is the input schema for the build_map tool.
type BuildMapInput struct {
	EmbeddingsPath string `json:"embeddings_path,omitempty" jsonschema:"N×2 embedding file (.pt, .pth, .safetensors or .npy); defaults to the configured path"`
	PromptsPath    string `json:"prompts_path,omitempty" jsonschema:"prompts file with one label per line; defaults to the configured path"`
	OutputPath     string `json:"output_path,omitempty" jsonschema:"where to write the JSON document; defaults to the configured path"`
}

// BuildMapOutput is the output schema for the build_map tool.
type BuildMapOutput struct {
	RunID      string             `json:"run_id"`
	OutputPath string             `json:"output_path"`
	Points     int                `json:"points"`
	Bounds     domain.BoundingBox `json:"bounds"`
	Bytes      int64              `json:"bytes"`
	SizeMB     float64            `json:"size_mb"`
	DurationMS int64              `json:"duration_ms"`
}

// NormalizePointsInput is the input schema for the normalize_points tool.
type NormalizePointsInput struct {
	Points  [][]float64 `json:"points" jsonschema:"coordinate pairs [x, y], one per prompt"`
	Prompts []string    `json:"prompts" jsonschema:"labels aligned with points by index"`
}

// NormalizePointsOutput is the output schema for the normalize_points tool.
// It has the same shape as the document written by build_map.
type NormalizePointsOutput struct {
	Points []domain.Point     `json:"points"`
	Bounds domain.BoundingBox `json:"bounds"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_map",
		Description: "Build the embedding map JSON document from an embedding file and a prompts file",
	}, s.handleBuildMap)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalize_points",
		Description: "Centre and scale 2D points into the [-100, 100] display square and pair them with prompts",
	}, s.handleNormalizePoints)
}

// handleBuildMap handles the build_map tool invocation.
func (s *Server) handleBuildMap(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BuildMapInput,
) (*mcp.CallToolResult, BuildMapOutput, error) {
	req, err := s.buildRequest(input)
	if err != nil {
		return nil, BuildMapOutput{}, err
	}

	result, err := s.ports.Builder.Build(ctx, req)
	if err != nil {
		return nil, BuildMapOutput{}, err
	}

	return nil, BuildMapOutput{
		RunID:      result.RunID,
		OutputPath: result.OutputPath,
		Points:     result.Points,
		Bounds:     result.Bounds,
		Bytes:      result.Bytes,
		SizeMB:     result.SizeMB(),
		DurationMS: result.Duration.Milliseconds(),
	}, nil
}

// buildRequest fills unset paths from settings.
func (s *Server) buildRequest(input BuildMapInput) (domain.BuildRequest, error) {
	defaults := domain.DefaultSettings()
	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.Get()
		if err != nil {
			return domain.BuildRequest{}, fmt.Errorf("getting settings: %w", err)
		}
		defaults = *settings
	}

	req := domain.BuildRequest{
		EmbeddingsPath: defaults.EmbeddingsPath,
		PromptsPath:    defaults.PromptsPath,
		OutputPath:     defaults.OutputPath,
	}
	if input.EmbeddingsPath != "" {
		req.EmbeddingsPath = input.EmbeddingsPath
	}
	if input.PromptsPath != "" {
		req.PromptsPath = input.PromptsPath
	}
	if input.OutputPath != "" {
		req.OutputPath = input.OutputPath
	}
	return req, nil
}

// handleNormalizePoints handles the normalize_points tool invocation.
func (s *Server) handleNormalizePoints(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormalizePointsInput,
) (*mcp.CallToolResult, NormalizePointsOutput, error) {
	cloud, err := toPointCloud(input.Points)
	if err != nil {
		return nil, NormalizePointsOutput{}, err
	}

	doc, err := s.ports.Builder.Compose(cloud, input.Prompts)
	if err != nil {
		return nil, NormalizePointsOutput{}, err
	}

	return nil, NormalizePointsOutput{Points: doc.Points, Bounds: doc.Bounds}, nil
}

// toPointCloud converts [x, y] rows, rejecting any row that is not a pair.
func toPointCloud(rows [][]float64) (domain.PointCloud, error) {
	cloud := make(domain.PointCloud, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, &domain.ShapeError{Shape: []int{len(rows), len(row)}}
		}
		cloud[i] = domain.Coordinate{X: row[0], Y: row[1]}
	}
	return cloud, nil
}
