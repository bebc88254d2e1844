package cli

import (
	"context"
	"fmt"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// mockMapBuilder implements driving.MapBuilder for testing.
type mockMapBuilder struct {
	result *domain.BuildResult
	err    error
	req    domain.BuildRequest
	calls  int
}

func (m *mockMapBuilder) Build(_ context.Context, req domain.BuildRequest) (*domain.BuildResult, error) {
	m.calls++
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockMapBuilder) Compose(_ domain.PointCloud, _ []string) (*domain.Document, error) {
	return &domain.Document{}, nil
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.Settings
	setKey   string
	setValue string
	setErr   error
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultSettings()}
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setKey = key
	m.setValue = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"paths.embeddings", "paths.prompts", "paths.output", "log.level", "log.format"}
}

func (m *mockSettingsService) Path() string {
	return "/home/test/.embedmap/config.toml"
}

// setupServices installs mocks and returns a cleanup function.
func setupServices(builder *mockMapBuilder, settings *mockSettingsService) func() {
	oldBuilder, oldSettings, oldFactory := mapBuilder, settingsService, serviceFactory
	mapBuilder = builder
	settingsService = settings
	serviceFactory = nil
	if builder == nil {
		mapBuilder = nil
	}
	if settings == nil {
		settingsService = nil
	}
	return func() {
		mapBuilder, settingsService, serviceFactory = oldBuilder, oldSettings, oldFactory
	}
}

// resetBuildFlags clears flag values left by earlier executions.
func resetBuildFlags() {
	for _, name := range []string{"embeddings", "prompts", "output", "dir"} {
		_ = buildCmd.Flags().Set(name, "")
	}
	_ = buildCmd.Flags().Set("watch", "false")
}

func sampleResult(path string) *domain.BuildResult {
	return &domain.BuildResult{
		RunID:      "run-1",
		Points:     2,
		Bounds:     domain.BoundingBox{MinX: -100, MaxX: 100, MinY: -42.123, MaxY: 42.126},
		OutputPath: path,
		Bytes:      3 * 1024 * 1024 / 2,
	}
}

var errBoom = fmt.Errorf("boom: %w", domain.ErrLengthMismatch)
