package mcp

import (
	"context"

	"github.com/custodia-labs/embedmap/internal/core/domain"
	"github.com/custodia-labs/embedmap/internal/core/services"
)

// mockMapBuilder is a mock implementation of driving.MapBuilder.
// Compose delegates to the real service so tool output can be checked end to end.
type mockMapBuilder struct {
	result *domain.BuildResult
	err    error
	req    domain.BuildRequest
}

func (m *mockMapBuilder) Build(_ context.Context, req domain.BuildRequest) (*domain.BuildResult, error) {
	m.req = req
	return m.result, m.err
}

func (m *mockMapBuilder) Compose(cloud domain.PointCloud, labels []string) (*domain.Document, error) {
	return services.NewMapBuilder(nil, nil, nil).Compose(cloud, labels)
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Set(_, _ string) error {
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

func (m *mockSettingsService) Path() string {
	return "/home/test/.embedmap/config.toml"
}
