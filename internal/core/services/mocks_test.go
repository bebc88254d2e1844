package services

import (
	"context"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// mockCoordinateLoader is a mock implementation of driven.CoordinateLoader.
type mockCoordinateLoader struct {
	cloud domain.PointCloud
	err   error
	path  string
}

func (m *mockCoordinateLoader) Load(_ context.Context, path string) (domain.PointCloud, error) {
	m.path = path
	return m.cloud, m.err
}

// mockPromptLoader is a mock implementation of driven.PromptLoader.
type mockPromptLoader struct {
	labels []string
	err    error
	called bool
}

func (m *mockPromptLoader) Load(_ context.Context, _ string) ([]string, error) {
	m.called = true
	return m.labels, m.err
}

// mockDocumentWriter is a mock implementation of driven.DocumentWriter.
type mockDocumentWriter struct {
	doc  *domain.Document
	path string
	n    int64
	err  error
}

func (m *mockDocumentWriter) Write(_ context.Context, path string, doc *domain.Document) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.doc = doc
	m.path = path
	return m.n, nil
}
