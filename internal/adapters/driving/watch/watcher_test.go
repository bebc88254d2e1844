package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/embedmap/internal/core/domain"
)

// countingBuilder is a mock implementation of driving.MapBuilder.
type countingBuilder struct {
	mu    sync.Mutex
	calls int
	err   error
	built chan struct{}
}

func newCountingBuilder() *countingBuilder {
	return &countingBuilder{built: make(chan struct{}, 16)}
}

func (b *countingBuilder) Build(_ context.Context, req domain.BuildRequest) (*domain.BuildResult, error) {
	b.mu.Lock()
	b.calls++
	err := b.err
	b.mu.Unlock()
	b.built <- struct{}{}
	if err != nil {
		return nil, err
	}
	return &domain.BuildResult{OutputPath: req.OutputPath}, nil
}

func (b *countingBuilder) Compose(_ domain.PointCloud, _ []string) (*domain.Document, error) {
	return &domain.Document{}, nil
}

func (b *countingBuilder) waitForBuild(t *testing.T) {
	t.Helper()
	select {
	case <-b.built:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for build")
	}
}

func TestIsRelevant(t *testing.T) {
	targets := map[string]bool{"/data/prompts.txt": true}

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{"write to target", fsnotify.Event{Name: "/data/prompts.txt", Op: fsnotify.Write}, true},
		{"create target", fsnotify.Event{Name: "/data/prompts.txt", Op: fsnotify.Create}, true},
		{"rename target", fsnotify.Event{Name: "/data/prompts.txt", Op: fsnotify.Rename}, true},
		{"chmod target", fsnotify.Event{Name: "/data/prompts.txt", Op: fsnotify.Chmod}, false},
		{"remove target", fsnotify.Event{Name: "/data/prompts.txt", Op: fsnotify.Remove}, false},
		{"write to other file", fsnotify.Event{Name: "/data/data.json", Op: fsnotify.Write}, false},
		{"unclean target path", fsnotify.Event{Name: "/data/../data/prompts.txt", Op: fsnotify.Write}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRelevant(tt.event, targets))
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	w := New(newCountingBuilder(), domain.BuildRequest{})

	assert.Equal(t, DefaultDebounce, w.debounce)
	assert.NotNil(t, w.onResult)
}

func TestWatcher_Run_RebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	prompts := filepath.Join(dir, "prompts.txt")
	require.NoError(t, os.WriteFile(prompts, []byte("a\n"), 0644))

	builder := newCountingBuilder()
	var results []*domain.BuildResult
	var mu sync.Mutex
	w := New(builder, domain.BuildRequest{
		EmbeddingsPath: filepath.Join(dir, "embeddings.pt"),
		PromptsPath:    prompts,
		OutputPath:     filepath.Join(dir, "data.json"),
	},
		WithDebounce(20*time.Millisecond),
		WithResultFunc(func(r *domain.BuildResult, _ error) {
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	builder.waitForBuild(t)

	require.NoError(t, os.WriteFile(prompts, []byte("a\nb\n"), 0644))
	builder.waitForBuild(t)

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, filepath.Join(dir, "data.json"), results[0].OutputPath)
}

func TestWatcher_Run_BuildErrorsAreReported(t *testing.T) {
	dir := t.TempDir()
	builder := newCountingBuilder()
	builder.err = errors.New("boom")

	errs := make(chan error, 4)
	w := New(builder, domain.BuildRequest{
		EmbeddingsPath: filepath.Join(dir, "embeddings.pt"),
		PromptsPath:    filepath.Join(dir, "prompts.txt"),
		OutputPath:     filepath.Join(dir, "data.json"),
	}, WithResultFunc(func(_ *domain.BuildResult, err error) { errs <- err }))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case err := <-errs:
		assert.EqualError(t, err, "boom")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for result")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcher_Run_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	w := New(newCountingBuilder(), domain.BuildRequest{
		EmbeddingsPath: filepath.Join(dir, "embeddings.pt"),
		PromptsPath:    filepath.Join(dir, "prompts.txt"),
		OutputPath:     "data.json",
	})

	err := w.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
