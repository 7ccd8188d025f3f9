// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"io"
	"os"

	"github.com/chonker8/harness/internal/domain"
)

// MockProcessRunner is a test double for domain.ProcessRunner.
type MockProcessRunner struct {
	Result *domain.CommandResult
	RunErr error
	// ReapErr, when set, is returned together with the result, as a
	// runner does when the child survives the deadline kill.
	ReapErr error
	Specs   []domain.CommandSpec // every spec passed to Run, in order
	Results []*domain.CommandResult
}

// NewMockProcessRunner creates a runner that returns an empty result.
func NewMockProcessRunner() *MockProcessRunner {
	return &MockProcessRunner{Result: &domain.CommandResult{}}
}

// Run records the call and returns the configured result.
// When Results is set, results are consumed in call order.
func (m *MockProcessRunner) Run(_ context.Context, spec domain.CommandSpec) (*domain.CommandResult, error) {
	m.Specs = append(m.Specs, spec)
	if m.RunErr != nil {
		return nil, m.RunErr
	}
	if m.ReapErr != nil {
		return m.Result, m.ReapErr
	}
	if len(m.Results) > 0 {
		r := m.Results[0]
		m.Results = m.Results[1:]
		return r, nil
	}
	return m.Result, nil
}

// MockDownloader is a test double for domain.ArtifactDownloader.
type MockDownloader struct {
	FetchErr error
	// FailURL makes only tasks for that URL fail, others succeed.
	FailURL string
	Tasks   []domain.DownloadTask
	// Content, when non-nil, is written to each task destination.
	Content []byte
	// Report, when set, drives progress callbacks on each fetch.
	Report []domain.Progress
}

// Fetch records the task, emits the configured progress, and writes
// Content to the destination on success.
func (m *MockDownloader) Fetch(_ context.Context, task domain.DownloadTask, onProgress domain.ProgressFunc) error {
	m.Tasks = append(m.Tasks, task)
	if m.FetchErr != nil {
		return m.FetchErr
	}
	if m.FailURL != "" && task.URL == m.FailURL {
		return os.ErrDeadlineExceeded
	}
	if onProgress != nil {
		for _, p := range m.Report {
			onProgress(p)
		}
	}
	if m.Content != nil {
		return os.WriteFile(task.Dest, m.Content, 0o644)
	}
	return nil
}

// MockEmitter is a test double for domain.GraphicsEmitter.
type MockEmitter struct {
	EmitErr error
	Paths   []string
	Frames  []domain.GraphicsFrame
	Payload string // written to w on success
}

// Emit records the call and writes the configured payload.
func (m *MockEmitter) Emit(w io.Writer, path string, frame domain.GraphicsFrame) error {
	m.Paths = append(m.Paths, path)
	m.Frames = append(m.Frames, frame)
	if m.EmitErr != nil {
		return m.EmitErr
	}
	if m.Payload != "" {
		_, _ = io.WriteString(w, m.Payload)
	}
	return nil
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Debug discards the entry.
func (NopLogger) Debug(string, string) {}

// Info discards the entry.
func (NopLogger) Info(string, string) {}

// Warn discards the entry.
func (NopLogger) Warn(string, string) {}

// Error discards the entry.
func (NopLogger) Error(string, string) {}
