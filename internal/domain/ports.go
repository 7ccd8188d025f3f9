package domain

import (
	"context"
	"io"
)

// ProcessRunner spawns an external process and captures its output.
type ProcessRunner interface {
	// Run executes the command and returns the captured result.
	// A deadline-forced termination is a normal outcome (TimedOut set,
	// partial output retained), not an error.
	Run(ctx context.Context, spec CommandSpec) (*CommandResult, error)
}

// ArtifactDownloader streams a remote resource to a local path.
type ArtifactDownloader interface {
	// Fetch downloads the task, invoking onProgress as bytes arrive.
	// On failure a partial file may remain at the destination.
	Fetch(ctx context.Context, task DownloadTask, onProgress ProgressFunc) error
}

// OutputInspector scans captured text for marker rules.
type OutputInspector interface {
	// Inspect evaluates every rule independently over the text.
	// It never fails; an empty report means nothing was detected.
	Inspect(text string, rules []MarkerRule) *InspectionReport
}

// GraphicsEmitter writes an image to a terminal using the Kitty
// graphics escape-sequence protocol.
type GraphicsEmitter interface {
	// Emit reads the image at path, encodes it, and writes the framed
	// sequence to w in a single escape sequence.
	Emit(w io.Writer, path string, frame GraphicsFrame) error
}

// ConfigLoader loads the harness configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + config file).
	Load() (*Config, error)
}

// Logger writes leveled operation log entries.
type Logger interface {
	Debug(op, msg string)
	Info(op, msg string)
	Warn(op, msg string)
	Error(op, msg string)
}
