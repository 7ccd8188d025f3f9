package domain

import "time"

// CommandSpec describes an external command to be executed.
// It is immutable once constructed and is consumed by a ProcessRunner.
// Fields are ordered to minimize memory padding.
type CommandSpec struct {
	Env     map[string]string // Environment overrides applied on top of the parent env
	Program string            // Executable path
	Dir     string            // Working directory (empty = inherit)
	Args    []string          // Ordered argument list
	Timeout time.Duration     // Deadline for the run; 0 means no deadline
}

// CommandResult holds the captured outcome of a single command run.
// It is created by a ProcessRunner on completion and read-only thereafter.
type CommandResult struct {
	Stdout   string        // Captured standard output (possibly truncated on timeout)
	Stderr   string        // Captured standard error (possibly truncated on timeout)
	ExitCode int           // Exit status; -1 when the process was terminated
	Elapsed  time.Duration // Wall-clock time of the run
	TimedOut bool          // True when the deadline forced termination
}

// Combined returns stdout and stderr joined for inspection.
// The renderer writes its diagnostic markers to stderr, but some
// probe markers appear on stdout, so scans cover both streams.
func (r *CommandResult) Combined() string {
	if r.Stdout == "" {
		return r.Stderr
	}
	if r.Stderr == "" {
		return r.Stdout
	}
	return r.Stdout + "\n" + r.Stderr
}
