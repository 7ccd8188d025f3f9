// Package executor runs the external renderer binary and captures its output.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chonker8/harness/internal/domain"
	"github.com/shirou/gopsutil/v4/process"
)

// waitDelay bounds the forced wait after a deadline kill. A child of
// the killed process can keep the output pipes open; after this grace
// the pipes are closed and whatever was captured is returned.
const waitDelay = 2 * time.Second

// Client implements domain.ProcessRunner.
type Client struct{}

// NewClient creates a new process runner client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.ProcessRunner interface.
var _ domain.ProcessRunner = (*Client)(nil)

// Run executes the command and collects whatever output was produced.
// The timeout is a context deadline on the process wait: when it
// expires the child is forcibly terminated and the partial output is
// returned with TimedOut set. Early termination is a normal outcome,
// not an error.
func (c *Client) Run(ctx context.Context, spec domain.CommandSpec) (*domain.CommandResult, error) {
	if spec.Program == "" {
		return nil, domain.ErrEmptyProgram
	}
	if spec.Timeout < 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrNegativeTimeout, spec.Timeout)
	}

	if spec.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, spec.Timeout)
		defer cancel()
	}

	// #nosec G204 - spec.Program and spec.Args come from trusted harness config
	cmd := exec.CommandContext(ctx, spec.Program, spec.Args...)
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	if len(spec.Env) > 0 {
		env := os.Environ()
		for k, v := range spec.Env {
			env = append(env, k+"="+v)
		}
		cmd.Env = env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLaunchFailure, spec.Program, err)
	}

	waitErr := cmd.Wait()
	timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded)

	result := &domain.CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Elapsed:  time.Since(start),
		TimedOut: timedOut,
	}

	if waitErr == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(waitErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case errors.Is(waitErr, exec.ErrWaitDelay):
		// The process exited but something kept its pipes open past
		// the grace period. Output up to this point is kept.
		if cmd.ProcessState != nil {
			result.ExitCode = cmd.ProcessState.ExitCode()
		}
	case !timedOut:
		return result, fmt.Errorf("wait for %s: %w", spec.Program, waitErr)
	default:
		result.ExitCode = -1
	}

	if timedOut {
		if err := c.verifyReaped(cmd); err != nil {
			// Partial output still stands; the caller decides whether
			// a lingering child matters.
			return result, err
		}
	}

	return result, nil
}

// verifyReaped confirms the terminated child is actually gone.
func (c *Client) verifyReaped(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	pid := int32(cmd.Process.Pid)
	alive, err := process.PidExists(pid)
	if err != nil {
		return nil // cannot check; assume the kill took effect
	}
	if alive {
		return fmt.Errorf("%w: pid %d", domain.ErrReapFailure, pid)
	}
	return nil
}
