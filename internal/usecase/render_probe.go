package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chonker8/harness/internal/domain"
)

// RenderProbeInput contains the parameters for probing the renderer
// against a document.
type RenderProbeInput struct {
	Env      map[string]string   // Environment overrides for the renderer process
	PDF      string              // Document path (required)
	Renderer string              // Renderer binary override (empty = config)
	Dir      string              // Working directory for the renderer (empty = inherit)
	Rules    []domain.MarkerRule // Marker rules (nil = built-in vocabulary)
	Timeout  time.Duration       // Run deadline (0 = config)
}

// RenderProbeOutput contains the result of one renderer probe.
type RenderProbeOutput struct {
	Result    *domain.CommandResult
	Report    *domain.InspectionReport
	Artifact  string // Path of the rendered PNG, empty when absent
	Decoded   bool   // Renderer reported a successful image decode
	HasTables bool   // Renderer reported table detection
}

// RenderProbe is the use case for driving the external renderer and
// classifying its diagnostic output.
type RenderProbe struct {
	runner    domain.ProcessRunner
	inspector domain.OutputInspector
	logger    domain.Logger
	cfg       *domain.Config
}

// NewRenderProbe creates a new RenderProbe use case.
func NewRenderProbe(
	runner domain.ProcessRunner,
	inspector domain.OutputInspector,
	logger domain.Logger,
	cfg *domain.Config,
) *RenderProbe {
	return &RenderProbe{
		runner:    runner,
		inspector: inspector,
		logger:    logger,
		cfg:       cfg,
	}
}

// Execute runs the renderer against the document, scans the captured
// output for markers, and checks for the fixed-name artifact. A
// timeout is a normal outcome with whatever output was produced.
func (uc *RenderProbe) Execute(ctx context.Context, in RenderProbeInput) (*RenderProbeOutput, error) {
	if in.PDF == "" {
		return nil, fmt.Errorf("document path cannot be empty")
	}
	if _, err := os.Stat(in.PDF); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentMissing, in.PDF)
	}

	binary := in.Renderer
	if binary == "" {
		binary = uc.cfg.Renderer.Binary
	}
	timeout := in.Timeout
	if timeout == 0 {
		timeout = uc.cfg.Renderer.Timeout()
	}
	rules := in.Rules
	if rules == nil {
		rules = domain.DefaultMarkerRules()
	}

	spec := domain.CommandSpec{
		Program: binary,
		Args:    []string{in.PDF},
		Dir:     in.Dir,
		Env:     in.Env,
		Timeout: timeout,
	}

	uc.logger.Info("probe", fmt.Sprintf("running %s %s", binary, in.PDF))
	result, err := uc.runner.Run(ctx, spec)
	if err != nil {
		if result == nil || !errors.Is(err, domain.ErrReapFailure) {
			return nil, fmt.Errorf("run renderer: %w", err)
		}
		// The child outlived the kill; the partial output still counts.
		uc.logger.Warn("probe", err.Error())
	}
	if result.TimedOut {
		uc.logger.Info("probe", fmt.Sprintf("renderer terminated at deadline after %s", result.Elapsed))
	}

	report := uc.inspector.Inspect(result.Combined(), rules)
	for _, m := range report.Matches {
		uc.logger.Debug("probe", "matched "+m.Rule.Describe())
	}

	out := &RenderProbeOutput{
		Result:    result,
		Report:    report,
		Decoded:   report.Matched(domain.LabelDecodeOK) || report.Matched(domain.LabelRenderOK),
		HasTables: report.Matched(domain.LabelTablesDetected),
	}
	out.Artifact = uc.findArtifact(in.Dir)
	return out, nil
}

// findArtifact returns the path of the fixed-name rendered PNG if the
// renderer wrote one into its working directory.
func (uc *RenderProbe) findArtifact(dir string) string {
	name := uc.cfg.Renderer.Artifact
	if name == "" {
		return ""
	}
	path := name
	if dir != "" {
		path = filepath.Join(dir, name)
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
