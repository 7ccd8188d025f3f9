package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/chonker8/harness/internal/domain"
)

// ShowPipelineInput contains the parameters for the render-and-display
// pipeline.
type ShowPipelineInput struct {
	Out     io.Writer            // Where the graphics sequence is written (required)
	Env     map[string]string    // Environment overrides for the renderer process
	PDF     string               // Document path (required)
	Frame   domain.GraphicsFrame // Protocol framing for the display step
	Timeout time.Duration        // Render deadline (0 = config)
}

// ShowPipelineOutput contains the combined result.
type ShowPipelineOutput struct {
	Probe    *RenderProbeOutput
	Artifact string
}

// ShowPipeline is the use case for the full demo flow: render a
// document, verify the success markers, then display the produced
// artifact in the terminal.
type ShowPipeline struct {
	probe   *RenderProbe
	display *DisplayImage
	logger  domain.Logger
}

// NewShowPipeline creates a new ShowPipeline use case.
func NewShowPipeline(probe *RenderProbe, display *DisplayImage, logger domain.Logger) *ShowPipeline {
	return &ShowPipeline{
		probe:   probe,
		display: display,
		logger:  logger,
	}
}

// Execute renders the document and emits the artifact. The pipeline
// fails when the renderer produced no artifact, even if some markers
// matched.
func (uc *ShowPipeline) Execute(ctx context.Context, in ShowPipelineInput) (*ShowPipelineOutput, error) {
	probeOut, err := uc.probe.Execute(ctx, RenderProbeInput{
		PDF:     in.PDF,
		Env:     in.Env,
		Timeout: in.Timeout,
	})
	if err != nil {
		return nil, err
	}

	if probeOut.Artifact == "" {
		return nil, fmt.Errorf("%w: renderer produced no %q", domain.ErrArtifactMissing, uc.probe.cfg.Renderer.Artifact)
	}

	if _, err := uc.display.Execute(ctx, DisplayImageInput{
		Out:   in.Out,
		Path:  probeOut.Artifact,
		Frame: in.Frame,
	}); err != nil {
		return nil, err
	}

	uc.logger.Info("show", fmt.Sprintf("displayed %s", probeOut.Artifact))
	return &ShowPipelineOutput{
		Probe:    probeOut,
		Artifact: probeOut.Artifact,
	}, nil
}
