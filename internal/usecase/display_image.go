package usecase

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chonker8/harness/internal/domain"
)

// DisplayImageInput contains the parameters for emitting an image to
// the terminal.
type DisplayImageInput struct {
	Out   io.Writer            // Where the escape sequence is written (required)
	Path  string               // Image file path (required)
	Frame domain.GraphicsFrame // Protocol framing parameters
}

// DisplayImageOutput contains the result of the emission.
type DisplayImageOutput struct {
	Path       string
	ImageBytes int64 // Size of the raw image file
}

// DisplayImage is the use case for showing a rendered artifact in a
// Kitty-compatible terminal.
type DisplayImage struct {
	emitter domain.GraphicsEmitter
	logger  domain.Logger
}

// NewDisplayImage creates a new DisplayImage use case.
func NewDisplayImage(emitter domain.GraphicsEmitter, logger domain.Logger) *DisplayImage {
	return &DisplayImage{
		emitter: emitter,
		logger:  logger,
	}
}

// Execute emits the image in one escape sequence. A missing image is
// fatal; nothing partial is written.
func (uc *DisplayImage) Execute(_ context.Context, in DisplayImageInput) (*DisplayImageOutput, error) {
	if in.Path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(in.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrImageNotFound, in.Path)
	}

	if err := uc.emitter.Emit(in.Out, in.Path, in.Frame); err != nil {
		return nil, err
	}

	uc.logger.Info("display", fmt.Sprintf("emitted %s (%d bytes)", in.Path, info.Size()))
	return &DisplayImageOutput{
		Path:       in.Path,
		ImageBytes: info.Size(),
	}, nil
}
