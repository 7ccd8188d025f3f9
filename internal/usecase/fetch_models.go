package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chonker8/harness/internal/domain"
)

// FetchModelsInput contains the parameters for downloading the OCR models.
type FetchModelsInput struct {
	Dir        string              // Destination directory override (empty = config)
	OnProgress domain.ProgressFunc // Progress callback for each download
}

// FetchModelsOutput contains the result of the model downloads.
type FetchModelsOutput struct {
	DecoderPath string
	EncoderPath string
	BackupPath  string // Where the previous decoder model went, empty if none existed
}

// FetchModels is the use case for fetching the TrOCR ONNX models from
// the remote model repository.
type FetchModels struct {
	downloader domain.ArtifactDownloader
	logger     domain.Logger
	cfg        *domain.Config
}

// NewFetchModels creates a new FetchModels use case.
func NewFetchModels(downloader domain.ArtifactDownloader, logger domain.Logger, cfg *domain.Config) *FetchModels {
	return &FetchModels{
		downloader: downloader,
		logger:     logger,
		cfg:        cfg,
	}
}

// Execute downloads the decoder and encoder models in order. A
// pre-existing decoder model is renamed to the backup file before the
// fresh download overwrites it. Failures abort immediately and may
// leave a partial file behind; nothing is retried.
func (uc *FetchModels) Execute(ctx context.Context, in FetchModelsInput) (*FetchModelsOutput, error) {
	dir := in.Dir
	if dir == "" {
		dir = uc.cfg.Models.Dir
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create models directory: %w", err)
	}

	out := &FetchModelsOutput{
		DecoderPath: filepath.Join(dir, uc.cfg.Models.DecoderFile),
		EncoderPath: filepath.Join(dir, uc.cfg.Models.EncoderFile),
	}

	backup := filepath.Join(dir, uc.cfg.Models.BackupFile)
	if _, err := os.Stat(out.DecoderPath); err == nil {
		out.BackupPath = backup
		uc.logger.Info("models", fmt.Sprintf("backing up existing model to %s", backup))
	}

	uc.logger.Info("models", fmt.Sprintf("downloading decoder from %s", uc.cfg.Models.DecoderURL))
	err := uc.downloader.Fetch(ctx, domain.DownloadTask{
		URL:        uc.cfg.Models.DecoderURL,
		Dest:       out.DecoderPath,
		BackupPath: backup,
	}, in.OnProgress)
	if err != nil {
		uc.logger.Error("models", err.Error())
		return nil, fmt.Errorf("download decoder model: %w", err)
	}

	uc.logger.Info("models", fmt.Sprintf("downloading encoder from %s", uc.cfg.Models.EncoderURL))
	err = uc.downloader.Fetch(ctx, domain.DownloadTask{
		URL:  uc.cfg.Models.EncoderURL,
		Dest: out.EncoderPath,
	}, in.OnProgress)
	if err != nil {
		uc.logger.Error("models", err.Error())
		return nil, fmt.Errorf("download encoder model: %w", err)
	}

	return out, nil
}
