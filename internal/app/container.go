// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	"github.com/chonker8/harness/internal/domain"
	"github.com/chonker8/harness/internal/infra/config"
	"github.com/chonker8/harness/internal/infra/download"
	"github.com/chonker8/harness/internal/infra/executor"
	"github.com/chonker8/harness/internal/infra/inspect"
	"github.com/chonker8/harness/internal/infra/kitty"
	"github.com/chonker8/harness/internal/infra/logging"
	"github.com/chonker8/harness/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Runner       domain.ProcessRunner
	Downloader   domain.ArtifactDownloader
	Inspector    domain.OutputInspector
	Emitter      domain.GraphicsEmitter
	ConfigLoader domain.ConfigLoader
	OpLog        domain.Logger

	// Pointer fields
	Logger *slog.Logger

	// Configuration
	Config *domain.Config
}

// New creates a new Container with the configuration found in dir.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	return &Container{
		Runner:       executor.NewClient(),
		Downloader:   download.NewClient(),
		Inspector:    inspect.NewScanner(),
		Emitter:      kitty.NewEmitter(),
		ConfigLoader: configLoader,
		OpLog:        logging.New(cfg.Log.Dir, level),
		Logger:       logger,
		Config:       cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg *domain.Config,
	runner domain.ProcessRunner,
	downloader domain.ArtifactDownloader,
	inspector domain.OutputInspector,
	emitter domain.GraphicsEmitter,
	opLog domain.Logger,
) *Container {
	return &Container{
		Runner:     runner,
		Downloader: downloader,
		Inspector:  inspector,
		Emitter:    emitter,
		OpLog:      opLog,
		Logger:     slog.New(slog.DiscardHandler),
		Config:     cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.OpLog.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// RendererEnv builds the environment overrides for a renderer run.
func (c *Container) RendererEnv() (map[string]string, error) {
	return config.RendererEnv(c.Config)
}

// LoadRules loads a marker rule set from a YAML file.
func (c *Container) LoadRules(path string) ([]domain.MarkerRule, error) {
	return inspect.LoadRules(path)
}

// WriteDefaultConfig writes the default configuration into dir.
func (c *Container) WriteDefaultConfig(dir string) (string, error) {
	return config.WriteDefault(dir)
}

// UseCase factory methods

// RenderProbeUseCase returns a new RenderProbe use case.
func (c *Container) RenderProbeUseCase() *usecase.RenderProbe {
	return usecase.NewRenderProbe(c.Runner, c.Inspector, c.OpLog, c.Config)
}

// FetchModelsUseCase returns a new FetchModels use case.
func (c *Container) FetchModelsUseCase() *usecase.FetchModels {
	return usecase.NewFetchModels(c.Downloader, c.OpLog, c.Config)
}

// DisplayImageUseCase returns a new DisplayImage use case.
func (c *Container) DisplayImageUseCase() *usecase.DisplayImage {
	return usecase.NewDisplayImage(c.Emitter, c.OpLog)
}

// ScanTablesUseCase returns a new ScanTables use case.
func (c *Container) ScanTablesUseCase() *usecase.ScanTables {
	return usecase.NewScanTables(c.Runner, c.Inspector, c.OpLog, c.Config)
}

// ShowPipelineUseCase returns a new ShowPipeline use case.
func (c *Container) ShowPipelineUseCase() *usecase.ShowPipeline {
	return usecase.NewShowPipeline(c.RenderProbeUseCase(), c.DisplayImageUseCase(), c.OpLog)
}

// ScanTextUseCase returns a new ScanText use case.
func (c *Container) ScanTextUseCase() *usecase.ScanText {
	return usecase.NewScanText(c.Inspector)
}
