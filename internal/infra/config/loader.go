// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chonker8/harness/internal/domain"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	path string // Path to harness.toml
}

// NewLoader creates a new Loader for the config file in dir.
func NewLoader(dir string) *Loader {
	return &Loader{path: filepath.Join(dir, domain.ConfigFileName)}
}

// NewLoaderWithPath creates a new Loader for an explicit config path.
// This is useful for testing.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the configuration: built-in defaults overlaid with
// whatever the config file sets. A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	data, err := os.ReadFile(l.path) // #nosec G304 - config path is derived from the working directory
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their values.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}
	return cfg, nil
}

// RendererEnv builds the environment overrides for a renderer run:
// the library search path variable plus anything in the configured
// dotenv file. File entries win over the library path setting.
func RendererEnv(cfg *domain.Config) (map[string]string, error) {
	env := make(map[string]string)
	if cfg.Renderer.LibraryPath != "" && cfg.Renderer.LibraryEnv != "" {
		env[cfg.Renderer.LibraryEnv] = cfg.Renderer.LibraryPath
	}

	if cfg.Renderer.EnvFile != "" {
		extra, err := godotenv.Read(cfg.Renderer.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", cfg.Renderer.EnvFile, err)
		}
		for k, v := range extra {
			env[k] = v
		}
	}
	return env, nil
}

// WriteDefault writes the default configuration to dir. It refuses to
// overwrite an existing file.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, domain.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}

	data, err := toml.Marshal(domain.NewDefaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // Config file readable by repository users
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
