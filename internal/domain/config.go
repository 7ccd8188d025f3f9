package domain

import "time"

// ConfigFileName is the harness configuration file name.
const ConfigFileName = "harness.toml"

// Config is the root harness configuration loaded from harness.toml.
type Config struct {
	Renderer RendererConfig `toml:"renderer"`
	Models   ModelsConfig   `toml:"models"`
	Log      LogConfig      `toml:"log"`
}

// RendererConfig configures the external rendering binary.
type RendererConfig struct {
	// Binary is the path to the renderer executable.
	Binary string `toml:"binary"`
	// LibraryEnv is the environment variable used for the native
	// library search path (DYLD_LIBRARY_PATH on macOS).
	LibraryEnv string `toml:"library_env"`
	// LibraryPath is the value set for LibraryEnv; empty disables the override.
	LibraryPath string `toml:"library_path"`
	// EnvFile is an optional dotenv file with extra environment
	// overrides for the renderer process.
	EnvFile string `toml:"env_file"`
	// Artifact is the fixed-name PNG the renderer writes into its
	// working directory on a successful render.
	Artifact string `toml:"artifact"`
	// TimeoutSeconds bounds one renderer invocation.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// PDFCandidates are default documents for table scans.
	PDFCandidates []string `toml:"pdf_candidates"`
}

// Timeout returns the renderer timeout as a duration.
func (c RendererConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ModelsConfig configures the OCR model downloads.
type ModelsConfig struct {
	// Dir is the local directory model files are saved under.
	Dir string `toml:"dir"`
	// DecoderURL and EncoderURL point at the remote ONNX exports.
	DecoderURL string `toml:"decoder_url"`
	EncoderURL string `toml:"encoder_url"`
	// DecoderFile and EncoderFile are the fixed local filenames.
	DecoderFile string `toml:"decoder_file"`
	EncoderFile string `toml:"encoder_file"`
	// BackupFile is where a pre-existing decoder model is moved
	// before a fresh download overwrites it.
	BackupFile string `toml:"backup_file"`
}

// LogConfig configures the operation log.
type LogConfig struct {
	// Dir is the directory log files are written to; empty disables logging.
	Dir string `toml:"dir"`
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// NewDefaultConfig returns the built-in configuration. The renderer
// defaults match the chonker8-hot release layout; the model URLs point
// at the Xenova ONNX exports of TrOCR small (printed text).
func NewDefaultConfig() *Config {
	return &Config{
		Renderer: RendererConfig{
			Binary:         "./target/release/chonker8-hot",
			LibraryEnv:     "DYLD_LIBRARY_PATH",
			LibraryPath:    "./lib",
			Artifact:       "vello_render_test.png",
			TimeoutSeconds: 5,
		},
		Models: ModelsConfig{
			Dir:         "models",
			DecoderURL:  "https://huggingface.co/Xenova/trocr-small-printed/resolve/main/onnx/decoder_model_merged.onnx",
			EncoderURL:  "https://huggingface.co/Xenova/trocr-small-printed/resolve/main/onnx/encoder_model.onnx",
			DecoderFile: "trocr.onnx",
			EncoderFile: "trocr_encoder.onnx",
			BackupFile:  "trocr_pytorch.pth",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
