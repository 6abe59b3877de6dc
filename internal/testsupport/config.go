package testsupport

import (
	"path/filepath"
	"testing"

	"alignwarm/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The dotenv file is disabled so the caller's environment cannot leak in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.EnvFile = ""
	cfgVal.WhisperX.ModelDir = filepath.Join(base, "models")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure test directories: %v", err)
	}
	return builder.cfg
}

// WithHubURL points the Hugging Face checks at a test server.
func WithHubURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.WhisperX.HubBaseURL = url
	}
}

// WithUVXCommand overrides the uvx binary on the test config.
func WithUVXCommand(command string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.WhisperX.UVXCommand = command
	}
}

// WithCUDA enables CUDA loads on the test config.
func WithCUDA() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.WhisperX.CUDAEnabled = true
	}
}

// WithDefaultCaches clears the model directory so the torch and Hugging Face
// cache locations come from the environment.
func WithDefaultCaches() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.WhisperX.ModelDir = ""
	}
}
