package whisperx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"alignwarm/internal/logging"
	"alignwarm/internal/prewarm"
	"alignwarm/internal/services"
)

const lockRetryDelay = 500 * time.Millisecond

// Service loads WhisperX alignment models.
type Service struct {
	cfg           Config
	logger        *slog.Logger
	stdout        io.Writer
	stderr        io.Writer
	commandRunner func(ctx context.Context, name string, args ...string) error
}

var _ prewarm.Loader = (*Service)(nil)

// NewService creates a WhisperX service with the given configuration.
func NewService(cfg Config, logger *slog.Logger) *Service {
	if cfg.UVXCommand == "" {
		cfg.UVXCommand = UVXCommand
	}
	if cfg.Package == "" {
		cfg.Package = DefaultPackage
	}
	return &Service{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "whisperx"),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// WithOutput redirects the subprocess output streams.
func (s *Service) WithOutput(stdout, stderr io.Writer) {
	if stdout != nil {
		s.stdout = stdout
	}
	if stderr != nil {
		s.stderr = stderr
	}
}

// Device returns the torch device models are loaded onto.
func (s *Service) Device() string {
	if s.cfg.Device != "" {
		return s.cfg.Device
	}
	if s.cfg.CUDAEnabled {
		return CUDADevice
	}
	return CPUDevice
}

// LoadAlignModel runs whisperx.load_align_model for language and reports the
// metadata of the loaded model.
func (s *Service) LoadAlignModel(ctx context.Context, language string) (prewarm.Model, error) {
	logger := logging.WithContext(ctx, s.logger)

	workDir, err := os.MkdirTemp("", "alignwarm-")
	if err != nil {
		return prewarm.Model{}, services.Wrap(services.ErrConfiguration, "whisperx", "prepare", "Could not create work directory", err)
	}
	defer os.RemoveAll(workDir)
	resultPath := filepath.Join(workDir, "align_model.json")

	unlock, err := s.acquireLock(ctx, logger)
	if err != nil {
		return prewarm.Model{}, err
	}
	defer unlock()

	logger.Info("loading alignment model",
		logging.String("device", s.Device()),
		logging.String("align_model", s.cfg.AlignModel),
		logging.String("model_dir", s.cfg.ModelDir),
	)
	started := time.Now()

	args := s.buildArgs(language, resultPath)
	if err := s.run(ctx, s.cfg.UVXCommand, args...); err != nil {
		return prewarm.Model{}, services.Wrap(services.ErrExternalTool, "whisperx", "load align model", fmt.Sprintf("Failed to load alignment model for %q", language), err)
	}

	model, err := readResult(resultPath)
	if err != nil {
		return prewarm.Model{}, services.Wrap(services.ErrExternalTool, "whisperx", "read model metadata", "Loader finished without reporting model metadata", err)
	}
	logger.Info("alignment model loaded",
		logging.String("source", model.Source),
		logging.Int("dictionary_size", model.DictionarySize),
		logging.Duration("elapsed", time.Since(started)),
	)
	return model, nil
}

// acquireLock takes the configured cache lock, waiting until it is free or
// ctx is done. The returned func releases it.
func (s *Service) acquireLock(ctx context.Context, logger *slog.Logger) (func(), error) {
	if s.cfg.LockPath == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.cfg.LockPath), 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "whisperx", "lock cache", "Could not create lock directory", err)
	}
	lock := flock.New(s.cfg.LockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "whisperx", "lock cache", "Could not lock model cache", err)
	}
	if !ok {
		logger.Info("waiting for model cache lock", logging.String("lock", s.cfg.LockPath))
		ok, err = lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, services.Wrap(services.ErrConfiguration, "whisperx", "lock cache", "Model cache lock unavailable", nil)
		}
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release model cache lock", logging.Error(err))
		}
	}, nil
}

// run executes a command, using the custom runner if set.
func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	cmd.Env = s.environment()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (s *Service) environment() []string {
	env := os.Environ()
	// Torch 2.6 changed torch.load default to weights_only=true, breaking WhisperX checkpoints.
	if os.Getenv("TORCH_FORCE_NO_WEIGHTS_ONLY_LOAD") == "" {
		env = append(env, "TORCH_FORCE_NO_WEIGHTS_ONLY_LOAD=1")
	}
	if s.cfg.HFToken != "" {
		env = append(env, "HF_TOKEN="+s.cfg.HFToken)
	}
	return env
}

// buildArgs constructs the uvx command arguments. language is passed through
// without normalisation.
func (s *Service) buildArgs(language, resultPath string) []string {
	args := make([]string, 0, 16)

	if s.cfg.CUDAEnabled {
		args = append(args,
			"--index-url", CUDAIndexURL,
			"--extra-index-url", PypiIndexURL,
		)
	} else {
		args = append(args, "--index-url", PypiIndexURL)
	}

	return append(args,
		"--from", s.cfg.Package,
		"python", "-c", alignModelScript,
		language,
		s.Device(),
		resultPath,
		s.cfg.AlignModel,
		s.cfg.ModelDir,
	)
}

type resultPayload struct {
	Language       string `json:"language"`
	Type           string `json:"type"`
	DictionarySize int    `json:"dictionary_size"`
}

func readResult(path string) (prewarm.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return prewarm.Model{}, err
	}
	var payload resultPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return prewarm.Model{}, fmt.Errorf("parse model metadata: %w", err)
	}
	return prewarm.Model{
		Language:       payload.Language,
		Source:         payload.Type,
		DictionarySize: payload.DictionarySize,
	}, nil
}
