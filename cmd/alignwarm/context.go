package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"alignwarm/internal/alignmodels"
	"alignwarm/internal/config"
	"alignwarm/internal/logging"
	"alignwarm/internal/prewarm"
	"alignwarm/internal/services/whisperx"
)

// loaderFactory builds the model loader for one invocation.
type loaderFactory func(cfg *config.Config, logger *slog.Logger, stdout, stderr io.Writer) prewarm.Loader

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	verboseFlag  *bool
	newLoader    loaderFactory

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, verboseFlag *bool, factory loaderFactory) *commandContext {
	if factory == nil {
		factory = newWhisperXLoader
	}
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		verboseFlag:  verboseFlag,
		newLoader:    factory,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	var level string
	if c.logLevelFlag != nil {
		level = *c.logLevelFlag
	}
	verbose := c.verboseFlag != nil && *c.verboseFlag
	return logging.NewFromConfig(cfg, level, verbose)
}

func newWhisperXLoader(cfg *config.Config, logger *slog.Logger, stdout, stderr io.Writer) prewarm.Loader {
	var lockPath string
	if cfg.WhisperX.LockCache {
		dirs := alignmodels.ResolveCacheDirs(cfg.WhisperX.ModelDir)
		lockPath = filepath.Join(dirs.LockRoot(), whisperx.LockFileName)
	}
	svc := whisperx.NewService(whisperx.Config{
		UVXCommand:  cfg.WhisperX.UVXCommand,
		Package:     cfg.WhisperX.Package,
		CUDAEnabled: cfg.WhisperX.CUDAEnabled,
		Device:      cfg.Device(),
		AlignModel:  cfg.WhisperX.AlignModel,
		ModelDir:    cfg.WhisperX.ModelDir,
		HFToken:     cfg.WhisperX.HFToken,
		LockPath:    lockPath,
	}, logger)
	svc.WithOutput(stdout, stderr)
	return svc
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
