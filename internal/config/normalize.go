package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeWhisperX(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeWhisperX() error {
	c.WhisperX.UVXCommand = strings.TrimSpace(c.WhisperX.UVXCommand)
	if c.WhisperX.UVXCommand == "" {
		c.WhisperX.UVXCommand = defaultUVXCommand
	}
	c.WhisperX.Package = strings.TrimSpace(c.WhisperX.Package)
	if c.WhisperX.Package == "" {
		c.WhisperX.Package = defaultPackage
	}
	c.WhisperX.Device = strings.ToLower(strings.TrimSpace(c.WhisperX.Device))
	c.WhisperX.AlignModel = strings.TrimSpace(c.WhisperX.AlignModel)

	c.WhisperX.ModelDir = strings.TrimSpace(c.WhisperX.ModelDir)
	if c.WhisperX.ModelDir != "" {
		var err error
		if c.WhisperX.ModelDir, err = expandPath(c.WhisperX.ModelDir); err != nil {
			return fmt.Errorf("whisperx.model_dir: %w", err)
		}
	}

	c.WhisperX.HFToken = strings.TrimSpace(c.WhisperX.HFToken)
	if c.WhisperX.HFToken == "" {
		if value, ok := os.LookupEnv("HUGGING_FACE_HUB_TOKEN"); ok {
			c.WhisperX.HFToken = strings.TrimSpace(value)
		} else if value, ok := os.LookupEnv("HF_TOKEN"); ok {
			c.WhisperX.HFToken = strings.TrimSpace(value)
		}
	}

	c.WhisperX.HubBaseURL = strings.TrimRight(strings.TrimSpace(c.WhisperX.HubBaseURL), "/")
	if c.WhisperX.HubBaseURL == "" {
		c.WhisperX.HubBaseURL = defaultHubBaseURL
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
