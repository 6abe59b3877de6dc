package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWhisperX(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateWhisperX() error {
	if c.WhisperX.UVXCommand == "" {
		return errors.New("whisperx.uvx_command must be set")
	}
	if c.WhisperX.Package == "" {
		return errors.New("whisperx.package must be set")
	}
	switch c.WhisperX.Device {
	case "", DeviceCPU, DeviceCUDA:
	default:
		return fmt.Errorf("whisperx.device must be %q or %q, got %q", DeviceCPU, DeviceCUDA, c.WhisperX.Device)
	}
	if c.WhisperX.Device == DeviceCUDA && !c.WhisperX.CUDAEnabled {
		return errors.New("whisperx.device is cuda but whisperx.cuda_enabled is false")
	}
	parsed, err := url.Parse(c.WhisperX.HubBaseURL)
	if err != nil {
		return fmt.Errorf("whisperx.hub_base_url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("whisperx.hub_base_url must be an absolute http(s) URL, got %q", c.WhisperX.HubBaseURL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
