package config

const (
	defaultConfigPath  = "~/.config/alignwarm/config.toml"
	projectConfigName  = "alignwarm.toml"
	defaultLogDir      = "~/.local/share/alignwarm/logs"
	defaultEnvFile     = "~/.config/alignwarm/alignwarm.env"
	defaultUVXCommand  = "uvx"
	defaultPackage     = "whisperx"
	defaultHubBaseURL  = "https://huggingface.co"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultLockCache   = true
	defaultCUDAEnabled = false
)

// Torch device names accepted by whisperx.device.
const (
	DeviceCPU  = "cpu"
	DeviceCUDA = "cuda"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:  defaultLogDir,
			EnvFile: defaultEnvFile,
		},
		WhisperX: WhisperX{
			UVXCommand:  defaultUVXCommand,
			Package:     defaultPackage,
			CUDAEnabled: defaultCUDAEnabled,
			HubBaseURL:  defaultHubBaseURL,
			LockCache:   defaultLockCache,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
