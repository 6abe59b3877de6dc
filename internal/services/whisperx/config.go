package whisperx

// Config captures runtime settings for loading WhisperX alignment models.
type Config struct {
	// UVXCommand is the uvx executable used to run WhisperX.
	UVXCommand string
	// Package is the pip requirement passed to uvx --from.
	Package string
	// CUDAEnabled selects the CUDA wheel index.
	CUDAEnabled bool
	// Device is the torch device the model is loaded onto ("cpu" or "cuda").
	Device string
	// AlignModel overrides WhisperX's per-language default model.
	AlignModel string
	// ModelDir overrides the torch/Hugging Face cache root.
	ModelDir string
	// HFToken is exported as HF_TOKEN for gated Hugging Face repos.
	HFToken string
	// LockPath, when set, is flock'ed for the duration of a load.
	LockPath string
}

// WhisperX configuration constants.
const (
	DefaultPackage = "whisperx"
	CUDAIndexURL   = "https://download.pytorch.org/whl/cu128"
	PypiIndexURL   = "https://pypi.org/simple"
	CPUDevice      = "cpu"
	CUDADevice     = "cuda"
	UVXCommand     = "uvx"
	LockFileName   = ".alignwarm.lock"
)
