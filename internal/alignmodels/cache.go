package alignmodels

import (
	"os"
	"path/filepath"
	"strings"
)

// CacheDirs are the roots a model may be cached under.
type CacheDirs struct {
	// TorchCheckpoints holds torchaudio checkpoint files.
	TorchCheckpoints string
	// HuggingFaceHub holds models--org--name directories.
	HuggingFaceHub string
}

// ResolveCacheDirs reports where WhisperX will cache models. A non-empty
// modelDir replaces both defaults, as whisperx.load_align_model does.
func ResolveCacheDirs(modelDir string) CacheDirs {
	if strings.TrimSpace(modelDir) != "" {
		return CacheDirs{TorchCheckpoints: modelDir, HuggingFaceHub: modelDir}
	}
	return CacheDirs{
		TorchCheckpoints: filepath.Join(torchHome(), "hub", "checkpoints"),
		HuggingFaceHub:   huggingFaceHubCache(),
	}
}

// LockRoot is the directory a cross-process cache lock should live in.
func (d CacheDirs) LockRoot() string {
	if d.TorchCheckpoints == d.HuggingFaceHub {
		return d.HuggingFaceHub
	}
	return filepath.Dir(d.HuggingFaceHub)
}

// Cached reports whether the entry's weights appear in the cache.
func (d CacheDirs) Cached(e Entry) bool {
	switch e.Source {
	case SourceTorchaudio:
		if e.Checkpoint == "" {
			return false
		}
		return fileExists(filepath.Join(d.TorchCheckpoints, e.Checkpoint))
	case SourceHuggingFace:
		if e.ModelID == "" {
			return false
		}
		return hasSnapshot(filepath.Join(d.HuggingFaceHub, hubRepoDir(e.ModelID)))
	default:
		return false
	}
}

func hubRepoDir(repoID string) string {
	return "models--" + strings.ReplaceAll(repoID, "/", "--")
}

func hasSnapshot(repoDir string) bool {
	entries, err := os.ReadDir(filepath.Join(repoDir, "snapshots"))
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func torchHome() string {
	if v := strings.TrimSpace(os.Getenv("TORCH_HOME")); v != "" {
		return v
	}
	return filepath.Join(cacheHome(), "torch")
}

func huggingFaceHubCache() string {
	if v := strings.TrimSpace(os.Getenv("HF_HUB_CACHE")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("HF_HOME")); v != "" {
		return filepath.Join(v, "hub")
	}
	return filepath.Join(cacheHome(), "huggingface", "hub")
}

func cacheHome() string {
	if v := strings.TrimSpace(os.Getenv("XDG_CACHE_HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".cache")
	}
	return filepath.Join(home, ".cache")
}
