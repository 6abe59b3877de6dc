package preflight

import (
	"context"
	"os"
	"path/filepath"

	"alignwarm/internal/alignmodels"
	"alignwarm/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes the directory and network checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))

	dirs := alignmodels.ResolveCacheDirs(cfg.WhisperX.ModelDir)
	if cfg.WhisperX.ModelDir != "" {
		results = append(results, CheckDirectoryAccess("Model directory", cfg.WhisperX.ModelDir))
	} else {
		// Default caches are created lazily by torch and huggingface_hub.
		results = append(results, checkCacheParent("Hugging Face cache", dirs.HuggingFaceHub))
		results = append(results, checkCacheParent("Torch cache", dirs.TorchCheckpoints))
	}

	results = append(results, CheckHuggingFace(ctx, cfg.WhisperX.HubBaseURL, cfg.WhisperX.HFToken))

	return results
}

// checkCacheParent checks the nearest existing ancestor of path.
func checkCacheParent(name, path string) Result {
	dir := path
	for {
		if _, err := os.Stat(dir); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	result := CheckDirectoryAccess(name, dir)
	if dir != path && result.Passed {
		result.Detail = path + " (not created yet; parent writable)"
	}
	return result
}
