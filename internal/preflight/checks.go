package preflight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"alignwarm/internal/config"
	"alignwarm/internal/deps"
)

const hubCheckTimeout = 10 * time.Second

// CheckHuggingFace verifies the hub is reachable and, when a token is
// configured, that the token is accepted.
func CheckHuggingFace(ctx context.Context, baseURL, token string) Result {
	const name = "Hugging Face hub"

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return Result{Name: name, Detail: "missing url"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, hubCheckTimeout)
	defer cancel()

	client := &http.Client{Timeout: hubCheckTimeout}
	endpoint := base + "/api/models?limit=1"
	token = strings.TrimSpace(token)
	if token != "" {
		endpoint = base + "/api/whoami-v2"
	}
	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("request failed (%v)", err)}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: summarizeHubError(err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK && token != "":
		var who struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&who); err != nil || who.Name == "" {
			return Result{Name: name, Passed: true, Detail: "token accepted"}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("token accepted (%s)", who.Name)}
	case resp.StatusCode == http.StatusOK:
		return Result{Name: name, Passed: true, Detail: "reachable (anonymous)"}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Result{Name: name, Detail: "auth failed (invalid token)"}
	default:
		return Result{Name: name, Detail: fmt.Sprintf("check failed (%d)", resp.StatusCode)}
	}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSystemDeps evaluates the binaries needed to load models with cfg.
func CheckSystemDeps(ctx context.Context, cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "uvx",
			Command:     cfg.WhisperX.UVXCommand,
			Description: "Runs WhisperX in an ephemeral environment",
			VersionArgs: []string{"--version"},
		},
	}
	if cfg.Device() == config.DeviceCUDA {
		requirements = append(requirements, deps.Requirement{
			Name:        "nvidia-smi",
			Command:     "nvidia-smi",
			Description: "Confirms an NVIDIA driver is present for CUDA loads",
			Optional:    true,
		})
	}
	return deps.CheckBinaries(ctx, requirements)
}

func summarizeHubError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "check timed out (hub unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "check timed out (hub unreachable)"
	}
	return fmt.Sprintf("unreachable (%v)", err)
}
