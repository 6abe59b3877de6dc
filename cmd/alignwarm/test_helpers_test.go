package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alignwarm/internal/config"
	"alignwarm/internal/prewarm"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	logDir     string
	modelDir   string
}

func setupCLITestEnv(t *testing.T, extraTOML string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("HF_TOKEN", "")
	t.Setenv("HUGGING_FACE_HUB_TOKEN", "")

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		logDir:     filepath.Join(base, "logs"),
		modelDir:   filepath.Join(base, "models"),
	}
	body := strings.Join([]string{
		"[paths]",
		"log_dir = \"" + env.logDir + "\"",
		"env_file = \"\"",
		"[whisperx]",
		"model_dir = \"" + env.modelDir + "\"",
		extraTOML,
	}, "\n")
	if err := os.WriteFile(env.configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func (e *cliTestEnv) run(factory loaderFactory, args ...string) (string, string, error) {
	cmd := newRootCommand(factory)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

type fakeLoader struct {
	calls     []string
	factories int
	err       error
	model     prewarm.Model
	gotConfig *config.Config
}

func (f *fakeLoader) factory() loaderFactory {
	return func(cfg *config.Config, _ *slog.Logger, _, _ io.Writer) prewarm.Loader {
		f.factories++
		f.gotConfig = cfg
		return prewarm.LoaderFunc(func(_ context.Context, language string) (prewarm.Model, error) {
			f.calls = append(f.calls, language)
			return f.model, f.err
		})
	}
}
