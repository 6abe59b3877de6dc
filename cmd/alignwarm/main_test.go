package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alignwarm/internal/config"
	"alignwarm/internal/logging"
	"alignwarm/internal/prewarm"
	"alignwarm/internal/testsupport"
)

func TestLoadForwardsLanguageOnce(t *testing.T) {
	env := setupCLITestEnv(t, "")
	fake := &fakeLoader{model: prewarm.Model{Language: "en", Source: "torchaudio", DictionarySize: 29}}

	stdout, _, err := env.run(fake.factory(), "en")
	if err != nil {
		t.Fatalf("alignwarm en returned error: %v", err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "en" {
		t.Fatalf("expected exactly one call with \"en\", got %q", fake.calls)
	}
	if stdout != "" {
		t.Fatalf("expected no output of our own on stdout, got %q", stdout)
	}
}

func TestLoadPassesLanguageVerbatim(t *testing.T) {
	env := setupCLITestEnv(t, "")
	for _, language := range []string{" EN ", "eng", "pt-BR", "Japanese"} {
		fake := &fakeLoader{}
		if _, _, err := env.run(fake.factory(), language); err != nil {
			t.Fatalf("alignwarm %q returned error: %v", language, err)
		}
		if len(fake.calls) != 1 || fake.calls[0] != language {
			t.Fatalf("expected %q forwarded unchanged, got %q", language, fake.calls)
		}
	}
}

func TestLoadIgnoresExtraArguments(t *testing.T) {
	env := setupCLITestEnv(t, "")
	fake := &fakeLoader{}
	if _, _, err := env.run(fake.factory(), "de", "ignored", "also-ignored"); err != nil {
		t.Fatalf("expected extra args to be ignored, got %v", err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "de" {
		t.Fatalf("expected only the first argument forwarded, got %q", fake.calls)
	}
}

func TestLoadRequiresLanguageBeforeLoaderIsBuilt(t *testing.T) {
	env := setupCLITestEnv(t, "")
	fake := &fakeLoader{}

	_, _, err := env.run(fake.factory())
	if !errors.Is(err, errLanguageRequired) {
		t.Fatalf("expected missing language error, got %v", err)
	}
	if fake.factories != 0 || len(fake.calls) != 0 {
		t.Fatalf("loader must not be built or called, factories=%d calls=%d", fake.factories, len(fake.calls))
	}
}

func TestLoadPropagatesLoaderErrorUnchanged(t *testing.T) {
	env := setupCLITestEnv(t, "")
	loaderErr := errors.New("No default align-model for language: xx")
	fake := &fakeLoader{err: loaderErr}

	_, _, err := env.run(fake.factory(), "xx")
	if err != loaderErr {
		t.Fatalf("expected loader error returned as-is, got %v", err)
	}
}

func TestLoadTwiceCallsLoaderTwice(t *testing.T) {
	env := setupCLITestEnv(t, "")
	fake := &fakeLoader{}
	for i := 0; i < 2; i++ {
		if _, _, err := env.run(fake.factory(), "fr"); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if len(fake.calls) != 2 {
		t.Fatalf("expected two independent loader calls, got %d", len(fake.calls))
	}
}

func TestLoadPassesConfigToLoader(t *testing.T) {
	env := setupCLITestEnv(t, "cuda_enabled = true\nalign_model = \"WAV2VEC2_ASR_BASE_960H\"")
	fake := &fakeLoader{}
	if _, _, err := env.run(fake.factory(), "en"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if fake.gotConfig == nil {
		t.Fatal("expected config to reach the loader factory")
	}
	if fake.gotConfig.Device() != config.DeviceCUDA {
		t.Fatalf("expected cuda device, got %q", fake.gotConfig.Device())
	}
	if fake.gotConfig.WhisperX.ModelDir != env.modelDir {
		t.Fatalf("unexpected model dir %q", fake.gotConfig.WhisperX.ModelDir)
	}
}

func TestLoadWritesRunLog(t *testing.T) {
	env := setupCLITestEnv(t, "")
	factory := func(_ *config.Config, logger *slog.Logger, _, _ io.Writer) prewarm.Loader {
		return prewarm.LoaderFunc(func(ctx context.Context, _ string) (prewarm.Model, error) {
			logging.WithContext(ctx, logger).Info("fake load")
			return prewarm.Model{}, nil
		})
	}
	if _, _, err := env.run(factory, "--log-level", "debug", "ja"); err != nil {
		t.Fatalf("run: %v", err)
	}
	content, err := os.ReadFile(filepath.Join(env.logDir, logging.LogFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, fragment := range []string{"fake load", "run_id=", "language=ja", "alignment model cache state"} {
		if !strings.Contains(string(content), fragment) {
			t.Fatalf("expected %q in log file, got %q", fragment, content)
		}
	}
}

func TestInvalidConfigFailsBeforeLoad(t *testing.T) {
	env := setupCLITestEnv(t, "device = \"tpu\"")
	fake := &fakeLoader{}
	_, _, err := env.run(fake.factory(), "en")
	if err == nil || !strings.Contains(err.Error(), "whisperx.device") {
		t.Fatalf("expected config validation error, got %v", err)
	}
	if len(fake.calls) != 0 {
		t.Fatal("loader must not run with invalid config")
	}
}

func TestNewWhisperXLoaderBuildsService(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if loader := newWhisperXLoader(cfg, logging.NewNop(), io.Discard, io.Discard); loader == nil {
		t.Fatal("expected a loader")
	}
}
