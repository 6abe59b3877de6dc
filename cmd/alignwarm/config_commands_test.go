package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	env := setupCLITestEnv(t, "")
	target := filepath.Join(env.baseDir, "new", "alignwarm.toml")

	stdout, _, err := env.run(nil, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("expected target path in output, got %q", stdout)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[whisperx]") {
		t.Fatalf("unexpected sample content: %q", data)
	}

	if _, _, err := env.run(nil, "config", "init", "--path", target); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected refusal to overwrite, got %v", err)
	}
	if _, _, err := env.run(nil, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("expected overwrite to succeed, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	env := setupCLITestEnv(t, "")
	stdout, _, err := env.run(nil, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	for _, fragment := range []string{"Config path: " + env.configPath, "Device: cpu", "HF token: no", "Configuration valid"} {
		if !strings.Contains(stdout, fragment) {
			t.Fatalf("expected %q in output %q", fragment, stdout)
		}
	}
}

func TestConfigValidateReportsErrors(t *testing.T) {
	env := setupCLITestEnv(t, "")
	if err := os.WriteFile(env.configPath, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err := env.run(nil, "config", "validate")
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load error, got %v", err)
	}
}
