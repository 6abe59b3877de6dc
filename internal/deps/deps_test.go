package deps

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeStub(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := writeStub(t, binDir, "present", "exit 0\n")
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(context.Background(), reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("expected blank command to be reported as unconfigured, got %#v", results[2])
	}
}

func TestCheckBinariesProbesVersion(t *testing.T) {
	binDir := t.TempDir()
	uvx := writeStub(t, binDir, "uvx", "echo 'uv 0.8.3'\necho 'extra line'\n")
	broken := writeStub(t, binDir, "broken", "exit 2\n")

	results := CheckBinaries(context.Background(), []Requirement{
		{Name: "uvx", Command: uvx, VersionArgs: []string{"--version"}},
		{Name: "broken", Command: broken, VersionArgs: []string{"--version"}},
	})
	if results[0].Version != "uv 0.8.3" {
		t.Fatalf("expected first output line as version, got %q", results[0].Version)
	}
	if !results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected failed probe to keep binary available with detail, got %#v", results[1])
	}
}
