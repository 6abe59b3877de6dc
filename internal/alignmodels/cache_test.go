package alignmodels

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveCacheDirsHonoursEnvironment(t *testing.T) {
	base := t.TempDir()
	t.Setenv("TORCH_HOME", filepath.Join(base, "torch"))
	t.Setenv("HF_HUB_CACHE", "")
	t.Setenv("HF_HOME", filepath.Join(base, "hf"))

	dirs := ResolveCacheDirs("")
	if dirs.TorchCheckpoints != filepath.Join(base, "torch", "hub", "checkpoints") {
		t.Fatalf("unexpected torch dir: %q", dirs.TorchCheckpoints)
	}
	if dirs.HuggingFaceHub != filepath.Join(base, "hf", "hub") {
		t.Fatalf("unexpected hub dir: %q", dirs.HuggingFaceHub)
	}

	t.Setenv("HF_HUB_CACHE", filepath.Join(base, "hub-cache"))
	if got := ResolveCacheDirs("").HuggingFaceHub; got != filepath.Join(base, "hub-cache") {
		t.Fatalf("expected HF_HUB_CACHE to win, got %q", got)
	}
}

func TestResolveCacheDirsXDGFallback(t *testing.T) {
	base := t.TempDir()
	t.Setenv("TORCH_HOME", "")
	t.Setenv("HF_HUB_CACHE", "")
	t.Setenv("HF_HOME", "")
	t.Setenv("XDG_CACHE_HOME", base)

	dirs := ResolveCacheDirs("")
	if dirs.TorchCheckpoints != filepath.Join(base, "torch", "hub", "checkpoints") {
		t.Fatalf("unexpected torch dir: %q", dirs.TorchCheckpoints)
	}
	if dirs.HuggingFaceHub != filepath.Join(base, "huggingface", "hub") {
		t.Fatalf("unexpected hub dir: %q", dirs.HuggingFaceHub)
	}
	if dirs.LockRoot() != filepath.Join(base, "huggingface") {
		t.Fatalf("unexpected lock root: %q", dirs.LockRoot())
	}
}

func TestModelDirReplacesDefaults(t *testing.T) {
	dir := t.TempDir()
	dirs := ResolveCacheDirs(dir)
	if dirs.TorchCheckpoints != dir || dirs.HuggingFaceHub != dir {
		t.Fatalf("expected model dir for both caches, got %+v", dirs)
	}
	if dirs.LockRoot() != dir {
		t.Fatalf("expected lock root %q, got %q", dir, dirs.LockRoot())
	}
}

func TestCachedDetectsTorchCheckpoint(t *testing.T) {
	dir := t.TempDir()
	dirs := ResolveCacheDirs(dir)
	entry, _ := Lookup("en")

	if dirs.Cached(entry) {
		t.Fatal("expected empty cache to report not cached")
	}
	if err := os.WriteFile(filepath.Join(dir, entry.Checkpoint), []byte("weights"), 0o644); err != nil {
		t.Fatalf("write checkpoint: %v", err)
	}
	if !dirs.Cached(entry) {
		t.Fatal("expected checkpoint to be detected")
	}
}

func TestCachedDetectsHubSnapshot(t *testing.T) {
	dir := t.TempDir()
	dirs := ResolveCacheDirs(dir)
	entry, _ := Lookup("ja")

	repoDir := filepath.Join(dir, "models--jonatasgrosman--wav2vec2-large-xlsr-53-japanese")
	if err := os.MkdirAll(filepath.Join(repoDir, "refs"), 0o755); err != nil {
		t.Fatalf("mkdir refs: %v", err)
	}
	if dirs.Cached(entry) {
		t.Fatal("expected repo without snapshots to report not cached")
	}
	if err := os.MkdirAll(filepath.Join(repoDir, "snapshots", "abc123"), 0o755); err != nil {
		t.Fatalf("mkdir snapshot: %v", err)
	}
	if !dirs.Cached(entry) {
		t.Fatal("expected snapshot to be detected")
	}
}

func TestCachedUnknownSource(t *testing.T) {
	if ResolveCacheDirs(t.TempDir()).Cached(Entry{Language: "xx"}) {
		t.Fatal("expected unknown entry to report not cached")
	}
}
