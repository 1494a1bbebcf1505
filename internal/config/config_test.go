// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// Config tests share the package-level directory override, so they must not
// run in parallel with each other.

func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	SetConfigDirOverride(dir)
	t.Cleanup(func() { SetConfigDirOverride("") })
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	withConfigDir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Engine != "auto" {
		t.Errorf("expected engine auto, got %q", cfg.Engine)
	}
	if cfg.Shell != "/bin/bash" {
		t.Errorf("expected /bin/bash shell, got %q", cfg.Shell)
	}
	if cfg.LogTail != 50 {
		t.Errorf("expected log tail 50, got %d", cfg.LogTail)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	withConfigDir(t, dir)

	content := "engine = \"podman\"\nshell = \"/bin/sh\"\nlog_tail = 100\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Engine != "podman" {
		t.Errorf("expected engine podman, got %q", cfg.Engine)
	}
	if cfg.Shell != "/bin/sh" {
		t.Errorf("expected /bin/sh shell, got %q", cfg.Shell)
	}
	if cfg.LogTail != 100 {
		t.Errorf("expected log tail 100, got %d", cfg.LogTail)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	withConfigDir(t, t.TempDir())

	want := &Config{Engine: "docker", Shell: "/bin/zsh", LogTail: 25, NoColor: true}
	path, err := Save(want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}
