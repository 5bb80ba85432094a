package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestFilePath(t *testing.T) {
	home := setupHome(t)
	want := filepath.Join(home, ".foundry", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestSetGet(t *testing.T) {
	setupHome(t)
	Load()

	if got := Get(KeyFormat); got != "json" {
		t.Errorf("default format = %q, want json", got)
	}

	if err := Set(KeyFormat, "module"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyFormat); got != "module" {
		t.Errorf("Get(format) after reload = %q, want module", got)
	}
}

func TestDebug(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"unset", "", false},
		{"true", "true", true},
		{"one", "1", true},
		{"false", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHome(t)
			t.Setenv("FOUNDRY_DEBUG", tt.value)
			Load()
			if got := Debug(); got != tt.want {
				t.Errorf("Debug() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadProjectEnv(t *testing.T) {
	dir := t.TempDir()
	content := "FOUNDRY_TEST_FRESH=from-file\nFOUNDRY_TEST_KEPT=from-file\n"
	if err := os.WriteFile(filepath.Join(dir, EnvFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FOUNDRY_TEST_KEPT", "from-shell")
	t.Cleanup(func() { os.Unsetenv("FOUNDRY_TEST_FRESH") })

	if err := LoadProjectEnv(dir); err != nil {
		t.Fatalf("LoadProjectEnv() error: %v", err)
	}

	if got := os.Getenv("FOUNDRY_TEST_FRESH"); got != "from-file" {
		t.Errorf("FOUNDRY_TEST_FRESH = %q, want from-file", got)
	}
	if got := os.Getenv("FOUNDRY_TEST_KEPT"); got != "from-shell" {
		t.Errorf("FOUNDRY_TEST_KEPT = %q, want the existing value", got)
	}
}

func TestLoadProjectEnv_Missing(t *testing.T) {
	if err := LoadProjectEnv(t.TempDir()); err != nil {
		t.Errorf("LoadProjectEnv() on a directory without .env: %v", err)
	}
}
