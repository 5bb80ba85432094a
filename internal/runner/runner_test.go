package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func installBinary(t *testing.T, dir, name, script string) string {
	t.Helper()
	bin := filepath.Join(dir, "node_modules", ".bin")
	if err := os.MkdirAll(bin, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(bin, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := installBinary(t, root, "eslint", "#!/bin/sh\n")

	nested := filepath.Join(root, "packages", "web")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(nested, "eslint")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != want {
		t.Errorf("Resolve() = %s, want %s", got, want)
	}
}

func TestResolve_PrefersNearest(t *testing.T) {
	root := t.TempDir()
	installBinary(t, root, "prettier", "#!/bin/sh\n")
	nested := filepath.Join(root, "app")
	want := installBinary(t, nested, "prettier", "#!/bin/sh\n")

	got, err := Resolve(nested, "prettier")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != want {
		t.Errorf("Resolve() = %s, want %s", got, want)
	}
}

func TestResolve_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Resolve(dir, "definitely-not-installed-tool"); !errors.Is(err, ErrBinaryNotFound) {
		t.Errorf("expected ErrBinaryNotFound, got %v", err)
	}
	for _, name := range []string{"", "../eslint", "bin/eslint"} {
		if _, err := Resolve(dir, name); err == nil {
			t.Errorf("Resolve(%q) should fail", name)
		}
	}
}

func TestRun_ForwardsOutputAndExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	dir := t.TempDir()
	bin := installBinary(t, dir, "tool", "#!/bin/sh\necho \"args: $@\"\necho oops >&2\nexit 3\n")

	var stdout, stderr bytes.Buffer
	r := &Runner{Stdin: bytes.NewReader(nil), Stdout: &stdout, Stderr: &stderr}

	code, err := r.Run(context.Background(), dir, bin, []string{"--fix", "src"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	if stdout.String() != "args: --fix src\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if stderr.String() != "oops\n" {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_StartFailure(t *testing.T) {
	r := &Runner{Stdin: bytes.NewReader(nil), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	_, err := r.Run(context.Background(), t.TempDir(), filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Error("expected error for missing binary")
	}
}
