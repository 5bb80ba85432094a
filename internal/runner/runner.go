package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/foundry-tools/foundry/internal/platform"
)

// ErrBinaryNotFound is returned when no node_modules/.bin contains the tool.
var ErrBinaryNotFound = errors.New("binary not found")

// binDir is where package managers link executables.
var binDir = filepath.Join("node_modules", ".bin")

// Runner executes tool binaries.
type Runner struct {
	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Env is appended to the current process environment.
	Env []string
}

// Resolve walks up from dir and returns the nearest node_modules/.bin entry
// for tool. In workspaces the binary is often hoisted to the root.
func Resolve(dir, tool string) (string, error) {
	if tool == "" || filepath.Base(tool) != tool {
		return "", fmt.Errorf("invalid tool name %q", tool)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	names := platform.BinaryNames(tool)

	for current := abs; ; {
		for _, name := range names {
			candidate := filepath.Join(current, binDir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: %s is not installed in %s or any parent directory (run your package manager's install first)",
				ErrBinaryNotFound, tool, abs)
		}
		current = parent
	}
}

// Run executes bin with args in dir and returns the child's exit code. A
// non-zero exit is not an error; the error return is reserved for failures
// to start the process.
func (r *Runner) Run(ctx context.Context, dir, bin string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), r.Env...)

	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("executing %s: %w", filepath.Base(bin), err)
	}
	return 0, nil
}
