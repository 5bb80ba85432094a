package emitter

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"

	"github.com/foundry-tools/foundry/internal/branding"
	"github.com/foundry-tools/foundry/internal/platform"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// ErrFileExists is returned when a target file exists and overwriting was
// not requested.
var ErrFileExists = errors.New("file already exists")

// Format selects how a File is rendered.
type Format int

const (
	// JSON renders Data as indented JSON.
	JSON Format = iota
	// YAML renders Data as YAML.
	YAML
	// Module renders a JavaScript file that calls the preset named by
	// Require with Data as its options and Override, when set, as the
	// config merged over the preset's result.
	Module
	// Hook renders Commands as an executable shell script.
	Hook
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case Module:
		return "module"
	case Hook:
		return "hook"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// File is one generated file.
type File struct {
	Path     string // relative to the target directory
	Format   Format
	Data     any      // JSON, YAML and Module
	Require  string   // Module: the module passed to require()
	Override any      // Module: second argument to the preset, omitted when nil
	Commands []string // Hook: script lines
}

// Result lists what Write produced.
type Result struct {
	Dir     string
	Written []string
}

// Render returns the content of f.
func Render(f File) ([]byte, error) {
	switch f.Format {
	case JSON:
		return renderJSON(f.Data)
	case YAML:
		return renderYAML(f.Data)
	case Module:
		options, err := renderJSON(f.Data)
		if err != nil {
			return nil, err
		}
		var override string
		if f.Override != nil {
			data, err := renderJSON(f.Override)
			if err != nil {
				return nil, err
			}
			override = strings.TrimRight(string(data), "\n")
		}
		return execute("module.js.tmpl", map[string]any{
			"Generator": branding.CLIName(),
			"Require":   f.Require,
			"Options":   strings.TrimRight(string(options), "\n"),
			"Override":  override,
		})
	case Hook:
		return execute("hook.sh.tmpl", map[string]any{
			"Generator": branding.CLIName(),
			"Commands":  f.Commands,
		})
	default:
		return nil, fmt.Errorf("unknown format %s for %s", f.Format, f.Path)
	}
}

// Write renders every file and writes it below dir, creating parent
// directories as needed. A file that already exists is left untouched
// unless overwrite is set; such conflicts are reported as ErrFileExists
// after the remaining files have been written.
func Write(dir string, files []File, overwrite bool) (*Result, error) {
	result := &Result{Dir: dir}
	var conflicts []error

	for _, f := range files {
		target := filepath.Join(dir, f.Path)

		if _, err := os.Stat(target); err == nil && !overwrite {
			conflicts = append(conflicts, fmt.Errorf("%w: %s (use --overwrite to replace it)", ErrFileExists, target))
			continue
		}

		content, err := Render(f)
		if err != nil {
			return result, fmt.Errorf("rendering %s: %w", f.Path, err)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return result, fmt.Errorf("creating directory for %s: %w", target, err)
		}

		mode := os.FileMode(0644)
		if f.Format == Hook {
			mode = 0755
		}
		if err := os.WriteFile(target, content, mode); err != nil {
			return result, fmt.Errorf("writing %s: %w", target, err)
		}
		// WriteFile keeps the mode of an existing file.
		if err := platform.Chmod(target, mode); err != nil {
			return result, fmt.Errorf("setting mode of %s: %w", target, err)
		}

		result.Written = append(result.Written, f.Path)
	}

	return result, errors.Join(conflicts...)
}

func renderJSON(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return buf.Bytes(), nil
}

func renderYAML(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
