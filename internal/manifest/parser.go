package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/foundry-tools/foundry/internal/branding"
)

// ErrManifestNotFound is returned when no package.json exists in the start
// directory or any of its ancestors.
var ErrManifestNotFound = errors.New("no package.json found")

// Find walks up from dir and returns the path of the nearest package.json.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for current := abs; ; {
		candidate := filepath.Join(current, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w in %s or any parent directory", ErrManifestNotFound, abs)
		}
		current = parent
	}
}

// LoadFrom finds the nearest package.json above dir and parses it.
func LoadFrom(dir string) (*PackageJSON, string, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, "", err
	}
	m, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return m, path, nil
}

// Load reads and parses the package.json at path.
func Load(path string) (*PackageJSON, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes package.json content. Only the top level has to be a JSON
// object; sections with an unexpected shape are treated as absent.
func Parse(data []byte) (*PackageJSON, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling JSON: %w", err)
	}

	m := &PackageJSON{
		Name:            decodeString(raw["name"]),
		Version:         decodeString(raw["version"]),
		License:         decodeString(raw["license"]),
		Type:            decodeString(raw["type"]),
		Dependencies:    decodeStringMap(raw["dependencies"]),
		DevDependencies: decodeStringMap(raw["devDependencies"]),
		Scripts:         decodeStringMap(raw["scripts"]),
		HasBin:          present(raw["bin"]),
		HasBrowser:      present(raw["browser"]),
	}

	if section, ok := raw[branding.ManifestKey()]; ok && isObject(section) {
		m.rawOverrides = section
		// Fields of the wrong type leave the override unset.
		m.Overrides = decodeOverrides(section)
	}

	return m, nil
}

// decodeOverrides decodes each override field independently so one bad
// field does not discard the others.
func decodeOverrides(section json.RawMessage) Overrides {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(section, &fields); err != nil {
		return Overrides{}
	}

	var o Overrides
	if v, ok := fields["language"]; ok {
		var s string
		if json.Unmarshal(v, &s) == nil {
			o.Language = &s
		}
	}
	o.Environments = decodeStringList(fields["environments"])
	o.Frameworks = decodeStringList(fields["frameworks"])
	o.Plugins = decodeStringList(fields["plugins"])
	if v, ok := fields["openSource"]; ok {
		var b bool
		if json.Unmarshal(v, &b) == nil {
			o.OpenSource = &b
		}
	}
	o.Customize = decodeCustomize(fields["customize"])
	return o
}

// decodeCustomize keeps the per-tool entries that are objects.
func decodeCustomize(v json.RawMessage) map[string]map[string]any {
	if !isObject(v) {
		return nil
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(v, &entries); err != nil {
		return nil
	}
	out := make(map[string]map[string]any, len(entries))
	for tool, value := range entries {
		var fragment map[string]any
		if isObject(value) && json.Unmarshal(value, &fragment) == nil {
			out[tool] = fragment
		}
	}
	return out
}

func decodeString(v json.RawMessage) string {
	var s string
	if len(v) == 0 || json.Unmarshal(v, &s) != nil {
		return ""
	}
	return s
}

// decodeStringMap keeps the entries whose value is a string and drops the
// rest. A section that is not an object yields nil.
func decodeStringMap(v json.RawMessage) map[string]string {
	if !isObject(v) {
		return nil
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(v, &entries); err != nil {
		return nil
	}
	out := make(map[string]string, len(entries))
	for name, value := range entries {
		var s string
		if json.Unmarshal(value, &s) == nil {
			out[name] = s
		}
	}
	return out
}

func decodeStringList(v json.RawMessage) *[]string {
	if len(v) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(v, &list); err != nil || list == nil {
		return nil
	}
	return &list
}

func present(v json.RawMessage) bool {
	return len(v) > 0 && !bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func isObject(v json.RawMessage) bool {
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
