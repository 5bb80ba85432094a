package scripts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/buger/jsonparser"
)

// ErrScriptConflict is returned when a script name already holds a
// different command and overwriting was not requested.
var ErrScriptConflict = errors.New("script already exists")

// ErrScriptsNotObject is returned when package.json has a "scripts" field
// that is not an object.
var ErrScriptsNotObject = errors.New(`"scripts" is not an object`)

// Outcome reports what Add did.
type Outcome string

const (
	Added       Outcome = "added"
	Unchanged   Outcome = "unchanged"
	Overwritten Outcome = "overwritten"
)

// Add sets scripts.<name> to command in the package.json at path.
func Add(path, name, command string, overwrite bool) (Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	updated, outcome, err := Set(data, name, command, overwrite)
	if err != nil {
		return "", fmt.Errorf("updating %s: %w", path, err)
	}
	if outcome == Unchanged {
		return outcome, nil
	}

	if err := os.WriteFile(path, updated, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return outcome, nil
}

// Set returns data with scripts.<name> set to command.
func Set(data []byte, name, command string, overwrite bool) ([]byte, Outcome, error) {
	_, sectionType, _, err := jsonparser.Get(data, "scripts")
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
	case err != nil:
		return nil, "", fmt.Errorf("reading scripts: %w", err)
	case sectionType != jsonparser.Object:
		return nil, "", fmt.Errorf("%w: found %s", ErrScriptsNotObject, sectionType)
	}

	existing, dataType, _, err := jsonparser.Get(data, "scripts", name)
	outcome := Added
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
	case err != nil:
		return nil, "", fmt.Errorf("reading scripts.%s: %w", name, err)
	default:
		current := string(existing)
		if dataType == jsonparser.String {
			if current, err = jsonparser.ParseString(existing); err != nil {
				return nil, "", fmt.Errorf("reading scripts.%s: %w", name, err)
			}
		}
		if current == command {
			return data, Unchanged, nil
		}
		if !overwrite {
			return nil, "", fmt.Errorf("%w: %q runs %q, not %q", ErrScriptConflict, name, current, command)
		}
		outcome = Overwritten
	}

	value, err := json.Marshal(command)
	if err != nil {
		return nil, "", fmt.Errorf("encoding command: %w", err)
	}
	updated, err := jsonparser.Set(data, value, "scripts", name)
	if err != nil {
		return nil, "", fmt.Errorf("setting scripts.%s: %w", name, err)
	}

	formatted, err := reformat(updated, detectIndent(data), bytes.HasSuffix(data, []byte("\n")))
	if err != nil {
		return nil, "", err
	}
	return formatted, outcome, nil
}

// reformat re-indents data without touching key order.
func reformat(data []byte, indent string, trailingNewline bool) ([]byte, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return nil, fmt.Errorf("compacting JSON: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("indenting JSON: %w", err)
	}
	if trailingNewline {
		out.WriteByte('\n')
	}
	return out.Bytes(), nil
}

// detectIndent returns the indentation of the first indented line, or two
// spaces when the file has none.
func detectIndent(data []byte) string {
	for _, line := range bytes.Split(data, []byte("\n"))[1:] {
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == len(line) || len(trimmed) == 0 {
			continue
		}
		return string(line[:len(line)-len(trimmed)])
	}
	return "  "
}
