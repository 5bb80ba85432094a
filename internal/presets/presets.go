package presets

import (
	"fmt"
	"strings"

	"github.com/foundry-tools/foundry/internal/branding"
	"github.com/foundry-tools/foundry/internal/compose"
	"github.com/foundry-tools/foundry/internal/emitter"
	"github.com/foundry-tools/foundry/internal/options"
	"github.com/foundry-tools/foundry/internal/plugins"
)

// Tool identifies a supported third-party tool.
type Tool string

const (
	ESLint          Tool = "eslint"
	Prettier        Tool = "prettier"
	Stylelint       Tool = "stylelint"
	LintStaged      Tool = "lint-staged"
	Husky           Tool = "husky"
	SemanticRelease Tool = "semantic-release"
)

// AllTools returns every supported tool in generation order.
func AllTools() []Tool {
	return []Tool{ESLint, Prettier, Stylelint, LintStaged, Husky, SemanticRelease}
}

// ParseTool converts a string to a Tool, returning false if unknown.
func ParseTool(s string) (Tool, bool) {
	for _, t := range AllTools() {
		if string(t) == strings.ToLower(strings.TrimSpace(s)) {
			return t, true
		}
	}
	return "", false
}

// OutputFormat selects how config files are written.
type OutputFormat string

const (
	// FormatData writes the fully composed config as JSON or YAML.
	FormatData OutputFormat = "json"
	// FormatModule writes a JavaScript file that calls the npm preset with
	// the resolved options.
	FormatModule OutputFormat = "module"
)

// ParseFormat converts a string to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatData, "data":
		return FormatData, nil
	case FormatModule:
		return FormatModule, nil
	default:
		return "", fmt.Errorf("unknown format %q: expected %q or %q", s, FormatData, FormatModule)
	}
}

// Params carries everything a preset needs.
type Params struct {
	Options  options.Options
	Registry *plugins.Registry
	Format   OutputFormat

	// Tools lists every tool being set up, so presets can refer to each
	// other (lint-staged runs stylelint only when it is configured).
	Tools []Tool

	// Customize holds explicit per-tool overrides, applied last.
	Customize map[Tool]compose.Fragment
}

func (p Params) has(tool Tool) bool {
	for _, t := range p.Tools {
		if t == tool {
			return true
		}
	}
	return false
}

// Script is an npm script a preset wants in package.json.
type Script struct {
	Name    string
	Command string
}

// Output is what a preset produces.
type Output struct {
	Tool    Tool
	Files   []emitter.File
	Scripts []Script
}

// preset describes one tool's files.
type preset struct {
	dataFile   string
	dataFormat emitter.Format
	moduleFile string // without extension
	config     func(Params) compose.Fragment
	scripts    func(Params) []Script
}

var presetTable = map[Tool]preset{
	ESLint: {
		dataFile:   ".eslintrc.json",
		dataFormat: emitter.JSON,
		moduleFile: ".eslintrc",
		config:     eslintConfig,
		scripts: func(Params) []Script {
			return []Script{{Name: "lint", Command: runCommand("eslint", ".")}}
		},
	},
	Prettier: {
		dataFile:   ".prettierrc.json",
		dataFormat: emitter.JSON,
		moduleFile: "prettier.config",
		config:     prettierConfig,
		scripts: func(Params) []Script {
			return []Script{{Name: "format", Command: runCommand("prettier", "--write", ".")}}
		},
	},
	Stylelint: {
		dataFile:   ".stylelintrc.json",
		dataFormat: emitter.JSON,
		moduleFile: "stylelint.config",
		config:     stylelintConfig,
		scripts: func(Params) []Script {
			return []Script{{Name: "lint:css", Command: runCommand("stylelint", `"**/*.{css,scss}"`)}}
		},
	},
	LintStaged: {
		dataFile:   ".lintstagedrc.json",
		dataFormat: emitter.JSON,
		moduleFile: "lint-staged.config",
		config:     lintStagedConfig,
	},
	SemanticRelease: {
		dataFile:   ".releaserc.yml",
		dataFormat: emitter.YAML,
		moduleFile: "release.config",
		config:     releaseConfig,
		scripts: func(Params) []Script {
			return []Script{{Name: "release", Command: runCommand("semantic-release")}}
		},
	},
}

// Generate returns the files and scripts for tool.
func Generate(tool Tool, p Params) (*Output, error) {
	if tool == Husky {
		return huskyOutput(p), nil
	}

	pr, ok := presetTable[tool]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", tool)
	}

	out := &Output{Tool: tool}
	switch p.Format {
	case FormatModule:
		f := emitter.File{
			Path:    pr.moduleFile + moduleExtension(p.Options),
			Format:  emitter.Module,
			Require: branding.NPMPackage() + "/" + string(tool),
			Data:    p.Options,
		}
		// The preset merges the customization over its own result.
		if c := p.Customize[tool]; len(c) > 0 {
			f.Override = c
		}
		out.Files = []emitter.File{f}
	default:
		out.Files = []emitter.File{{
			Path:   pr.dataFile,
			Format: pr.dataFormat,
			Data:   Config(tool, p),
		}}
	}
	if pr.scripts != nil {
		out.Scripts = pr.scripts(p)
	}
	return out, nil
}

// Config returns the fully composed config object for tool. Husky has no
// config object and yields nil.
func Config(tool Tool, p Params) compose.Fragment {
	pr, ok := presetTable[tool]
	if !ok {
		return nil
	}
	return compose.Customize(pr.config(p), p.Customize[tool])
}

// moduleExtension picks .cjs for ES module packages, where .js files cannot
// use module.exports.
func moduleExtension(opts options.Options) string {
	if opts.PackageType == "module" {
		return ".cjs"
	}
	return ".js"
}

func runCommand(tool string, args ...string) string {
	return strings.Join(append([]string{branding.CLIName(), "run", tool}, args...), " ")
}
