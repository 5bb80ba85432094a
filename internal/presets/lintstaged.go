package presets

import (
	"github.com/foundry-tools/foundry/internal/compose"
	"github.com/foundry-tools/foundry/internal/options"
)

// scriptGlob returns the lint-staged glob for the project's source files.
func scriptGlob(lang options.Language) string {
	if lang == options.TypeScript {
		return "*.{js,jsx,ts,tsx}"
	}
	return "*.{js,jsx}"
}

func lintStagedConfig(p Params) compose.Fragment {
	var script []any
	if p.has(ESLint) {
		script = append(script, runCommand("eslint", "--fix"))
	}
	script = append(script, runCommand("prettier", "--write"))

	config := compose.Fragment{
		scriptGlob(p.Options.Language): script,
		"*.{json,md,yml,yaml}":         []any{runCommand("prettier", "--write")},
	}
	if p.has(Stylelint) {
		config["*.{css,scss}"] = []any{
			runCommand("stylelint", "--fix"),
			runCommand("prettier", "--write"),
		}
	}
	return config
}
