package presets

import (
	"github.com/foundry-tools/foundry/internal/emitter"
)

// huskyOutput installs a pre-commit hook. The hook runs lint-staged when it
// is part of the setup and otherwise falls back to the lint script.
func huskyOutput(p Params) *Output {
	command := "npm run lint"
	if p.has(LintStaged) || len(p.Tools) == 0 {
		command = "npx lint-staged"
	}
	return &Output{
		Tool: Husky,
		Files: []emitter.File{{
			Path:     ".husky/pre-commit",
			Format:   emitter.Hook,
			Commands: []string{command},
		}},
		Scripts: []Script{{Name: "prepare", Command: "husky"}},
	}
}
