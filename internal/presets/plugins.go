package presets

import (
	"github.com/foundry-tools/foundry/internal/compose"
	"github.com/foundry-tools/foundry/internal/options"
	"github.com/foundry-tools/foundry/internal/plugins"
)

// testOverride scopes a plugin's rules to test files.
func testOverride(files []any, plugin string, extends ...string) map[string]any {
	ext := make([]any, len(extends))
	for i, e := range extends {
		ext[i] = e
	}
	return map[string]any{
		"files":   files,
		"plugins": []any{plugin},
		"extends": ext,
	}
}

var eslintPluginFragments = map[plugins.Name]func(options.Options) compose.Fragment{
	plugins.CircuitUI: func(options.Options) compose.Fragment {
		return compose.Fragment{
			"plugins": []any{"@sumup/circuit-ui"},
			"rules": map[string]any{
				"@sumup/circuit-ui/component-lifecycle-imports": "error",
				"@sumup/circuit-ui/no-deprecated-props":         "warn",
				"@sumup/circuit-ui/no-renamed-props":            "error",
			},
		}
	},
	plugins.Cypress: func(options.Options) compose.Fragment {
		return compose.Fragment{
			"overrides": []any{
				testOverride([]any{"cypress/**/*", "**/*.cy.*"}, "cypress", "plugin:cypress/recommended"),
			},
		}
	},
	plugins.Emotion: func(options.Options) compose.Fragment {
		return compose.Fragment{
			"plugins": []any{"@emotion"},
			"rules": map[string]any{
				"@emotion/pkg-renaming":        "error",
				"@emotion/no-vanilla":          "error",
				"@emotion/import-from-emotion": "error",
				"@emotion/styled-import":       "error",
			},
		}
	},
	plugins.Jest: func(options.Options) compose.Fragment {
		return compose.Fragment{
			"overrides": []any{
				withEnv(testOverride(testFiles, "jest", "plugin:jest/recommended"), "jest"),
			},
		}
	},
	plugins.Next: func(opts options.Options) compose.Fragment {
		// The Next.js framework fragment already carries the plugin.
		if opts.HasFramework(options.NextJS) {
			return nil
		}
		return compose.Fragment{
			"plugins": []any{"@next/next"},
			"extends": []any{"plugin:@next/next/recommended"},
		}
	},
	plugins.Playwright: func(options.Options) compose.Fragment {
		return compose.Fragment{
			"overrides": []any{
				testOverride([]any{"e2e/**/*", "tests/**/*", "**/*.e2e.*"}, "playwright", "plugin:playwright/recommended"),
			},
		}
	},
	plugins.Storybook: func(options.Options) compose.Fragment {
		return compose.Fragment{
			"extends": []any{"plugin:storybook/recommended"},
		}
	},
	plugins.TestingLibrary: func(opts options.Options) compose.Fragment {
		config := "plugin:testing-library/dom"
		if opts.HasFramework(options.React) || opts.HasFramework(options.NextJS) {
			config = "plugin:testing-library/react"
		}
		return compose.Fragment{
			"overrides": []any{
				testOverride(testFiles, "testing-library", config),
			},
		}
	},
	plugins.Vitest: func(options.Options) compose.Fragment {
		return compose.Fragment{
			"overrides": []any{
				testOverride(testFiles, "@vitest", "plugin:@vitest/legacy-recommended"),
			},
		}
	},
}

func withEnv(override map[string]any, env string) map[string]any {
	override["env"] = map[string]any{env: true}
	return override
}

var stylelintPluginFragments = map[plugins.Name]func(options.Options) compose.Fragment{
	plugins.CircuitUI: func(options.Options) compose.Fragment {
		return compose.Fragment{
			"plugins": []any{"@sumup/stylelint-plugin-circuit-ui"},
			"rules": map[string]any{
				"circuit-ui/no-invalid-custom-properties": []any{true, map[string]any{"severity": "warning"}},
			},
		}
	},
}
