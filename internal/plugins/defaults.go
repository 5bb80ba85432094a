package plugins

// defaultRegistry is built once at startup and never modified.
var defaultRegistry = NewRegistry(
	Descriptor{
		Name:              CircuitUI,
		Label:             "Circuit UI",
		FrameworkPackages: []string{"@sumup/circuit-ui"},
		ESLintPlugins:     map[string]string{"@sumup/eslint-plugin-circuit-ui": ">=4.0.0"},
		StylelintPlugins:  map[string]string{"@sumup/stylelint-plugin-circuit-ui": ">=2.0.0"},
	},
	Descriptor{
		Name:              Cypress,
		Label:             "Cypress",
		FrameworkPackages: []string{"cypress"},
		ESLintPlugins:     map[string]string{"eslint-plugin-cypress": ">=3.0.0"},
	},
	Descriptor{
		Name:              Emotion,
		Label:             "Emotion.js",
		FrameworkPackages: []string{"@emotion/react", "@emotion/styled"},
		ESLintPlugins:     map[string]string{"@emotion/eslint-plugin": ">=11.0.0"},
	},
	Descriptor{
		Name:              Jest,
		Label:             "Jest",
		FrameworkPackages: []string{"jest"},
		ESLintPlugins:     map[string]string{"eslint-plugin-jest": ">=28.0.0"},
	},
	Descriptor{
		Name:              Next,
		Label:             "Next.js",
		FrameworkPackages: []string{"next"},
		ESLintPlugins:     map[string]string{"@next/eslint-plugin-next": ">=15.0.0"},
	},
	Descriptor{
		Name:              Playwright,
		Label:             "Playwright",
		FrameworkPackages: []string{"@playwright/test"},
		ESLintPlugins:     map[string]string{"eslint-plugin-playwright": ">=1.0.0"},
	},
	Descriptor{
		Name:              Storybook,
		Label:             "Storybook",
		FrameworkPackages: []string{"storybook", "@storybook/react"},
		ESLintPlugins:     map[string]string{"eslint-plugin-storybook": ">=0.8.0"},
	},
	Descriptor{
		Name:              TestingLibrary,
		Label:             "Testing Library",
		FrameworkPackages: []string{"@testing-library/react", "@testing-library/dom"},
		ESLintPlugins:     map[string]string{"eslint-plugin-testing-library": ">=6.0.0"},
	},
	Descriptor{
		Name:              Vitest,
		Label:             "Vitest",
		FrameworkPackages: []string{"vitest"},
		ESLintPlugins:     map[string]string{"@vitest/eslint-plugin": ">=1.0.0"},
	},
)

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}
