package presets

import (
	"github.com/foundry-tools/foundry/internal/compose"
	"github.com/foundry-tools/foundry/internal/options"
)

var testFiles = []any{
	"**/*.spec.*",
	"**/*.test.*",
	"**/__tests__/**",
	"**/__mocks__/**",
}

func eslintBase(opts options.Options) compose.Fragment {
	base := compose.Fragment{
		"root":    true,
		"extends": []any{"eslint:recommended", "plugin:prettier/recommended"},
		"plugins": []any{},
		"parserOptions": map[string]any{
			"ecmaVersion": "latest",
			"sourceType":  "module",
		},
		"env": map[string]any{"es2022": true},
		"rules": map[string]any{
			"curly":            []any{"error", "all"},
			"eqeqeq":           []any{"error", "smart"},
			"no-console":       "warn",
			"no-var":           "error",
			"prefer-const":     "error",
			"object-shorthand": "error",
		},
		"ignorePatterns": []any{"node_modules/", "dist/", "build/", "coverage/"},
		"overrides":      []any{},
	}
	if opts.PackageType == "commonjs" {
		base["env"] = map[string]any{"es2022": true, "commonjs": true}
	}
	return base
}

var languageFragments = map[options.Language]compose.Fragment{
	options.TypeScript: {
		"parser":  "@typescript-eslint/parser",
		"plugins": []any{"@typescript-eslint"},
		"extends": []any{"plugin:@typescript-eslint/recommended"},
		"rules": map[string]any{
			"no-unused-vars":                             "off",
			"@typescript-eslint/no-unused-vars":          []any{"error", map[string]any{"argsIgnorePattern": "^_"}},
			"@typescript-eslint/consistent-type-imports": "error",
		},
		"overrides": []any{
			map[string]any{
				"files": []any{"*.js", "*.jsx", "*.cjs", "*.mjs"},
				"rules": map[string]any{"@typescript-eslint/no-require-imports": "off"},
			},
		},
	},
	options.JavaScript: {
		"parserOptions": map[string]any{"ecmaFeatures": map[string]any{"jsx": true}},
		"rules": map[string]any{
			"no-unused-vars": []any{"error", map[string]any{"argsIgnorePattern": "^_"}},
		},
	},
}

var environmentFragments = map[options.Environment]compose.Fragment{
	options.Node: {
		"env":     map[string]any{"node": true},
		"plugins": []any{"n"},
		"extends": []any{"plugin:n/recommended"},
		"rules":   map[string]any{"n/no-missing-import": "off"},
	},
	options.Browser: {
		"env": map[string]any{"browser": true},
	},
}

var reactFragment = compose.Fragment{
	"plugins": []any{"react", "react-hooks"},
	"extends": []any{"plugin:react/recommended", "plugin:react/jsx-runtime", "plugin:react-hooks/recommended"},
	"settings": map[string]any{
		"react": map[string]any{"version": "detect"},
	},
	"rules": map[string]any{
		"react/prop-types": "off",
	},
}

var frameworkFragments = map[options.Framework]compose.Fragment{
	options.React: reactFragment,
	// Next.js implies React, so its fragment builds on the React one.
	options.NextJS: compose.Customize(reactFragment, compose.Fragment{
		"plugins": []any{"@next/next"},
		"extends": []any{"plugin:@next/next/recommended"},
		"rules": map[string]any{
			"@next/next/no-html-link-for-pages": "off",
		},
	}),
}

var openSourceFragment = compose.Fragment{
	"plugins": []any{"notice"},
	"rules": map[string]any{
		"notice/notice": []any{"error", map[string]any{
			"mustMatch":    "Copyright",
			"templateFile": ".license-header.js",
		}},
	},
}

func eslintConfig(p Params) compose.Fragment {
	opts := p.Options
	fragments := []compose.Fragment{languageFragments[opts.Language]}

	for _, env := range opts.Environments {
		fragments = append(fragments, environmentFragments[env])
	}
	for _, fw := range opts.Frameworks {
		fragments = append(fragments, frameworkFragments[fw])
	}
	for _, name := range opts.Plugins {
		if build, ok := eslintPluginFragments[name]; ok {
			fragments = append(fragments, build(opts))
		}
	}
	if opts.OpenSource {
		fragments = append(fragments, openSourceFragment)
	}

	return compose.Fold(eslintBase(opts), fragments...)
}
