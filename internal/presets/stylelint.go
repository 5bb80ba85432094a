package presets

import (
	"github.com/foundry-tools/foundry/internal/compose"
	"github.com/foundry-tools/foundry/internal/plugins"
)

func stylelintConfig(p Params) compose.Fragment {
	base := compose.Fragment{
		"extends": []any{"stylelint-config-standard", "stylelint-config-recess-order"},
		"plugins": []any{},
		"rules": map[string]any{
			"selector-class-pattern":    nil,
			"no-descending-specificity": nil,
		},
	}
	// CSS-in-JS libraries put styles in script files.
	if p.Options.HasPlugin(plugins.Emotion) {
		base = compose.Customize(base, compose.Fragment{
			"customSyntax": "postcss-styled-syntax",
		})
	}

	var fragments []compose.Fragment
	for _, name := range p.Options.Plugins {
		if build, ok := stylelintPluginFragments[name]; ok {
			fragments = append(fragments, build(p.Options))
		}
	}
	return compose.Fold(base, fragments...)
}
