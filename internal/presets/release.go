package presets

import (
	"github.com/foundry-tools/foundry/internal/compose"
)

func releaseConfig(p Params) compose.Fragment {
	base := compose.Fragment{
		"branches": []any{
			"main",
			map[string]any{"name": "next", "prerelease": true},
		},
		"plugins": []any{
			"@semantic-release/commit-analyzer",
			"@semantic-release/release-notes-generator",
		},
	}

	// Private packages are versioned and tagged but never published.
	publish := compose.Fragment{
		"plugins": []any{
			[]any{"@semantic-release/npm", map[string]any{"npmPublish": false}},
		},
	}
	if p.Options.OpenSource {
		publish = compose.Fragment{
			"plugins": []any{"@semantic-release/npm", "@semantic-release/github"},
		}
	}
	return compose.Customize(base, publish)
}
