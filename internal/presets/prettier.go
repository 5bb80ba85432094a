package presets

import (
	"github.com/foundry-tools/foundry/internal/compose"
)

func prettierConfig(Params) compose.Fragment {
	return compose.Fragment{
		"singleQuote":   true,
		"trailingComma": "all",
		"printWidth":    80,
		"tabWidth":      2,
		"semi":          true,
		"arrowParens":   "always",
		"endOfLine":     "lf",
	}
}
