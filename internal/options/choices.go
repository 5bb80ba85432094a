package options

import (
	"fmt"
	"strings"

	"github.com/foundry-tools/foundry/internal/plugins"
)

// Choice pairs an option value with its user-facing label.
type Choice struct {
	Value string
	Label string
}

// LanguageChoices lists the supported languages in display order.
var LanguageChoices = []Choice{
	{Value: string(TypeScript), Label: "TypeScript"},
	{Value: string(JavaScript), Label: "JavaScript"},
}

// EnvironmentChoices lists the supported environments in display order.
var EnvironmentChoices = []Choice{
	{Value: string(Node), Label: "Node.js"},
	{Value: string(Browser), Label: "Browser"},
}

// FrameworkChoices lists the supported frameworks in display order.
var FrameworkChoices = []Choice{
	{Value: string(NextJS), Label: "Next.js"},
	{Value: string(React), Label: "React"},
}

// PluginChoices lists the registry's integrations in registry order.
func PluginChoices(registry *plugins.Registry) []Choice {
	all := registry.All()
	choices := make([]Choice, len(all))
	for i, d := range all {
		choices[i] = Choice{Value: string(d.Name), Label: d.Label}
	}
	return choices
}

// Label returns the label of value in choices, or value itself if unknown.
func Label(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// Values returns the values of choices, in order.
func Values(choices []Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Value
	}
	return out
}

// lookup matches s case-insensitively against the values and labels of choices.
func lookup(choices []Choice, kind, s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, c := range choices {
		if strings.EqualFold(c.Value, s) || strings.EqualFold(c.Label, s) {
			return c.Value, nil
		}
	}
	return "", fmt.Errorf("unknown %s %q: expected one of %s", kind, s, strings.Join(Values(choices), ", "))
}

// ParseLanguage converts user input to a Language.
func ParseLanguage(s string) (Language, error) {
	v, err := lookup(LanguageChoices, "language", s)
	return Language(v), err
}

// ParseEnvironment converts user input to an Environment.
func ParseEnvironment(s string) (Environment, error) {
	v, err := lookup(EnvironmentChoices, "environment", s)
	return Environment(v), err
}

// ParseFramework converts user input to a Framework.
func ParseFramework(s string) (Framework, error) {
	v, err := lookup(FrameworkChoices, "framework", s)
	return Framework(v), err
}

// ParsePlugin converts user input to a registered plugin name.
func ParsePlugin(registry *plugins.Registry, s string) (plugins.Name, error) {
	v, err := lookup(PluginChoices(registry), "plugin", s)
	return plugins.Name(v), err
}
