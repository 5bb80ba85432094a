package options

import (
	"testing"

	"github.com/foundry-tools/foundry/internal/plugins"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{"TypeScript", TypeScript, false},
		{"typescript", TypeScript, false},
		{" JavaScript ", JavaScript, false},
		{"CoffeeScript", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLanguage(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseEnvironmentAcceptsLabels(t *testing.T) {
	got, err := ParseEnvironment("node.js")
	if err != nil || got != Node {
		t.Errorf("ParseEnvironment(node.js) = %q, %v", got, err)
	}
	if _, err := ParseEnvironment("deno"); err == nil {
		t.Error("expected error for unknown environment")
	}
}

func TestParseFramework(t *testing.T) {
	got, err := ParseFramework("next.js")
	if err != nil || got != NextJS {
		t.Errorf("ParseFramework(next.js) = %q, %v", got, err)
	}
}

func TestPluginChoices(t *testing.T) {
	choices := PluginChoices(plugins.Default())
	if len(choices) != len(plugins.Default().Names()) {
		t.Fatalf("got %d choices", len(choices))
	}
	if Label(choices, "testing-library") != "Testing Library" {
		t.Errorf("Label(testing-library) = %q", Label(choices, "testing-library"))
	}
	if Label(choices, "unknown") != "unknown" {
		t.Error("unknown values should be returned unchanged")
	}

	name, err := ParsePlugin(plugins.Default(), "Emotion.js")
	if err != nil || name != plugins.Emotion {
		t.Errorf("ParsePlugin(Emotion.js) = %q, %v", name, err)
	}
}
