package options

import (
	"reflect"
	"slices"
	"testing"

	"github.com/foundry-tools/foundry/internal/manifest"
	"github.com/foundry-tools/foundry/internal/plugins"
)

func ptr[T any](v T) *T { return &v }

func TestPickConfigOrDetect_ExplicitValuesWin(t *testing.T) {
	m := &manifest.PackageJSON{License: "Apache-2.0"}

	called := false
	detectBool := func(*manifest.PackageJSON) bool { called = true; return true }
	if got := PickConfigOrDetect[bool](m)(ptr(false), detectBool); got != false || called {
		t.Errorf("explicit false: got %v, detect called = %v", got, called)
	}

	detectInt := func(*manifest.PackageJSON) int { called = true; return 42 }
	if got := PickConfigOrDetect[int](m)(ptr(0), detectInt); got != 0 || called {
		t.Errorf("explicit 0: got %v, detect called = %v", got, called)
	}

	detectString := func(*manifest.PackageJSON) string { called = true; return "detected" }
	if got := PickConfigOrDetect[string](m)(ptr(""), detectString); got != "" || called {
		t.Errorf("explicit empty string: got %q, detect called = %v", got, called)
	}

	detectList := func(*manifest.PackageJSON) []string { called = true; return []string{"x"} }
	if got := PickConfigOrDetect[[]string](m)(ptr([]string{}), detectList); len(got) != 0 || called {
		t.Errorf("explicit empty list: got %v, detect called = %v", got, called)
	}
}

func TestPickConfigOrDetect_NilDetects(t *testing.T) {
	m := &manifest.PackageJSON{License: "Apache-2.0"}

	var received *manifest.PackageJSON
	got := PickConfigOrDetect[bool](m)(nil, func(in *manifest.PackageJSON) bool {
		received = in
		return DetectOpenSource(in)
	})
	if !got {
		t.Error("expected detection result true")
	}
	if received != m {
		t.Error("detector should receive the bound manifest")
	}
}

func TestResolve_TypeScriptWithoutLicense(t *testing.T) {
	m := &manifest.PackageJSON{DevDependencies: map[string]string{"typescript": "^5.0.0"}}

	opts := Resolve(m, manifest.Overrides{}, plugins.Default())

	if opts.Language != TypeScript {
		t.Errorf("Language = %s, want TypeScript", opts.Language)
	}
	if opts.OpenSource {
		t.Error("OpenSource = true, want false")
	}
}

func TestResolve_NextSuppressesReact(t *testing.T) {
	m := &manifest.PackageJSON{Dependencies: map[string]string{"next": "^14.0.0", "react": "^18.0.0"}}

	opts := Resolve(m, manifest.Overrides{}, plugins.Default())

	if !opts.HasFramework(NextJS) {
		t.Error("frameworks should contain Next.js")
	}
	if opts.HasFramework(React) {
		t.Error("frameworks should not contain React when Next.js is present")
	}
	if !opts.HasEnvironment(Node) || !opts.HasEnvironment(Browser) {
		t.Errorf("Next.js apps are universal, got %v", opts.Environments)
	}
}

func TestResolve_ExplicitOverrides(t *testing.T) {
	m := &manifest.PackageJSON{
		License:         "Apache-2.0",
		Type:            "module",
		DevDependencies: map[string]string{"typescript": "^5.0.0", "eslint-plugin-jest": "^28.0.0"},
	}
	explicit := manifest.Overrides{
		Language:   ptr("JavaScript"),
		Plugins:    ptr([]string{}),
		OpenSource: ptr(false),
	}

	opts := Resolve(m, explicit, plugins.Default())

	if opts.Language != JavaScript {
		t.Errorf("Language = %s, want explicit JavaScript", opts.Language)
	}
	if len(opts.Plugins) != 0 {
		t.Errorf("Plugins = %v, want explicit empty list", opts.Plugins)
	}
	if opts.OpenSource {
		t.Error("OpenSource should respect explicit false")
	}
	if opts.PackageType != "module" {
		t.Errorf("PackageType = %q, want module", opts.PackageType)
	}

	sources := Sources(explicit)
	if sources["language"] != SourceExplicit || sources["frameworks"] != SourceDetected {
		t.Errorf("Sources = %v", sources)
	}
}

func TestResolve_NilManifest(t *testing.T) {
	opts := Resolve(nil, manifest.Overrides{}, plugins.Default())
	want := Options{
		Language:     JavaScript,
		Environments: []Environment{},
		Frameworks:   []Framework{},
		Plugins:      []plugins.Name{},
	}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("Resolve(nil) = %+v, want %+v", opts, want)
	}
}

func TestDetectEnvironments(t *testing.T) {
	tests := []struct {
		name string
		m    *manifest.PackageJSON
		want []Environment
	}{
		{"empty", &manifest.PackageJSON{}, []Environment{}},
		{"server framework", &manifest.PackageJSON{Dependencies: map[string]string{"express": "^4.0.0"}}, []Environment{Node}},
		{"cli", &manifest.PackageJSON{HasBin: true}, []Environment{Node}},
		{"client framework", &manifest.PackageJSON{Dependencies: map[string]string{"vue": "^3.0.0"}}, []Environment{Browser}},
		{"browser field", &manifest.PackageJSON{HasBrowser: true}, []Environment{Browser}},
		{"universal", &manifest.PackageJSON{HasBin: true, HasBrowser: true}, []Environment{Node, Browser}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectEnvironments(tt.m); !slices.Equal(got, tt.want) {
				t.Errorf("DetectEnvironments() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFrameworks(t *testing.T) {
	react := &manifest.PackageJSON{DevDependencies: map[string]string{"react": "^18.0.0"}}
	if got := DetectFrameworks(react); !slices.Equal(got, []Framework{React}) {
		t.Errorf("DetectFrameworks(react) = %v", got)
	}
	if got := DetectFrameworks(&manifest.PackageJSON{}); len(got) != 0 {
		t.Errorf("DetectFrameworks(empty) = %v", got)
	}
}

func TestDetectPlugins_UsesCompanionPackages(t *testing.T) {
	m := &manifest.PackageJSON{
		Dependencies: map[string]string{
			// A framework package alone does not imply the plugin.
			"jest": "^29.0.0",
		},
		DevDependencies: map[string]string{
			"@sumup/stylelint-plugin-circuit-ui": "^2.0.0",
			"eslint-plugin-cypress":              "^3.0.0",
		},
	}

	got := DetectPlugins(plugins.Default())(m)
	want := []plugins.Name{plugins.CircuitUI, plugins.Cypress}
	if !slices.Equal(got, want) {
		t.Errorf("DetectPlugins() = %v, want %v", got, want)
	}
}

func TestDetectPlugins_FixtureRegistry(t *testing.T) {
	registry := plugins.NewRegistry(plugins.Descriptor{
		Name:          "custom",
		ESLintPlugins: map[string]string{"eslint-plugin-custom": "*"},
	})
	m := &manifest.PackageJSON{Dependencies: map[string]string{"eslint-plugin-custom": "1.0.0"}}

	if got := DetectPlugins(registry)(m); !slices.Equal(got, []plugins.Name{"custom"}) {
		t.Errorf("DetectPlugins() = %v", got)
	}
}

func TestDetectOpenSource(t *testing.T) {
	for license, want := range map[string]bool{
		"Apache-2.0": true,
		"apache-2.0": false,
		"MIT":        false,
		"":           false,
	} {
		if got := DetectOpenSource(&manifest.PackageJSON{License: license}); got != want {
			t.Errorf("DetectOpenSource(%q) = %v, want %v", license, got, want)
		}
	}
}

func TestDetectionIsPure(t *testing.T) {
	m := &manifest.PackageJSON{
		Dependencies:    map[string]string{"next": "^14.0.0", "react": "^18.0.0"},
		DevDependencies: map[string]string{"typescript": "^5.0.0"},
	}
	before := *m
	beforeDeps := cloneDeps(m.Dependencies)

	first := Resolve(m, manifest.Overrides{}, plugins.Default())
	second := Resolve(m, manifest.Overrides{}, plugins.Default())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Resolve is not deterministic: %+v vs %+v", first, second)
	}
	if DetectLanguage(m) != DetectLanguage(m) {
		t.Error("DetectLanguage is not deterministic")
	}
	if m.License != before.License || !reflect.DeepEqual(m.Dependencies, beforeDeps) {
		t.Error("detection mutated the manifest")
	}
}

func cloneDeps(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func TestNormalize(t *testing.T) {
	o := manifest.Overrides{
		Language:     ptr("typescript"),
		Environments: ptr([]string{"node.js", "browser"}),
		Frameworks:   ptr([]string{"NEXT.JS", "Svelte"}),
		Plugins:      ptr([]string{"Jest"}),
		OpenSource:   ptr(false),
	}

	got := Normalize(o, plugins.Default())

	if *got.Language != string(TypeScript) {
		t.Errorf("language = %q", *got.Language)
	}
	if want := []string{string(Node), string(Browser)}; !slices.Equal(*got.Environments, want) {
		t.Errorf("environments = %v, want %v", *got.Environments, want)
	}
	if want := []string{string(NextJS), "Svelte"}; !slices.Equal(*got.Frameworks, want) {
		t.Errorf("frameworks = %v, want %v", *got.Frameworks, want)
	}
	if want := []string{string(plugins.Jest)}; !slices.Equal(*got.Plugins, want) {
		t.Errorf("plugins = %v, want %v", *got.Plugins, want)
	}
	if got.OpenSource == nil || *got.OpenSource {
		t.Error("openSource should be kept")
	}
	if *o.Language != "typescript" {
		t.Error("input overrides were modified")
	}

	opts := Resolve(&manifest.PackageJSON{}, got, plugins.Default())
	if opts.Language != TypeScript {
		t.Errorf("resolved language = %q", opts.Language)
	}
}

func TestNormalize_UnknownKeptVerbatim(t *testing.T) {
	got := Normalize(manifest.Overrides{Language: ptr("CoffeeScript")}, plugins.Default())
	if *got.Language != "CoffeeScript" {
		t.Errorf("language = %q", *got.Language)
	}
	if got.Environments != nil || got.Plugins != nil {
		t.Error("unset fields should stay nil")
	}
}
