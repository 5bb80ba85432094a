package options

import (
	"github.com/foundry-tools/foundry/internal/manifest"
	"github.com/foundry-tools/foundry/internal/plugins"
)

// Detector derives a value from the manifest.
type Detector[T any] func(m *manifest.PackageJSON) T

// PickConfigOrDetect binds m and returns the fallback rule shared by every
// dimension: a non-nil explicit value is returned unchanged, even when it is
// a zero value; only nil invokes detect.
func PickConfigOrDetect[T any](m *manifest.PackageJSON) func(explicit *T, detect Detector[T]) T {
	return func(explicit *T, detect Detector[T]) T {
		if explicit != nil {
			return *explicit
		}
		return detect(m)
	}
}

// Source tells whether a resolved field was given or detected.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceDetected Source = "detected"
)

// Resolve computes the Options for m. Fields set in explicit win; the rest
// are detected against registry.
func Resolve(m *manifest.PackageJSON, explicit manifest.Overrides, registry *plugins.Registry) Options {
	opts := Options{}
	if m != nil {
		opts.PackageType = m.Type
	}

	opts.Language = PickConfigOrDetect[Language](m)(
		convert(explicit.Language, func(s string) Language { return Language(s) }),
		DetectLanguage,
	)
	opts.Environments = PickConfigOrDetect[[]Environment](m)(
		convertList(explicit.Environments, func(s string) Environment { return Environment(s) }),
		DetectEnvironments,
	)
	opts.Frameworks = PickConfigOrDetect[[]Framework](m)(
		convertList(explicit.Frameworks, func(s string) Framework { return Framework(s) }),
		DetectFrameworks,
	)
	opts.Plugins = PickConfigOrDetect[[]plugins.Name](m)(
		convertList(explicit.Plugins, func(s string) plugins.Name { return plugins.Name(s) }),
		DetectPlugins(registry),
	)
	opts.OpenSource = PickConfigOrDetect[bool](m)(explicit.OpenSource, DetectOpenSource)

	return opts
}

// Normalize returns a copy of o with known language, environment, framework
// and plugin values rewritten to their canonical spelling, matched the same
// way as command-line input. Unknown values are kept as given.
func Normalize(o manifest.Overrides, registry *plugins.Registry) manifest.Overrides {
	out := o
	out.Language = canonical(o.Language, LanguageChoices)
	out.Environments = canonicalList(o.Environments, EnvironmentChoices)
	out.Frameworks = canonicalList(o.Frameworks, FrameworkChoices)
	out.Plugins = canonicalList(o.Plugins, PluginChoices(registry))
	return out
}

func canonical(v *string, choices []Choice) *string {
	if v == nil {
		return nil
	}
	out := *v
	if c, err := lookup(choices, "", out); err == nil {
		out = c
	}
	return &out
}

func canonicalList(v *[]string, choices []Choice) *[]string {
	if v == nil {
		return nil
	}
	out := make([]string, len(*v))
	for i, s := range *v {
		out[i] = *canonical(&s, choices)
	}
	return &out
}

// Sources reports, per option field, whether Resolve took it from explicit
// or detected it.
func Sources(explicit manifest.Overrides) map[string]Source {
	pick := func(set bool) Source {
		if set {
			return SourceExplicit
		}
		return SourceDetected
	}
	return map[string]Source{
		"language":     pick(explicit.Language != nil),
		"environments": pick(explicit.Environments != nil),
		"frameworks":   pick(explicit.Frameworks != nil),
		"plugins":      pick(explicit.Plugins != nil),
		"openSource":   pick(explicit.OpenSource != nil),
	}
}

func convert[T any](v *string, fn func(string) T) *T {
	if v == nil {
		return nil
	}
	out := fn(*v)
	return &out
}

func convertList[T any](v *[]string, fn func(string) T) *[]T {
	if v == nil {
		return nil
	}
	out := make([]T, len(*v))
	for i, s := range *v {
		out[i] = fn(s)
	}
	return &out
}
