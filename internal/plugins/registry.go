package plugins

import (
	"slices"
	"sort"
)

// Name identifies a known integration.
type Name string

const (
	CircuitUI      Name = "circuit-ui"
	Cypress        Name = "cypress"
	Emotion        Name = "emotion"
	Jest           Name = "jest"
	Next           Name = "next"
	Playwright     Name = "playwright"
	Storybook      Name = "storybook"
	TestingLibrary Name = "testing-library"
	Vitest         Name = "vitest"
)

// Linter tags which tool a companion plugin belongs to.
type Linter string

const (
	ESLint    Linter = "eslint"
	Stylelint Linter = "stylelint"
)

// Descriptor describes one integration.
type Descriptor struct {
	Name  Name
	Label string

	// FrameworkPackages are the packages whose presence makes the
	// integration relevant, in order of preference.
	FrameworkPackages []string

	// ESLintPlugins and StylelintPlugins map companion plugin packages to
	// the semver range the presets support.
	ESLintPlugins    map[string]string
	StylelintPlugins map[string]string
}

// Companion is one companion plugin package of a Descriptor.
type Companion struct {
	Package   string
	Supported string
	Linter    Linter
}

// Companions returns the eslint plugins followed by the stylelint plugins,
// each group sorted by package name.
func (d Descriptor) Companions() []Companion {
	out := make([]Companion, 0, len(d.ESLintPlugins)+len(d.StylelintPlugins))
	out = appendSorted(out, d.ESLintPlugins, ESLint)
	out = appendSorted(out, d.StylelintPlugins, Stylelint)
	return out
}

func appendSorted(out []Companion, plugins map[string]string, linter Linter) []Companion {
	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, Companion{Package: name, Supported: plugins[name], Linter: linter})
	}
	return out
}

// Registry is an immutable, ordered collection of descriptors.
type Registry struct {
	entries []Descriptor
}

// NewRegistry builds a registry from the given descriptors. The descriptors
// are copied so later changes by the caller are not observed.
func NewRegistry(entries ...Descriptor) *Registry {
	r := &Registry{entries: make([]Descriptor, len(entries))}
	for i, d := range entries {
		r.entries[i] = cloneDescriptor(d)
	}
	return r
}

// All returns a copy of every descriptor in registry order.
func (r *Registry) All() []Descriptor {
	if r == nil {
		return nil
	}
	out := make([]Descriptor, len(r.entries))
	for i, d := range r.entries {
		out[i] = cloneDescriptor(d)
	}
	return out
}

// Names returns the registered names in registry order.
func (r *Registry) Names() []Name {
	if r == nil {
		return nil
	}
	names := make([]Name, len(r.entries))
	for i, d := range r.entries {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name Name) (Descriptor, bool) {
	if r == nil {
		return Descriptor{}, false
	}
	for _, d := range r.entries {
		if d.Name == name {
			return cloneDescriptor(d), true
		}
	}
	return Descriptor{}, false
}

// ParseName converts s to a registered Name, returning false if unknown.
func (r *Registry) ParseName(s string) (Name, bool) {
	if _, ok := r.Lookup(Name(s)); ok {
		return Name(s), true
	}
	return "", false
}

func cloneDescriptor(d Descriptor) Descriptor {
	d.FrameworkPackages = slices.Clone(d.FrameworkPackages)
	d.ESLintPlugins = cloneMap(d.ESLintPlugins)
	d.StylelintPlugins = cloneMap(d.StylelintPlugins)
	return d
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
