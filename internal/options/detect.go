package options

import (
	"github.com/foundry-tools/foundry/internal/manifest"
	"github.com/foundry-tools/foundry/internal/plugins"
)

// serverPackages imply code that runs on Node.
var serverPackages = []string{
	"express",
	"koa",
	"fastify",
	"@hapi/hapi",
	"@nestjs/core",
	"next",
}

// clientPackages imply code that runs in the browser.
var clientPackages = []string{
	"react",
	"react-dom",
	"preact",
	"vue",
	"svelte",
	"next",
}

// openSourceLicense is the license that marks a project as open source.
const openSourceLicense = "Apache-2.0"

// DetectLanguage returns TypeScript when typescript is installed.
func DetectLanguage(m *manifest.PackageJSON) Language {
	if manifest.HasDependency(m, "typescript") {
		return TypeScript
	}
	return JavaScript
}

// DetectEnvironments returns every environment the project appears to
// target. Universal packages get both; the result may also be empty.
func DetectEnvironments(m *manifest.PackageJSON) []Environment {
	envs := []Environment{}
	if manifest.HasAnyDependency(m, serverPackages...) || manifest.IsCLI(m) {
		envs = append(envs, Node)
	}
	if manifest.HasAnyDependency(m, clientPackages...) || manifest.IsBrowserBundle(m) {
		envs = append(envs, Browser)
	}
	return envs
}

// DetectFrameworks returns the installed frameworks. Next.js subsumes React,
// so React is only reported on its own.
func DetectFrameworks(m *manifest.PackageJSON) []Framework {
	frameworks := []Framework{}
	hasNext := manifest.HasDependency(m, "next")
	if hasNext {
		frameworks = append(frameworks, NextJS)
	}
	if manifest.HasDependency(m, "react") && !hasNext {
		frameworks = append(frameworks, React)
	}
	return frameworks
}

// DetectPlugins returns a detector reporting every registry entry with at
// least one companion lint plugin installed.
func DetectPlugins(registry *plugins.Registry) Detector[[]plugins.Name] {
	return func(m *manifest.PackageJSON) []plugins.Name {
		names := []plugins.Name{}
		for _, d := range registry.All() {
			for _, c := range d.Companions() {
				if manifest.HasDependency(m, c.Package) {
					names = append(names, d.Name)
					break
				}
			}
		}
		return names
	}
}

// DetectOpenSource reports whether the license is exactly Apache-2.0.
func DetectOpenSource(m *manifest.PackageJSON) bool {
	return m != nil && m.License == openSourceLicense
}
