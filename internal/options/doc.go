// Package options resolves the configuration intent for a project. Each
// dimension (language, environments, frameworks, plugins, open-source status)
// is either given explicitly or detected from the package.json; detection is
// a pure function of the manifest.
package options
