// Package presets builds the configuration of each supported tool from the
// resolved options. Every preset starts from a base config, folds in the
// fragments contributed by the detected language, environments, frameworks
// and plugins, and applies the project's explicit customizations last.
package presets
