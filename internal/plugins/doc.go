// Package plugins holds the static table of third-party integrations the
// presets know about: which framework packages make an integration relevant,
// which companion lint plugins it expects, and which versions of those
// plugins are supported. The table is read-only and is passed explicitly to
// option detection and compatibility auditing.
package plugins
