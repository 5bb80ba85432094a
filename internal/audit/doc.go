// Package audit cross-checks a project's installed packages against the
// plugin registry. It reports companion lint plugins installed at versions
// the presets do not support, and frameworks installed without their
// companion plugin. Every problem is reported as a warning; auditing never
// fails and never stops at the first bad entry.
package audit
