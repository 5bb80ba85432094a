// Package manifest reads a project's package.json and answers questions about
// it: which dependencies are installed and at which version range, whether
// the package ships a CLI or a browser bundle, and which options the project
// pins explicitly under its "foundry" key. Explicit overrides are checked
// against an embedded JSON schema.
package manifest
