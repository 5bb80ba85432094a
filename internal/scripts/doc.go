// Package scripts adds npm scripts to a package.json in place. Key order and
// indentation of the existing file are preserved.
package scripts
