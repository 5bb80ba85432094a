// Package runner locates tool binaries installed in a project's
// node_modules/.bin and runs them with the caller's arguments, forwarding
// standard streams and the child's exit code.
package runner
