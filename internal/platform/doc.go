// Package platform hides the differences between Unix and Windows that
// matter when writing hook scripts and locating npm binaries. On Windows,
// permission bits are ignored and npm installs .cmd shims next to the
// extensionless shell scripts.
package platform
