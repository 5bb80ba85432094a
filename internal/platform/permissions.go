package platform

import (
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// BinaryNames returns the file names npm may use for tool in
// node_modules/.bin, most specific first.
func BinaryNames(tool string) []string {
	return binaryNames(runtime.GOOS, tool)
}

func binaryNames(goos, tool string) []string {
	if goos == "windows" {
		return []string{tool + ".cmd", tool + ".exe", tool}
	}
	return []string{tool}
}
