// internal/util/util.go
package util

import "os"

// WriteFile writes data to a file with 0o644 permissions, replacing any previous content.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// EnsureDir creates path and any missing parents with 0o755 permissions.
// An existing directory is left untouched.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
