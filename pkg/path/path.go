package path

import (
	"path/filepath"
	"runtime"
)

// GetRootDirectory resolves the module root from this file's location at build time.
func GetRootDirectory() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}
